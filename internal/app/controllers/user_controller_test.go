package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueproject/capstone/internal/app/models"
	"github.com/trueproject/capstone/internal/app/models/dto"
	"github.com/trueproject/capstone/internal/pkg/apperrors"
)

func newUserRouter(profiles *stubProfileReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewUserController(profiles)
	router.GET("/api/v1/users/:email", ctrl.GetUserByEmail)
	return router
}

func TestUserController_GetUserByEmail(t *testing.T) {
	title := "Traffic AI"
	student := dto.StudentProfileResponse{
		ID:           7,
		Name:         "Asha",
		USN:          "1BM21CS042",
		Email:        "asha@college.edu",
		Department:   "CS",
		Role:         models.RoleStudent,
		ProjectTitle: &title,
	}

	testCases := []struct {
		name       string
		email      string
		profiles   *stubProfileReader
		wantStatus int
		check      func(t *testing.T, body []byte)
	}{
		{
			name:       "student profile",
			email:      "asha@college.edu",
			profiles:   &stubProfileReader{profile: student},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp struct {
					Data dto.StudentProfileResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "1BM21CS042", resp.Data.USN)
				assert.Equal(t, models.RoleStudent, resp.Data.Role)
				require.NotNil(t, resp.Data.ProjectTitle)
				assert.Equal(t, "Traffic AI", *resp.Data.ProjectTitle)
			},
		},
		{
			name:  "teacher profile",
			email: "meera@college.edu",
			profiles: &stubProfileReader{profile: dto.TeacherProfileResponse{
				ID: 1, Name: "Meera", Email: "meera@college.edu", Department: "CS",
				AssignedProjectCount: 4, Role: models.RoleTeacher,
			}},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp struct {
					Data dto.TeacherProfileResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, models.RoleTeacher, resp.Data.Role)
				assert.Equal(t, 4, resp.Data.AssignedProjectCount)
			},
		},
		{
			name:       "invalid email",
			email:      "garbage",
			profiles:   &stubProfileReader{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown user",
			email:      "ghost@college.edu",
			profiles:   &stubProfileReader{err: apperrors.NewCustomError(apperrors.ErrUserNotFound, "User not found")},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newUserRouter(tc.profiles)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+tc.email, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			if tc.check != nil {
				tc.check(t, recorder.Body.Bytes())
			}
		})
	}
}
