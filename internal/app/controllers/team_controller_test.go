package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueproject/capstone/internal/app/models/dto"
	"github.com/trueproject/capstone/internal/pkg/apperrors"
)

type stubRegistrar struct {
	resp *dto.RegisterTeamResponse
	err  error
	got  *dto.RegisterTeamRequest
}

func (s *stubRegistrar) RegisterTeam(_ context.Context, req dto.RegisterTeamRequest) (*dto.RegisterTeamResponse, error) {
	s.got = &req
	return s.resp, s.err
}

type stubProfileReader struct {
	profile interface{}
	roster  *dto.TeamRosterResponse
	err     error
}

func (s *stubProfileReader) GetUserByEmail(context.Context, string) (interface{}, error) {
	return s.profile, s.err
}

func (s *stubProfileReader) GetTeamByMemberEmail(context.Context, string) (*dto.TeamRosterResponse, error) {
	return s.roster, s.err
}

func newTeamRouter(registrar *stubRegistrar, profiles *stubProfileReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewTeamController(registrar, profiles)
	router.POST("/api/v1/teams", ctrl.RegisterTeam)
	router.GET("/api/v1/teams/by-member/:email", ctrl.GetTeamByMemberEmail)
	return router
}

const registerBody = `{
	"teamName": "Alpha",
	"teamSize": 2,
	"teamMembers": [
		{"name": "A", "usn": "usn1", "email": "a@x", "dept": "CS"},
		{"name": "B", "usn": "usn2", "email": "b@x", "dept": "CS"}
	],
	"projectTitle": "P",
	"projectSynopsis": "S"
}`

func TestTeamController_RegisterTeam(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		registrar  *stubRegistrar
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{
			name: "created",
			body: registerBody,
			registrar: &stubRegistrar{resp: &dto.RegisterTeamResponse{
				Message:      "Team created successfully",
				TeamID:       7,
				ProjectID:    11,
				MentorStatus: "Assigned to Meera (ID: 1)",
			}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed JSON",
			body:       `{"teamName":`,
			registrar:  &stubRegistrar{},
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "missing required fields",
			body:       `{"teamName": "Alpha"}`,
			registrar:  &stubRegistrar{},
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidationFailed,
		},
		{
			name:       "duplicate USN in request",
			body:       registerBody,
			registrar:  &stubRegistrar{err: apperrors.NewDuplicateInRequestError("usn1")},
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeDuplicateInRequest,
		},
		{
			name:       "member already registered",
			body:       registerBody,
			registrar:  &stubRegistrar{err: apperrors.NewAlreadyRegisteredError("A", "usn1", "Beta")},
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeAlreadyRegistered,
		},
		{
			name:       "team name taken",
			body:       registerBody,
			registrar:  &stubRegistrar{err: apperrors.NewCustomError(apperrors.ErrDuplicateTeamName, "Team name 'Alpha' is already taken.")},
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeDuplicateTeamName,
		},
		{
			name:       "department exhausted",
			body:       registerBody,
			registrar:  &stubRegistrar{err: apperrors.NewNoEligibleMentorError("CS")},
			wantStatus: http.StatusConflict,
			wantCode:   dto.ErrorCodeNoEligibleMentor,
		},
		{
			name:       "storage fault",
			body:       registerBody,
			registrar:  &stubRegistrar{err: apperrors.NewStorageFaultError(errors.New("connection reset"))},
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeDatabaseError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTeamRouter(tc.registrar, &stubProfileReader{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantStatus, recorder.Code)

			if tc.wantStatus == http.StatusCreated {
				var resp struct {
					Data dto.RegisterTeamResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
				assert.Equal(t, int64(7), resp.Data.TeamID)
				assert.Equal(t, "Assigned to Meera (ID: 1)", resp.Data.MentorStatus)
				require.NotNil(t, tc.registrar.got)
				assert.Equal(t, "Alpha", tc.registrar.got.TeamName)
				assert.Len(t, tc.registrar.got.TeamMembers, 2)
				return
			}

			var resp struct {
				Error *dto.ErrorDetail `json:"error"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestTeamController_RegisterTeam_StorageFaultHintsRetry(t *testing.T) {
	registrar := &stubRegistrar{err: apperrors.NewStorageFaultError(errors.New("broken pipe"))}
	router := newTeamRouter(registrar, &stubProfileReader{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams", bytes.NewBufferString(registerBody))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "nothing was committed")
	// The raw driver error never leaks to the client.
	assert.NotContains(t, recorder.Body.String(), "broken pipe")
}

func TestTeamController_GetTeamByMemberEmail(t *testing.T) {
	testCases := []struct {
		name       string
		email      string
		profiles   *stubProfileReader
		wantStatus int
	}{
		{
			name:  "found",
			email: "a@x.edu",
			profiles: &stubProfileReader{roster: &dto.TeamRosterResponse{
				TeamID:   7,
				TeamName: "Alpha",
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid email",
			email:      "not-an-email",
			profiles:   &stubProfileReader{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not in any team",
			email:      "ghost@x.edu",
			profiles:   &stubProfileReader{err: apperrors.NewResourceNotFoundError("User not found in any team")},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTeamRouter(&stubRegistrar{}, tc.profiles)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/by-member/"+tc.email, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantStatus, recorder.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Contains(t, recorder.Body.String(), `"teamName":"Alpha"`)
			}
		})
	}
}
