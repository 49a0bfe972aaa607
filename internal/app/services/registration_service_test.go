package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trueproject/capstone/internal/app/models"
	"github.com/trueproject/capstone/internal/app/models/dto"
	"github.com/trueproject/capstone/internal/app/repositories"
	"github.com/trueproject/capstone/internal/app/services/mocks"
	"github.com/trueproject/capstone/internal/db"
	"github.com/trueproject/capstone/internal/pkg/apperrors"
)

// fakeTxRunner runs the unit of work without a real database. A nil pgx.Tx is
// handed to the function; the mocked stores never touch it.
type fakeTxRunner struct {
	beginErr  error
	commitErr error
	calls     int
	failed    bool
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.calls++
	if f.beginErr != nil {
		return f.beginErr
	}
	if err := fn(ctx, nil); err != nil {
		f.failed = true
		return err
	}
	return f.commitErr
}

func validRequest() dto.RegisterTeamRequest {
	return dto.RegisterTeamRequest{
		TeamName: "Alpha",
		TeamSize: 2,
		TeamMembers: []models.TeamMember{
			{Name: "A", USN: "usn1", Email: "a@x", Dept: "CS"},
			{Name: "B", USN: "usn2", Email: "b@x", Dept: "CS"},
		},
		ProjectTitle:    "P",
		ProjectSynopsis: "S",
	}
}

func TestRegistrationService_RegisterTeam(t *testing.T) {
	testCases := []struct {
		name      string
		req       func() dto.RegisterTeamRequest
		mock      func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore)
		runner   *fakeTxRunner
		wantErr  error
		wantTx   int
		wantResp *dto.RegisterTeamResponse
	}{
		{
			name: "success assigns first open mentor",
			req:  validRequest,
			mock: func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore) {
				teams := mocks.NewMockTeamStore(ctrl)
				projects := mocks.NewMockProjectStore(ctrl)
				mentors := mocks.NewMockMentorStore(ctrl)
				teams.EXPECT().FindTeamNameByMemberUSN(gomock.Any(), gomock.Nil(), "usn1").Return("", false, nil)
				teams.EXPECT().FindTeamNameByMemberUSN(gomock.Any(), gomock.Nil(), "usn2").Return("", false, nil)
				teams.EXPECT().CreateTeam(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ pgx.Tx, team *models.Team) (int64, error) {
						assert.Equal(t, "Alpha", team.Name)
						assert.Len(t, team.Members, 2)
						return 7, nil
					})
				projects.EXPECT().CreateProject(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ pgx.Tx, project *models.SubmittedProject) (int64, error) {
						assert.Equal(t, int64(7), project.TeamID)
						return 11, nil
					})
				mentors.EXPECT().LockNextAvailable(gomock.Any(), gomock.Nil(), "CS").
					Return(&models.Teacher{ID: 1, Name: "Meera", Department: "CS", AssignedProjectCount: 4}, nil)
				projects.EXPECT().AssignMentor(gomock.Any(), gomock.Nil(), int64(11), int64(1)).Return(nil)
				mentors.EXPECT().IncrementAssignedCount(gomock.Any(), gomock.Nil(), int64(1)).Return(nil)
				return teams, projects, mentors
			},
			runner: &fakeTxRunner{},
			wantTx: 1,
			wantResp: &dto.RegisterTeamResponse{
				Message:      "Team created successfully",
				TeamID:       7,
				ProjectID:    11,
				MentorStatus: "Assigned to Meera (ID: 1)",
			},
		},
		{
			name: "duplicate USN inside the request never reaches storage",
			req: func() dto.RegisterTeamRequest {
				req := validRequest()
				req.TeamMembers[1].USN = "usn1"
				return req
			},
			mock: func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore) {
				return mocks.NewMockTeamStore(ctrl), mocks.NewMockProjectStore(ctrl), mocks.NewMockMentorStore(ctrl)
			},
			runner:  &fakeTxRunner{},
			wantErr: apperrors.ErrDuplicateInRequest,
			wantTx:  0,
		},
		{
			name: "member already registered rolls everything back",
			req:  validRequest,
			mock: func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore) {
				teams := mocks.NewMockTeamStore(ctrl)
				teams.EXPECT().FindTeamNameByMemberUSN(gomock.Any(), gomock.Nil(), "usn1").Return("", false, nil)
				teams.EXPECT().FindTeamNameByMemberUSN(gomock.Any(), gomock.Nil(), "usn2").Return("Beta", true, nil)
				return teams, mocks.NewMockProjectStore(ctrl), mocks.NewMockMentorStore(ctrl)
			},
			runner:  &fakeTxRunner{},
			wantErr: apperrors.ErrAlreadyRegistered,
			wantTx:  1,
		},
		{
			name: "duplicate team name surfaces from the insert",
			req:  validRequest,
			mock: func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore) {
				teams := mocks.NewMockTeamStore(ctrl)
				teams.EXPECT().FindTeamNameByMemberUSN(gomock.Any(), gomock.Nil(), gomock.Any()).Return("", false, nil).Times(2)
				teams.EXPECT().CreateTeam(gomock.Any(), gomock.Nil(), gomock.Any()).
					Return(int64(0), apperrors.NewCustomError(apperrors.ErrDuplicateTeamName,
						"Team name 'Alpha' is already taken."))
				return teams, mocks.NewMockProjectStore(ctrl), mocks.NewMockMentorStore(ctrl)
			},
			runner:  &fakeTxRunner{},
			wantErr: apperrors.ErrDuplicateTeamName,
			wantTx:  1,
		},
		{
			name: "exhausted department voids the committed-so-far inserts",
			req:  validRequest,
			mock: func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore) {
				teams := mocks.NewMockTeamStore(ctrl)
				projects := mocks.NewMockProjectStore(ctrl)
				mentors := mocks.NewMockMentorStore(ctrl)
				teams.EXPECT().FindTeamNameByMemberUSN(gomock.Any(), gomock.Nil(), gomock.Any()).Return("", false, nil).Times(2)
				teams.EXPECT().CreateTeam(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(7), nil)
				projects.EXPECT().CreateProject(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(11), nil)
				mentors.EXPECT().LockNextAvailable(gomock.Any(), gomock.Nil(), "CS").
					Return(nil, repositories.ErrNoAvailableMentor)
				return teams, projects, mentors
			},
			runner:  &fakeTxRunner{},
			wantErr: apperrors.ErrNoEligibleMentor,
			wantTx:  1,
		},
		{
			name: "mid-transaction storage error maps to storage fault",
			req:  validRequest,
			mock: func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore) {
				teams := mocks.NewMockTeamStore(ctrl)
				teams.EXPECT().FindTeamNameByMemberUSN(gomock.Any(), gomock.Nil(), "usn1").
					Return("", false, errors.New("connection reset"))
				return teams, mocks.NewMockProjectStore(ctrl), mocks.NewMockMentorStore(ctrl)
			},
			runner:  &fakeTxRunner{},
			wantErr: apperrors.ErrStorageFault,
			wantTx:  1,
		},
		{
			name: "commit failure maps to storage fault",
			req:  validRequest,
			mock: func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore) {
				teams := mocks.NewMockTeamStore(ctrl)
				projects := mocks.NewMockProjectStore(ctrl)
				mentors := mocks.NewMockMentorStore(ctrl)
				teams.EXPECT().FindTeamNameByMemberUSN(gomock.Any(), gomock.Nil(), gomock.Any()).Return("", false, nil).Times(2)
				teams.EXPECT().CreateTeam(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(7), nil)
				projects.EXPECT().CreateProject(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(11), nil)
				mentors.EXPECT().LockNextAvailable(gomock.Any(), gomock.Nil(), "CS").
					Return(&models.Teacher{ID: 1, Name: "Meera"}, nil)
				projects.EXPECT().AssignMentor(gomock.Any(), gomock.Nil(), int64(11), int64(1)).Return(nil)
				mentors.EXPECT().IncrementAssignedCount(gomock.Any(), gomock.Nil(), int64(1)).Return(nil)
				return teams, projects, mentors
			},
			runner:  &fakeTxRunner{commitErr: errors.New("commit failed")},
			wantErr: apperrors.ErrStorageFault,
			wantTx:  1,
		},
		{
			name: "begin failure maps to storage fault",
			req:  validRequest,
			mock: func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore) {
				return mocks.NewMockTeamStore(ctrl), mocks.NewMockProjectStore(ctrl), mocks.NewMockMentorStore(ctrl)
			},
			runner:  &fakeTxRunner{beginErr: errors.New("no connections")},
			wantErr: apperrors.ErrStorageFault,
			wantTx:  1,
		},
		{
			name: "empty member list rejected before any storage work",
			req: func() dto.RegisterTeamRequest {
				req := validRequest()
				req.TeamMembers = nil
				return req
			},
			mock: func(ctrl *gomock.Controller) (*mocks.MockTeamStore, *mocks.MockProjectStore, *mocks.MockMentorStore) {
				return mocks.NewMockTeamStore(ctrl), mocks.NewMockProjectStore(ctrl), mocks.NewMockMentorStore(ctrl)
			},
			runner:  &fakeTxRunner{},
			wantErr: apperrors.ErrBadRequest,
			wantTx:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			teams, projects, mentors := tc.mock(ctrl)
			svc := NewRegistrationService(tc.runner, teams, projects, mentors, zerolog.Nop())

			resp, err := svc.RegisterTeam(context.Background(), tc.req())

			assert.Equal(t, tc.wantTx, tc.runner.calls)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}

// The allocation department comes from the first listed member, not from any
// majority across the roster.
func TestRegistrationService_RegisterTeam_DepartmentFromFirstMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teams := mocks.NewMockTeamStore(ctrl)
	projects := mocks.NewMockProjectStore(ctrl)
	mentors := mocks.NewMockMentorStore(ctrl)

	req := validRequest()
	req.TeamMembers[0].Dept = "EC"
	req.TeamMembers[1].Dept = "CS"

	teams.EXPECT().FindTeamNameByMemberUSN(gomock.Any(), gomock.Nil(), gomock.Any()).Return("", false, nil).Times(2)
	teams.EXPECT().CreateTeam(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(1), nil)
	projects.EXPECT().CreateProject(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(2), nil)
	mentors.EXPECT().LockNextAvailable(gomock.Any(), gomock.Nil(), "EC").
		Return(&models.Teacher{ID: 3, Name: "Kavita", Department: "EC"}, nil)
	projects.EXPECT().AssignMentor(gomock.Any(), gomock.Nil(), int64(2), int64(3)).Return(nil)
	mentors.EXPECT().IncrementAssignedCount(gomock.Any(), gomock.Nil(), int64(3)).Return(nil)

	runner := &fakeTxRunner{}
	svc := NewRegistrationService(runner, teams, projects, mentors, zerolog.Nop())

	resp, err := svc.RegisterTeam(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Assigned to Kavita (ID: 3)", resp.MentorStatus)
}

func TestValidateSubmission(t *testing.T) {
	testCases := []struct {
		name    string
		req     func() dto.RegisterTeamRequest
		wantErr error
	}{
		{
			name: "valid submission",
			req:  validRequest,
		},
		{
			name: "missing team name",
			req: func() dto.RegisterTeamRequest {
				req := validRequest()
				req.TeamName = ""
				return req
			},
			wantErr: apperrors.ErrBadRequest,
		},
		{
			name: "member with blank USN",
			req: func() dto.RegisterTeamRequest {
				req := validRequest()
				req.TeamMembers[0].USN = ""
				return req
			},
			wantErr: apperrors.ErrBadRequest,
		},
		{
			name: "repeated USN",
			req: func() dto.RegisterTeamRequest {
				req := validRequest()
				req.TeamMembers[1].USN = req.TeamMembers[0].USN
				return req
			},
			wantErr: apperrors.ErrDuplicateInRequest,
		},
		{
			name: "single member team is fine",
			req: func() dto.RegisterTeamRequest {
				req := validRequest()
				req.TeamMembers = req.TeamMembers[:1]
				req.TeamSize = 1
				return req
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSubmission(tc.req())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
