package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMP-AppointmentService/internal/domain"
	"github.com/m04kA/SMP-AppointmentService/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type scheduleRepoStub struct {
	windows   []domain.WorkingWindow
	listErr   error
	deleted   bool
	created   []domain.WorkingWindow
	createErr error
}

func (s *scheduleRepoStub) ListByProfessional(ctx context.Context, professionalID int64) ([]domain.WorkingWindow, error) {
	return s.windows, s.listErr
}

func (s *scheduleRepoStub) Create(ctx context.Context, window *domain.WorkingWindow) (*domain.WorkingWindow, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	window.ID = int64(len(s.created) + 1)
	s.created = append(s.created, *window)
	return window, nil
}

func (s *scheduleRepoStub) DeleteByProfessional(ctx context.Context, professionalID int64) error {
	s.deleted = true
	return nil
}

// passthroughTxManager исполняет функцию без настоящей транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type invalidatorStub struct {
	invalidated []int64
}

func (s *invalidatorStub) Invalidate(ctx context.Context, professionalID int64) {
	s.invalidated = append(s.invalidated, professionalID)
}

func validReplaceRequest() *models.ReplaceScheduleRequest {
	return &models.ReplaceScheduleRequest{
		UserID:         7,
		ProfessionalID: 7,
		Windows: []models.WindowInput{
			{Weekday: 1, StartTime: "09:00", EndTime: "13:00", StepMinutes: 30},
			{Weekday: 1, StartTime: "14:00", EndTime: "18:00", StepMinutes: 30},
		},
	}
}

func TestReplaceWeeklySchedule(t *testing.T) {
	t.Run("replaces windows inside a transaction and drops the cache", func(t *testing.T) {
		repo := &scheduleRepoStub{}
		txMgr := &passthroughTxManager{}
		invalidator := &invalidatorStub{}
		svc := NewService(repo, txMgr, invalidator, nopLogger{})

		resp, err := svc.ReplaceWeeklySchedule(context.Background(), validReplaceRequest())
		require.NoError(t, err)

		assert.Equal(t, 1, txMgr.calls)
		assert.True(t, repo.deleted)
		assert.Len(t, repo.created, 2)
		assert.Equal(t, []int64{7}, invalidator.invalidated)
		assert.Len(t, resp.Windows, 2)
	})

	t.Run("empty window list closes online booking", func(t *testing.T) {
		repo := &scheduleRepoStub{}
		svc := NewService(repo, &passthroughTxManager{}, nil, nopLogger{})

		req := validReplaceRequest()
		req.Windows = nil

		resp, err := svc.ReplaceWeeklySchedule(context.Background(), req)
		require.NoError(t, err)

		assert.True(t, repo.deleted)
		assert.Empty(t, repo.created)
		assert.Empty(t, resp.Windows)
	})

	t.Run("another user cannot replace the schedule", func(t *testing.T) {
		svc := NewService(&scheduleRepoStub{}, &passthroughTxManager{}, nil, nopLogger{})

		req := validReplaceRequest()
		req.UserID = 99

		_, err := svc.ReplaceWeeklySchedule(context.Background(), req)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("validation happens before any write", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*models.ReplaceScheduleRequest)
			wantErr error
		}{
			{
				name:    "invalid weekday",
				mutate:  func(r *models.ReplaceScheduleRequest) { r.Windows[0].Weekday = 7 },
				wantErr: ErrInvalidWeekday,
			},
			{
				name:    "start after end",
				mutate:  func(r *models.ReplaceScheduleRequest) { r.Windows[0].StartTime = "15:00"; r.Windows[0].EndTime = "14:00" },
				wantErr: ErrInvalidTimeRange,
			},
			{
				name:    "step below the minimum",
				mutate:  func(r *models.ReplaceScheduleRequest) { r.Windows[0].StepMinutes = 1 },
				wantErr: ErrInvalidStep,
			},
			{
				name:    "step above the maximum",
				mutate:  func(r *models.ReplaceScheduleRequest) { r.Windows[0].StepMinutes = 600 },
				wantErr: ErrInvalidStep,
			},
			{
				name:    "unparsable time",
				mutate:  func(r *models.ReplaceScheduleRequest) { r.Windows[0].StartTime = "morning" },
				wantErr: ErrInvalidInput,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := &scheduleRepoStub{}
				svc := NewService(repo, &passthroughTxManager{}, nil, nopLogger{})

				req := validReplaceRequest()
				tc.mutate(req)

				_, err := svc.ReplaceWeeklySchedule(context.Background(), req)
				require.ErrorIs(t, err, tc.wantErr)
				assert.False(t, repo.deleted)
			})
		}
	})

	t.Run("transaction failure does not drop the cache", func(t *testing.T) {
		repo := &scheduleRepoStub{createErr: errors.New("insert failed")}
		invalidator := &invalidatorStub{}
		svc := NewService(repo, &passthroughTxManager{}, invalidator, nopLogger{})

		_, err := svc.ReplaceWeeklySchedule(context.Background(), validReplaceRequest())
		require.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, invalidator.invalidated)
	})
}

func TestGetWeeklySchedule(t *testing.T) {
	t.Run("returns own schedule", func(t *testing.T) {
		repo := &scheduleRepoStub{windows: []domain.WorkingWindow{
			{ID: 1, ProfessionalID: 7, Weekday: domain.Monday, StartTime: "09:00", EndTime: "18:00", StepMinutes: 30},
		}}
		svc := NewService(repo, &passthroughTxManager{}, nil, nopLogger{})

		resp, err := svc.GetWeeklySchedule(context.Background(), 7, 7)
		require.NoError(t, err)

		require.Len(t, resp.Windows, 1)
		assert.Equal(t, 1, resp.Windows[0].Weekday)
		assert.Equal(t, "09:00", resp.Windows[0].StartTime)
	})

	t.Run("foreign schedule is forbidden", func(t *testing.T) {
		svc := NewService(&scheduleRepoStub{}, &passthroughTxManager{}, nil, nopLogger{})

		_, err := svc.GetWeeklySchedule(context.Background(), 7, 8)
		require.ErrorIs(t, err, ErrAccessDenied)
	})
}
