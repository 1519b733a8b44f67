package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

// MockService mocks tracker.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Snapshot(ctx context.Context) domain.State {
	args := m.Called(ctx)
	return args.Get(0).(domain.State)
}

func (m *MockService) Dashboard(ctx context.Context) domain.Dashboard {
	args := m.Called(ctx)
	return args.Get(0).(domain.Dashboard)
}

func (m *MockService) SearchJobs(ctx context.Context, query string) []domain.Job {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Job)
}

func (m *MockService) JobBoard(ctx context.Context) []domain.JobColumn {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.JobColumn)
}

func (m *MockService) FollowUpsDue(ctx context.Context) []domain.Contact {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Contact)
}

func (m *MockService) AddJob(ctx context.Context, job domain.NewJob) domain.Outcome {
	args := m.Called(ctx, job)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) UpdateJobStatus(ctx context.Context, id string, status domain.JobStatus) domain.Outcome {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) DeleteJob(ctx context.Context, id string) domain.Outcome {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) CompleteTask(ctx context.Context, id string) domain.Outcome {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) ResetDailyTasks(ctx context.Context) domain.Outcome {
	args := m.Called(ctx)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) AddContact(ctx context.Context, contact domain.NewContact) domain.Outcome {
	args := m.Called(ctx, contact)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) UpdateContact(ctx context.Context, id string, update domain.ContactUpdate) domain.Outcome {
	args := m.Called(ctx, id, update)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) DeleteContact(ctx context.Context, id string) domain.Outcome {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) LogContactInteraction(ctx context.Context, id string) domain.Outcome {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) SetDisplayName(ctx context.Context, name string) domain.Outcome {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) SetVisaExpiry(ctx context.Context, date *time.Time) domain.Outcome {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) AcknowledgeLevelUp(ctx context.Context) domain.Outcome {
	args := m.Called(ctx)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) DismissAchievement(ctx context.Context) domain.Outcome {
	args := m.Called(ctx)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) ResetAll(ctx context.Context) domain.Outcome {
	args := m.Called(ctx)
	return args.Get(0).(domain.Outcome)
}

func (m *MockService) Restore(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPinger mocks database.Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
