package usecases

import (
	"context"

	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc                      func(ctx context.Context, u *user.User) error
	UpdateFunc                    func(ctx context.Context, u *user.User) error
	GetByIDFunc                   func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc                func(ctx context.Context, email string) (*user.User, error)
	ListByIDsFunc                 func(ctx context.Context, ids []uint) ([]*user.User, error)
	ListByDefaultOrganizationFunc func(ctx context.Context, organizationID uint) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.ListByIDsFunc != nil {
		return m.ListByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByDefaultOrganization(ctx context.Context, organizationID uint) ([]*user.User, error) {
	if m.ListByDefaultOrganizationFunc != nil {
		return m.ListByDefaultOrganizationFunc(ctx, organizationID)
	}
	return nil, nil
}

type mockEnqueuer struct {
	EnqueueFunc func(ctx context.Context, userID uint, name string) error
	calls       []uint
}

func (m *mockEnqueuer) EnqueueDefaultOrganization(ctx context.Context, userID uint, name string) error {
	m.calls = append(m.calls, userID)
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(ctx, userID, name)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
