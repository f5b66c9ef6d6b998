package usecases

import (
	"context"

	"crewdesk/internal/domain/organization"
	vo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/logger"
)

type mockOrganizationRepository struct {
	SaveFunc       func(ctx context.Context, org *organization.Organization) error
	UpdateFunc     func(ctx context.Context, org *organization.Organization) error
	DeleteFunc     func(ctx context.Context, id uint) error
	GetByIDFunc    func(ctx context.Context, id uint) (*organization.Organization, error)
	GetBySlugFunc  func(ctx context.Context, slug string) (*organization.Organization, error)
	SlugExistsFunc func(ctx context.Context, slug string) (bool, error)
	ListByUserFunc func(ctx context.Context, userID uint) ([]*organization.Organization, error)
}

func (m *mockOrganizationRepository) Save(ctx context.Context, org *organization.Organization) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, org)
	}
	return nil
}

func (m *mockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, org)
	}
	return nil
}

func (m *mockOrganizationRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockOrganizationRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockOrganizationRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if m.SlugExistsFunc != nil {
		return m.SlugExistsFunc(ctx, slug)
	}
	return false, nil
}

func (m *mockOrganizationRepository) ListByUser(ctx context.Context, userID uint) ([]*organization.Organization, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockMembershipRepository struct {
	SaveFunc                 func(ctx context.Context, membership *organization.Membership) error
	UpdateFunc               func(ctx context.Context, membership *organization.Membership) error
	DeleteFunc               func(ctx context.Context, userID, organizationID uint) error
	DeleteByOrganizationFunc func(ctx context.Context, organizationID uint) error
	GetFunc                  func(ctx context.Context, userID, organizationID uint) (*organization.Membership, error)
	ListByOrganizationFunc   func(ctx context.Context, organizationID uint) ([]*organization.Membership, error)
	ListByUserFunc           func(ctx context.Context, userID uint) ([]*organization.Membership, error)
	CountByOrganizationFunc  func(ctx context.Context, organizationID uint) (int64, error)
	CountByRoleFunc          func(ctx context.Context, organizationID uint, role vo.Role) (int64, error)
}

func (m *mockMembershipRepository) Save(ctx context.Context, membership *organization.Membership) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, membership)
	}
	return nil
}

func (m *mockMembershipRepository) Update(ctx context.Context, membership *organization.Membership) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, membership)
	}
	return nil
}

func (m *mockMembershipRepository) Delete(ctx context.Context, userID, organizationID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, organizationID)
	}
	return nil
}

func (m *mockMembershipRepository) DeleteByOrganization(ctx context.Context, organizationID uint) error {
	if m.DeleteByOrganizationFunc != nil {
		return m.DeleteByOrganizationFunc(ctx, organizationID)
	}
	return nil
}

func (m *mockMembershipRepository) Get(ctx context.Context, userID, organizationID uint) (*organization.Membership, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, organizationID)
	}
	return nil, nil
}

func (m *mockMembershipRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*organization.Membership, error) {
	if m.ListByOrganizationFunc != nil {
		return m.ListByOrganizationFunc(ctx, organizationID)
	}
	return nil, nil
}

func (m *mockMembershipRepository) ListByUser(ctx context.Context, userID uint) ([]*organization.Membership, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockMembershipRepository) CountByOrganization(ctx context.Context, organizationID uint) (int64, error) {
	if m.CountByOrganizationFunc != nil {
		return m.CountByOrganizationFunc(ctx, organizationID)
	}
	return 0, nil
}

func (m *mockMembershipRepository) CountByRole(ctx context.Context, organizationID uint, role vo.Role) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, organizationID, role)
	}
	return 0, nil
}

type mockInvitationRepository struct {
	SaveFunc                      func(ctx context.Context, invitation *organization.Invitation) error
	UpdateFunc                    func(ctx context.Context, invitation *organization.Invitation) error
	GetByIDFunc                   func(ctx context.Context, id uint) (*organization.Invitation, error)
	GetByTokenFunc                func(ctx context.Context, token string) (*organization.Invitation, error)
	GetPendingByEmailFunc         func(ctx context.Context, email string, organizationID uint) (*organization.Invitation, error)
	ListPendingByOrganizationFunc func(ctx context.Context, organizationID uint) ([]*organization.Invitation, error)
	DeleteByOrganizationFunc      func(ctx context.Context, organizationID uint) error
}

func (m *mockInvitationRepository) Save(ctx context.Context, invitation *organization.Invitation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, invitation)
	}
	return nil
}

func (m *mockInvitationRepository) Update(ctx context.Context, invitation *organization.Invitation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, invitation)
	}
	return nil
}

func (m *mockInvitationRepository) GetByID(ctx context.Context, id uint) (*organization.Invitation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInvitationRepository) GetByToken(ctx context.Context, token string) (*organization.Invitation, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockInvitationRepository) GetPendingByEmail(ctx context.Context, email string, organizationID uint) (*organization.Invitation, error) {
	if m.GetPendingByEmailFunc != nil {
		return m.GetPendingByEmailFunc(ctx, email, organizationID)
	}
	return nil, nil
}

func (m *mockInvitationRepository) ListPendingByOrganization(ctx context.Context, organizationID uint) ([]*organization.Invitation, error) {
	if m.ListPendingByOrganizationFunc != nil {
		return m.ListPendingByOrganizationFunc(ctx, organizationID)
	}
	return nil, nil
}

func (m *mockInvitationRepository) DeleteByOrganization(ctx context.Context, organizationID uint) error {
	if m.DeleteByOrganizationFunc != nil {
		return m.DeleteByOrganizationFunc(ctx, organizationID)
	}
	return nil
}

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
	return nil
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

type mockTokenGenerator struct {
	GenerateFunc func() (string, error)
}

func (m *mockTokenGenerator) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "test-token", nil
}

type mockNotifier struct {
	SendInvitationFunc func(ctx context.Context, invitation *organization.Invitation, organizationName, inviterName string) error
	sent               chan struct{}
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{sent: make(chan struct{}, 1)}
}

func (m *mockNotifier) SendInvitation(ctx context.Context, invitation *organization.Invitation, organizationName, inviterName string) error {
	defer func() {
		select {
		case m.sent <- struct{}{}:
		default:
		}
	}()
	if m.SendInvitationFunc != nil {
		return m.SendInvitationFunc(ctx, invitation, organizationName, inviterName)
	}
	return nil
}

// fakeTxManager runs the transactional closure inline.
type fakeTxManager struct {
	RunErr error
}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.RunErr != nil {
		return f.RunErr
	}
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                     {}
func (m *mockLogger) Info(msg string, args ...any)                      {}
func (m *mockLogger) Warn(msg string, args ...any)                      {}
func (m *mockLogger) Error(msg string, args ...any)                     {}
func (m *mockLogger) With(args ...any) logger.Interface                 { return m }
func (m *mockLogger) Named(name string) logger.Interface                { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})   {}
