package usecases

import (
	"context"

	"crewdesk/internal/domain/organization"
	orgvo "crewdesk/internal/domain/organization/valueobjects"
	"crewdesk/internal/domain/ticket"
	"crewdesk/internal/domain/user"
	"crewdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc         func(ctx context.Context, ticketID uint) error
	GetByIDFunc        func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByReferenceFunc func(ctx context.Context, reference string) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountCommentsFunc  func(ctx context.Context, ticketIDs []uint, includeInternal bool) (map[uint]int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByReference(ctx context.Context, reference string) (*ticket.Ticket, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, reference)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountComments(ctx context.Context, ticketIDs []uint, includeInternal bool) (map[uint]int64, error) {
	if m.CountCommentsFunc != nil {
		return m.CountCommentsFunc(ctx, ticketIDs, includeInternal)
	}
	return map[uint]int64{}, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, c *ticket.Comment) error
	UpdateFunc       func(ctx context.Context, c *ticket.Comment) error
	DeleteFunc       func(ctx context.Context, commentID uint) error
	GetByIDFunc      func(ctx context.Context, commentID uint) (*ticket.Comment, error)
	ListByTicketFunc func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID, includeInternal)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc          func(ctx context.Context, a *ticket.Attachment) error
	ListByTicketFunc  func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	ListByCommentFunc func(ctx context.Context, commentID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByComment(ctx context.Context, commentID uint) ([]*ticket.Attachment, error) {
	if m.ListByCommentFunc != nil {
		return m.ListByCommentFunc(ctx, commentID)
	}
	return nil, nil
}

type mockMembershipRepository struct {
	SaveFunc                 func(ctx context.Context, m *organization.Membership) error
	UpdateFunc               func(ctx context.Context, m *organization.Membership) error
	DeleteFunc               func(ctx context.Context, userID, organizationID uint) error
	DeleteByOrganizationFunc func(ctx context.Context, organizationID uint) error
	GetFunc                  func(ctx context.Context, userID, organizationID uint) (*organization.Membership, error)
	ListByOrganizationFunc   func(ctx context.Context, organizationID uint) ([]*organization.Membership, error)
	ListByUserFunc           func(ctx context.Context, userID uint) ([]*organization.Membership, error)
	CountByOrganizationFunc  func(ctx context.Context, organizationID uint) (int64, error)
	CountByRoleFunc          func(ctx context.Context, organizationID uint, role orgvo.Role) (int64, error)
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

func (m *mockMembershipRepository) CountByRole(ctx context.Context, organizationID uint, role orgvo.Role) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, organizationID, role)
	}
	return 0, nil
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

type mockReferenceGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockReferenceGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "CD-20250101-ABCDEF", nil
}

type mockMarkdownService struct{}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	return htmlContent
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
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
