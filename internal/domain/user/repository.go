package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByIDs(ctx context.Context, ids []uint) ([]*User, error)
	// ListByDefaultOrganization returns all users whose default organization
	// points at the given organization. Used on organization deletion to
	// reassign or clear the reference.
	ListByDefaultOrganization(ctx context.Context, organizationID uint) ([]*User, error)
}
