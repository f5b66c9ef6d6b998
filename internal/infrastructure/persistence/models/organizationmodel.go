package models

type OrganizationModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;size:100"`
	Slug         string `gorm:"uniqueIndex;not null;size:100"`
	Logo         string `gorm:"size:500"`
	Website      string `gorm:"size:500"`
	BillingEmail string `gorm:"size:255"`
	BillingName  string `gorm:"size:100"`
	OwnerID      uint   `gorm:"not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

// MembershipModel joins users to organizations. The composite unique index is
// the arbiter for racing invitation accepts.
type MembershipModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;uniqueIndex:idx_user_org"`
	OrganizationID uint   `gorm:"not null;uniqueIndex:idx_user_org;index"`
	Role           string `gorm:"not null;size:20"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
}

func (MembershipModel) TableName() string {
	return "user_organizations"
}
