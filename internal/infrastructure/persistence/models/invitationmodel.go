package models

type InvitationModel struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"not null;size:255;index:idx_invitation_email_org"`
	Token          string `gorm:"uniqueIndex;not null;size:128"`
	Role           string `gorm:"not null;size:20"`
	Status         string `gorm:"not null;size:20;index"`
	ExpiresAt      int64  `gorm:"not null"`
	OrganizationID uint   `gorm:"not null;index:idx_invitation_email_org;index"`
	InviterID      uint   `gorm:"not null;index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (InvitationModel) TableName() string {
	return "organization_invitations"
}
