package models

// UserModel is the persistence model for users. System role and default
// organization are the only mutable pieces the backend owns; identity fields
// mirror what the token issuer asserts.
type UserModel struct {
	ID                    uint   `gorm:"primaryKey"`
	Email                 string `gorm:"uniqueIndex;not null;size:255"`
	Name                  string `gorm:"not null;size:100"`
	Image                 string `gorm:"size:500"`
	SystemRole            string `gorm:"not null;default:USER;size:20;index"`
	DefaultOrganizationID *uint  `gorm:"index"`
	CreatedAt             int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt             int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
