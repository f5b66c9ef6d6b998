package models

type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	Reference      string `gorm:"uniqueIndex;size:50;not null"`
	Subject        string `gorm:"size:200;not null"`
	Message        string `gorm:"type:text;not null"`
	Status         string `gorm:"size:30;not null;index"`
	Priority       string `gorm:"size:20;not null;index"`
	Category       string `gorm:"size:50;not null;index"`
	OrganizationID *uint  `gorm:"index"`
	ReporterID     uint   `gorm:"not null;index"`
	AssigneeID     *uint  `gorm:"index"`
	ResolvedAt     *int64
	Version        int   `gorm:"not null;default:1"`
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "support_tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	UserID     uint   `gorm:"not null;index"`
	Message    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type AttachmentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	CommentID *uint  `gorm:"index"`
	FileName  string `gorm:"size:255;not null"`
	FileSize  int64  `gorm:"not null"`
	FileType  string `gorm:"size:100"`
	FileURL   string `gorm:"size:1000;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}
