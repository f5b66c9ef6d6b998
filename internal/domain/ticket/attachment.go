package ticket

import (
	"fmt"
	"time"
)

// Attachment is an immutable file pointer attached to a ticket or to one of
// its comments. The file itself lives behind an opaque URL issued by the
// upload collaborator; the core never inspects it.
type Attachment struct {
	id        uint
	ticketID  uint
	commentID *uint
	fileName  string
	fileSize  int64
	fileType  string
	fileURL   string
	createdAt time.Time
}

func NewAttachment(
	ticketID uint,
	commentID *uint,
	fileName string,
	fileSize int64,
	fileType string,
	fileURL string,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if commentID != nil && *commentID == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if fileSize <= 0 {
		return nil, fmt.Errorf("file size must be positive")
	}
	if len(fileURL) == 0 {
		return nil, fmt.Errorf("file URL is required")
	}

	return &Attachment{
		ticketID:  ticketID,
		commentID: commentID,
		fileName:  fileName,
		fileSize:  fileSize,
		fileType:  fileType,
		fileURL:   fileURL,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	commentID *uint,
	fileName string,
	fileSize int64,
	fileType string,
	fileURL string,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:        id,
		ticketID:  ticketID,
		commentID: commentID,
		fileName:  fileName,
		fileSize:  fileSize,
		fileType:  fileType,
		fileURL:   fileURL,
		createdAt: createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) CommentID() *uint {
	return a.commentID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) FileSize() int64 {
	return a.fileSize
}

func (a *Attachment) FileType() string {
	return a.fileType
}

func (a *Attachment) FileURL() string {
	return a.fileURL
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
