package migration

import (
	"crewdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.OrganizationModel{},
		&models.MembershipModel{},
		&models.InvitationModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
	}
}
