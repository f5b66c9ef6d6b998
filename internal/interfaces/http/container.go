package http

import (
	"gorm.io/gorm"

	orgUsecases "crewdesk/internal/application/organization/usecases"
	ticketUsecases "crewdesk/internal/application/ticket/usecases"
	userUsecases "crewdesk/internal/application/user/usecases"
	domainticket "crewdesk/internal/domain/ticket"
	"crewdesk/internal/infrastructure/config"
	"crewdesk/internal/infrastructure/queue"
	"crewdesk/internal/infrastructure/repository"
	"crewdesk/internal/infrastructure/token"
	orghandlers "crewdesk/internal/interfaces/http/handlers/organization"
	tickethandlers "crewdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "crewdesk/internal/interfaces/http/handlers/user"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/logger"
	"crewdesk/internal/shared/markdown"
)

// container wires repositories, use cases, and handlers. Kept in one place so
// the dependency graph is readable top to bottom.
type container struct {
	organizationHandler *orghandlers.OrganizationHandler
	ticketHandler       *tickethandlers.TicketHandler
	userHandler         *userhandlers.UserHandler
}

func newContainer(database *gorm.DB, queueClient *queue.Client, cfg *config.Config, log logger.Interface) *container {
	userRepo := repository.NewUserRepository(database)
	orgRepo := repository.NewOrganizationRepository(database)
	membershipRepo := repository.NewMembershipRepository(database)
	invitationRepo := repository.NewInvitationRepository(database)
	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	attachmentRepo := repository.NewAttachmentRepository(database)

	txMgr := db.NewTransactionManager(database)
	tokenGen := token.NewInvitationTokenGenerator()
	refGen := domainticket.NewDefaultReferenceGenerator()
	markdownSvc := markdown.NewService()
	notifier := queue.NewAsyncInvitationNotifier(queueClient)

	createOrgUC := orgUsecases.NewCreateOrganizationUseCase(orgRepo, membershipRepo, userRepo, txMgr, log)

	orgHandler := orghandlers.NewOrganizationHandler(
		createOrgUC,
		orgUsecases.NewUpdateOrganizationUseCase(orgRepo, membershipRepo, log),
		orgUsecases.NewDeleteOrganizationUseCase(orgRepo, membershipRepo, invitationRepo, userRepo, txMgr, log),
		orgUsecases.NewGetOrganizationUseCase(orgRepo, membershipRepo, log),
		orgUsecases.NewListOrganizationsUseCase(orgRepo, log),
		orgUsecases.NewListMembersUseCase(membershipRepo, userRepo, log),
		orgUsecases.NewRemoveUserUseCase(orgRepo, membershipRepo, userRepo, txMgr, log),
		orgUsecases.NewUpdateUserRoleUseCase(orgRepo, membershipRepo, log),
		orgUsecases.NewInviteMemberUseCase(orgRepo, membershipRepo, invitationRepo, userRepo, tokenGen, notifier, log),
		orgUsecases.NewAcceptInvitationUseCase(orgRepo, membershipRepo, invitationRepo, userRepo, txMgr, log),
		orgUsecases.NewRevokeInvitationUseCase(membershipRepo, invitationRepo, log),
		orgUsecases.NewGetInvitationByTokenUseCase(orgRepo, invitationRepo, userRepo, log),
		orgUsecases.NewListPendingInvitationsUseCase(membershipRepo, invitationRepo, log),
		&cfg.Invitation,
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUsecases.NewCreateTicketUseCase(ticketRepo, attachmentRepo, membershipRepo, refGen, txMgr, log),
		ticketUsecases.NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, membershipRepo, markdownSvc, log),
		ticketUsecases.NewListTicketsUseCase(ticketRepo, membershipRepo, log),
		ticketUsecases.NewUpdateStatusUseCase(ticketRepo, commentRepo, txMgr, log),
		ticketUsecases.NewAssignTicketUseCase(ticketRepo, userRepo, log),
		ticketUsecases.NewChangePriorityUseCase(ticketRepo, log),
		ticketUsecases.NewAddCommentUseCase(ticketRepo, commentRepo, attachmentRepo, membershipRepo, txMgr, log),
		ticketUsecases.NewEditCommentUseCase(commentRepo, log),
		ticketUsecases.NewDeleteCommentUseCase(commentRepo, log),
		ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log),
	)

	userHandler := userhandlers.NewUserHandler(
		userUsecases.NewRegisterUserUseCase(userRepo, &defaultOrganizationEnqueuer{client: queueClient}, log),
		userUsecases.NewGetCurrentUserUseCase(userRepo, log),
	)

	return &container{
		organizationHandler: orgHandler,
		ticketHandler:       ticketHandler,
		userHandler:         userHandler,
	}
}
