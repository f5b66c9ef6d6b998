package main

import (
	"fmt"
	"os"

	orgUsecases "crewdesk/internal/application/organization/usecases"
	"crewdesk/internal/infrastructure/config"
	"crewdesk/internal/infrastructure/database"
	"crewdesk/internal/infrastructure/email"
	"crewdesk/internal/infrastructure/queue"
	"crewdesk/internal/infrastructure/repository"
	"crewdesk/internal/shared/db"
	"crewdesk/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting background worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	userRepo := repository.NewUserRepository(database.Get())
	orgRepo := repository.NewOrganizationRepository(database.Get())
	membershipRepo := repository.NewMembershipRepository(database.Get())
	invitationRepo := repository.NewInvitationRepository(database.Get())
	txMgr := db.NewTransactionManager(database.Get())

	createOrgUC := orgUsecases.NewCreateOrganizationUseCase(orgRepo, membershipRepo, userRepo, txMgr, log)
	bootstrapUC := orgUsecases.NewCreateDefaultOrganizationUseCase(createOrgUC, userRepo, log)

	sender := email.NewSMTPInvitationSender(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	srv := queue.NewServer(&cfg.Redis, &cfg.Queue, log)
	srv.Handle(queue.TypeOrgBootstrap, queue.NewOrgBootstrapHandler(bootstrapUC, log))
	srv.Handle(queue.TypeInvitationEmail, queue.NewInvitationEmailHandler(invitationRepo, sender, log))

	log.Infow("worker consuming queues", "concurrency", cfg.Queue.Concurrency)

	// Run blocks until SIGINT/SIGTERM and drains in-flight tasks on shutdown.
	if err := srv.Run(); err != nil {
		log.Fatalw("worker stopped with error", "error", err)
	}
}
