package main

import (
	"context"

	"github.com/Nataraj2001/LMS/internal/application/accountservice"
	"github.com/Nataraj2001/LMS/internal/application/authservice"
	"github.com/Nataraj2001/LMS/internal/application/ledgerservice"
	"github.com/Nataraj2001/LMS/internal/application/loanservice"
	"github.com/Nataraj2001/LMS/internal/application/otpservice"
	"github.com/Nataraj2001/LMS/internal/application/repaymentservice"
	"github.com/Nataraj2001/LMS/internal/infrastructure/database"
	"github.com/Nataraj2001/LMS/internal/infrastructure/email"
	"github.com/Nataraj2001/LMS/internal/repositories/accountrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/ledgerrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/loanrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/repaymentrepo"
	"github.com/Nataraj2001/LMS/internal/repositories/sanctionrepo"
	"github.com/Nataraj2001/LMS/internal/server"
	"github.com/Nataraj2001/LMS/internal/server/handlers"
	"github.com/Nataraj2001/LMS/pkg/config"
	"github.com/Nataraj2001/LMS/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New()
		l.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.NewWithConfig(cfg.Logging)

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.ShutDown()

	accountRepo := accountrepo.New(db, log)
	loanRepo := loanrepo.New(db, log)
	sanctionRepo := sanctionrepo.New(db, log)
	repaymentRepo := repaymentrepo.New(db, log)
	ledgerRepo := ledgerrepo.New(db, log)

	notifier := email.New(cfg.SMTP, log)

	ledgerSvc := ledgerservice.New(db, accountRepo, ledgerRepo, log)
	accountSvc := accountservice.New(accountRepo, notifier, log)
	loanSvc := loanservice.New(db, loanRepo, sanctionRepo, repaymentRepo, accountRepo, ledgerSvc, notifier, log)
	repaymentSvc := repaymentservice.New(db, repaymentRepo, loanRepo, sanctionRepo, accountRepo, ledgerSvc, notifier, cfg.Scheduler.DueReminderInterval, log)
	otpSvc := otpservice.New(accountRepo, notifier, cfg.Scheduler.OTPSweepInterval, log)
	authSvc := authservice.NewAuthService(cfg, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := repaymentSvc.StartDueReminderSweep(ctx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Due reminder sweep exited")
		}
	}()
	go func() {
		if err := otpSvc.StartExpirySweep(ctx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("OTP expiry sweep exited")
		}
	}()

	h := handlers.New(accountSvc, loanSvc, repaymentSvc, ledgerSvc, otpSvc, authSvc, log, cfg)

	srv := server.New(cfg, h, log)
	srv.Start()
}
