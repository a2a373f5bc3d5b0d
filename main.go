package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tryout-intake/config"
	"tryout-intake/handlers"
	"tryout-intake/mailer"
	"tryout-intake/services"
	"tryout-intake/utils"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Parse()
	if err != nil {
		log.Fatal("failed to read configuration:", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Warn("⚠️  No .env file found, reading environment variables directly")
	}

	var m mailer.Mailer
	if cfg.Mail.Enabled() {
		m = mailer.NewResendMailer(cfg.Mail.APIKey)
	} else {
		logger.Warn("⚠️  Email not configured (RESEND_API_KEY/MAIL_FROM/MAIL_TO), applications will not be delivered")
	}

	svc := services.NewApplicationService(cfg, m, logger)
	app := handlers.NewApp(cfg, svc, logger)

	sched, err := svc.StartStatsReporter(cfg.StatsInterval)
	if err != nil {
		logger.Fatalw("failed to start stats reporter", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			logger.Errorw("Server error", "error", err)
			stop()
		}
	}()

	logger.Infof("✅ Server running on http://localhost%s (%s)", cfg.ListenAddr(), cfg.Environment)
	logger.Infof("✅ Stats reporter running (every %s)", cfg.StatsInterval)
	logger.Infof("✅ CORS configured for origins: %s", strings.Join(cfg.AllowedOrigins, ","))
	if cfg.HasStaticDir() {
		logger.Infof("✅ Serving form from %s", cfg.StaticDir)
	}

	<-ctx.Done()
	logger.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Errorw("server shutdown", "error", err)
	}
	if err := sched.Shutdown(); err != nil {
		logger.Errorw("scheduler shutdown", "error", err)
	}
}
