package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contactform/backend/internal/captcha"
	"github.com/contactform/backend/internal/config"
	"github.com/contactform/backend/internal/handler"
	"github.com/contactform/backend/internal/logging"
	"github.com/contactform/backend/internal/notify"
	"github.com/contactform/backend/internal/repository"
	"github.com/contactform/backend/internal/reviews"
	"github.com/contactform/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()

	repo, err := repository.Open(ctx, cfg.Database.URL)
	if err != nil {
		logging.Fatal("failed to open database", "error", err)
	}
	defer repo.Close()
	if err := repo.Migrate(ctx); err != nil {
		logging.Fatal("failed to migrate database", "error", err)
	}

	notifier, err := newNotifier(cfg)
	if err != nil {
		logging.Fatal("failed to configure notifier", "transport", cfg.Notify.Transport, "error", err)
	}
	if c, ok := notifier.(io.Closer); ok {
		defer c.Close()
	}

	if cfg.Captcha.SecretKey == "" {
		slog.Warn("RECAPTCHA_SECRET_KEY not set; POST /submit will reject every token")
	}
	if !cfg.ReviewsConfigured() {
		slog.Warn("GOOGLE_API_KEY or PLACE_ID not set; GET /reviews will fail")
	}

	contactService := service.NewContactService(repo, notifier)
	router := handler.NewRouter(handler.Routes{
		Base:    handler.New(repo, cfg.Server.CORSOrigin),
		Contact: handler.NewContactHandler(contactService),
		Captcha: handler.NewCaptchaHandler(captcha.NewRecaptchaVerifier(
			cfg.Captcha.SiteKey, cfg.Captcha.SecretKey, cfg.Captcha.VerifyURL,
		)),
		Reviews: handler.NewReviewsHandler(reviews.NewClient(cfg.Reviews.BaseURL), handler.ReviewsConfig{
			APIKey:  cfg.Reviews.APIKey,
			PlaceID: cfg.Reviews.PlaceID,
		}),
		Static: newStaticHandler(cfg.Server.StaticDir),
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Covers the synchronous SMTP round trip on /submit_form.
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "transport", cfg.Notify.Transport)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}

func newNotifier(cfg *config.Config) (notify.Notifier, error) {
	if cfg.Notify.Transport == config.TransportRedis {
		return notify.NewRedisNotifier(notify.RedisConfig{
			Addr:      cfg.Notify.RedisAddr,
			Password:  cfg.Notify.RedisPassword,
			Key:       cfg.Notify.RedisKey,
			Recipient: cfg.Mail.Recipient,
		})
	}
	return notify.NewSMTPNotifier(notify.SMTPConfig{
		Host:      cfg.Mail.Server,
		Port:      cfg.Mail.Port,
		UseTLS:    cfg.Mail.UseTLS,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		From:      cfg.Mail.DefaultSender,
		Recipient: cfg.Mail.Recipient,
	})
}

// newStaticHandler returns nil when dir does not exist so the API still
// starts without the landing page.
func newStaticHandler(dir string) *handler.StaticHandler {
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		slog.Warn("static directory not found; landing page disabled", "dir", dir)
		return nil
	}
	return handler.NewStaticHandler(handler.StaticConfig{Dir: dir})
}
