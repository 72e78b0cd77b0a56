package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/voicethroughimage/vti/internal/logging"
	"github.com/voicethroughimage/vti/internal/server"
	"github.com/voicethroughimage/vti/internal/session"
	"github.com/voicethroughimage/vti/internal/web"
)

var (
	servePort       int
	retryInterval   time.Duration
	sweepInterval   time.Duration
	shutdownTimeout = 15 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website",
	Long:  `Starts the Voice Through Image website. Missing credentials switch the matching features to demo mode instead of failing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		log := newLogger(cfg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := openServices(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer svc.Close()

		sessions := session.NewManager(session.Options{
			Secret:     sessionSecret(cfg, log),
			CookieName: cfg.Session.CookieName,
			TTL:        cfg.Session.TTL,
			FreshTTL:   cfg.Session.FreshTTL,
			Secure:     cfg.Session.Secure,
			Log:        logging.Component(log, "session"),
		})

		site, err := web.New(web.Deps{
			Flags:      svc.flags,
			Sessions:   sessions,
			Auth:       svc.identity,
			OAuth:      svc.oauth,
			Library:    svc.library,
			Media:      svc.media,
			Assistant:  svc.assistant,
			Notify:     svc.notify,
			Inbox:      svc.inbox,
			Audit:      svc.audit,
			UploadsDir: svc.uploadsDir(),
			MaxUpload:  cfg.Uploads.MaxBytes,
			Log:        log,
		})
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:       cfg.Server.Port,
			AllowAll:   cfg.Server.AllowAllOrigins,
			ForceHTTPS: cfg.Server.ForceHTTPS,
		}, svc.db, log)
		site.RegisterRoutes(srv.Router())

		go sessions.Run(ctx, sweepInterval)
		go retryNotifications(ctx, svc, retryInterval)
		go pruneAuditLog(ctx, svc, time.Hour)

		go func() {
			<-ctx.Done()
			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown")
			}
		}()

		log.Info().
			Str("version", Version).
			Int("port", cfg.Server.Port).
			Str("data_dir", cfg.DataDir).
			Msg("starting website")
		return srv.Start()
	},
}

// retryNotifications re-sends undelivered staff notifications until ctx ends.
func retryNotifications(ctx context.Context, svc *services, interval time.Duration) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := svc.notify.RetryPending(ctx)
			if err != nil {
				svc.log.Warn().Err(err).Msg("retrying notifications")
			} else if n > 0 {
				svc.log.Info().Int("queued", n).Msg("retrying undelivered notifications")
			}
		}
	}
}

// pruneAuditLog applies the audit retention at startup and then every
// interval.
func pruneAuditLog(ctx context.Context, svc *services, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		n, err := svc.pruneAudit(ctx)
		if err != nil {
			svc.log.Warn().Err(err).Msg("pruning audit log")
		} else if n > 0 {
			svc.log.Info().Int64("removed", n).Msg("pruned audit log")
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().DurationVar(&retryInterval, "retry-interval", 5*time.Minute, "how often undelivered notifications are re-sent (0 disables)")
	serveCmd.Flags().DurationVar(&sweepInterval, "sweep-interval", time.Minute, "how often idle sessions are dropped")
	rootCmd.AddCommand(serveCmd)
}
