package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/voicethroughimage/vti/internal/assistant"
	"github.com/voicethroughimage/vti/internal/audit"
	"github.com/voicethroughimage/vti/internal/config"
	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/db"
	"github.com/voicethroughimage/vti/internal/directory"
	"github.com/voicethroughimage/vti/internal/identity"
	"github.com/voicethroughimage/vti/internal/llm"
	"github.com/voicethroughimage/vti/internal/logging"
	"github.com/voicethroughimage/vti/internal/media"
	"github.com/voicethroughimage/vti/internal/mode"
	"github.com/voicethroughimage/vti/internal/notifications"
)

// services holds everything the commands share. Live clients are nil when
// their credentials are absent or fail to initialize.
type services struct {
	cfg   *config.Config
	flags mode.Flags
	log   zerolog.Logger

	db        *db.DB
	fbApp     *firebase.App
	firestore *firestore.Client
	authAdmin *auth.Client

	library   *content.Library
	media     *media.Service
	assistant *assistant.Assistant
	identity  identity.Authenticator
	oauth     *identity.GoogleOAuth
	inbox     *notifications.Store
	notify    *notifications.Dispatcher
	audit     *audit.Store
}

// openServices resolves the runtime mode and builds every adapter. A live
// service that cannot be reached at startup is logged and its feature runs
// in demo mode instead; only local storage failures are fatal.
func openServices(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*services, error) {
	s := &services{cfg: cfg, flags: mode.Resolve(cfg), log: log}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	database, err := openDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s.db = database
	s.audit = audit.NewStore(database)

	if s.flags.LiveIdentity {
		s.openFirebase(ctx)
	}
	if err := s.openIdentity(ctx); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.openContent(ctx); err != nil {
		s.Close()
		return nil, err
	}
	s.openAssistant(ctx)
	s.openNotifications()

	log.Info().
		Bool("live_identity", s.flags.LiveIdentity).
		Bool("live_ai", s.flags.LiveAI).
		Strs("missing", s.flags.Missing()).
		Msg("runtime mode resolved")
	return s, nil
}

// openFirebase initializes the Admin SDK. Firestore and Storage need
// service credentials; without them the web API key still powers sign-in.
func (s *services) openFirebase(ctx context.Context) {
	log := logging.Component(s.log, "firebase")
	fc := s.cfg.Firebase

	var opts []option.ClientOption
	if fc.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(fc.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     fc.ProjectID,
		StorageBucket: fc.StorageBucket,
	}, opts...)
	if err != nil {
		log.Warn().Err(err).Msg("initializing firebase app; stories and uploads stay local")
		return
	}
	s.fbApp = app

	if fs, err := app.Firestore(ctx); err != nil {
		log.Warn().Err(err).Msg("opening firestore; stories stay local")
	} else {
		s.firestore = fs
	}
	if ac, err := app.Auth(ctx); err != nil {
		log.Warn().Err(err).Msg("opening firebase auth admin client")
	} else {
		s.authAdmin = ac
	}
}

func (s *services) openIdentity(ctx context.Context) error {
	policy := identity.NewAdminPolicy(s.cfg.Admin.Claim, s.cfg.Admin.Emails)

	redirect := s.cfg.Google.RedirectURL
	if redirect == "" && s.cfg.Server.BaseURL != "" {
		redirect = strings.TrimRight(s.cfg.Server.BaseURL, "/") + "/auth/google/callback"
	}
	s.oauth = identity.NewGoogleOAuth(s.cfg.Google.ClientID, s.cfg.Google.ClientSecret, redirect)

	if !s.flags.LiveIdentity {
		s.identity = identity.NewDemo(policy)
		return nil
	}
	opts := identity.FirebaseOptions{
		APIKey:     s.cfg.Firebase.APIKey,
		Policy:     policy,
		RequestURI: s.cfg.Server.BaseURL,
		Log:        logging.Component(s.log, "identity"),
	}
	if s.authAdmin != nil {
		opts.Revoker = s.authAdmin
	}
	fb, err := identity.NewFirebase(ctx, opts)
	if err != nil {
		return fmt.Errorf("connecting to firebase auth: %w", err)
	}
	s.identity = fb
	return nil
}

func (s *services) openContent(ctx context.Context) error {
	var live content.DocumentStore
	if s.firestore != nil {
		live = content.NewFirestoreStore(s.firestore)
	}
	store := content.NewLocalStore(s.db)
	n, err := store.SeedResources(ctx, directory.Seed())
	if err != nil {
		return fmt.Errorf("seeding local store: %w", err)
	}
	if n > 0 {
		s.log.Debug().Int("resources", n).Msg("seeded local store")
	}
	s.library = content.NewLibrary(content.Options{
		Flags: s.flags,
		Live:  live,
		Local: store,
		Latency: content.Latency{
			Admin:  s.cfg.Demo.AdminLatency,
			Submit: s.cfg.Demo.SubmitLatency,
		},
		Log: logging.Component(s.log, "content"),
	})

	local, err := media.NewLocalUploader(s.uploadsDir(), "/uploads", s.cfg.Demo.UploadLatency)
	if err != nil {
		return fmt.Errorf("preparing upload dir: %w", err)
	}
	var liveUp media.Uploader
	if s.fbApp != nil && s.cfg.Firebase.StorageBucket != "" {
		if sc, err := s.fbApp.Storage(ctx); err != nil {
			s.log.Warn().Err(err).Msg("opening firebase storage; uploads stay local")
		} else if up, err := media.NewFirebaseUploader(sc, s.cfg.Firebase.StorageBucket); err != nil {
			s.log.Warn().Err(err).Msg("opening storage bucket; uploads stay local")
		} else {
			liveUp = up
		}
	}
	s.media = media.NewService(s.flags, liveUp, local, logging.Component(s.log, "media"))
	return nil
}

func (s *services) openAssistant(ctx context.Context) {
	var gen llm.TextGenerator
	if s.flags.LiveAI {
		g, err := llm.NewProvider(ctx, s.cfg.AI, nil)
		if err != nil {
			s.log.Warn().Err(err).Str("provider", string(s.cfg.AI.Provider)).Msg("creating AI provider; assistant runs in demo mode")
			s.flags.LiveAI = false
		} else {
			gen = g
		}
	}
	s.assistant = assistant.New(gen, s.cfg.AI.Model, logging.Component(s.log, "assistant"))
}

func (s *services) openNotifications() {
	log := logging.Component(s.log, "notifications")
	opts := notifications.Options{
		Webhooks: s.cfg.Notify.Webhooks,
		ChatID:   s.cfg.Notify.TelegramChatID,
		Log:      log,
	}
	if s.cfg.Notify.TelegramToken != "" {
		if b, err := notifications.NewTelegram(s.cfg.Notify.TelegramToken); err != nil {
			log.Warn().Err(err).Msg("telegram channel disabled")
		} else {
			opts.Telegram = b
		}
	}
	s.inbox = notifications.NewStore(s.db)
	s.notify = notifications.NewDispatcher(s.inbox, opts)
}

// pruneAudit drops staff activity older than the configured retention.
func (s *services) pruneAudit(ctx context.Context) (int64, error) {
	keep := s.cfg.Admin.AuditRetention
	if keep <= 0 {
		return 0, nil
	}
	return s.audit.DeleteBefore(ctx, time.Now().Add(-keep))
}

// sessionSecret returns the configured signing secret, or a random one
// that only lasts for this process.
func sessionSecret(cfg *config.Config, log zerolog.Logger) string {
	if cfg.Session.Secret != "" {
		return cfg.Session.Secret
	}
	log.Warn().Msg("session.secret not set; sessions end when the server restarts")
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// Close waits for pending notifications and releases the clients.
func (s *services) Close() {
	if s.notify != nil {
		s.notify.Wait()
	}
	if s.firestore != nil {
		s.firestore.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
}

func openDB(cfg *config.Config) (*db.DB, error) {
	return db.Open(filepath.Join(cfg.DataDir, "vti.db"))
}

func (s *services) uploadsDir() string {
	return filepath.Join(s.cfg.DataDir, "uploads")
}
