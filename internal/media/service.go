package media

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/voicethroughimage/vti/internal/mode"
)

// Service routes uploads to the live bucket or the local directory using
// the same session fallback rule as persistence.
type Service struct {
	flags mode.Flags
	live  Uploader
	local Uploader
	log   zerolog.Logger
}

// NewService creates a Service. live may be nil.
func NewService(flags mode.Flags, live, local Uploader, log zerolog.Logger) *Service {
	return &Service{flags: flags, live: live, local: local, log: log}
}

// Stored is the outcome of one upload.
type Stored struct {
	URL     string
	Kind    Kind
	Preview bool
}

// Store uploads u for the user uid (empty for guests).
func (s *Service) Store(ctx context.Context, fb *mode.Fallback, uid string, u Upload) (Stored, error) {
	owner := Owner(uid)
	if s.live != nil && s.flags.UsePersistence(fb) {
		url, err := s.live.Store(ctx, owner, u)
		if err == nil {
			return Stored{URL: url, Kind: u.Kind}, nil
		}
		if errors.Is(err, context.Canceled) {
			return Stored{}, err
		}
		if fb.Degrade("upload: " + err.Error()) {
			s.log.Warn().Err(err).Str("file", u.Name).Msg("upload failed, session switched to demo mode")
		} else {
			s.log.Warn().Err(err).Str("file", u.Name).Msg("upload failed")
		}
	}
	url, err := s.local.Store(ctx, owner, u)
	if err != nil {
		return Stored{}, err
	}
	return Stored{URL: url, Kind: u.Kind, Preview: true}, nil
}
