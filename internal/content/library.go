package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/voicethroughimage/vti/internal/i18n"
	"github.com/voicethroughimage/vti/internal/mode"
)

var (
	// ErrLoginRequired is returned when a live submission has no user.
	ErrLoginRequired = errors.New("sign in to submit a story")
	// ErrNoMedia is returned when a submission carries no uploaded file.
	ErrNoMedia = errors.New("at least one photo or video is required")
	// ErrInvalid wraps form validation failures.
	ErrInvalid = errors.New("invalid input")
)

// Latency is the simulated network delay of local writes.
type Latency struct {
	Admin  time.Duration
	Submit time.Duration
}

// Options configures a Library.
type Options struct {
	Flags   mode.Flags
	Live    DocumentStore // nil without a Firebase project
	Local   *LocalStore
	Latency Latency
	Log     zerolog.Logger
	Now     func() time.Time
}

// Library is the mode-aware entry point for stories and resources. A
// failing live call degrades the calling session and the operation is then
// carried out on the local store, as is every later one in that session.
type Library struct {
	flags   mode.Flags
	live    DocumentStore
	local   *LocalStore
	latency Latency
	log     zerolog.Logger
	now     func() time.Time
}

// NewLibrary creates a Library.
func NewLibrary(o Options) *Library {
	now := o.Now
	if now == nil {
		now = time.Now
	}
	return &Library{
		flags:   o.Flags,
		live:    o.Live,
		local:   o.Local,
		latency: o.Latency,
		log:     o.Log,
		now:     now,
	}
}

// WriteResult reports where a write landed.
type WriteResult struct {
	ID      string
	Preview bool // stored on the local substitute
}

func (l *Library) useLive(fb *mode.Fallback) bool {
	return l.live != nil && l.flags.UsePersistence(fb)
}

// Demo reports whether the session works without the hosted services.
func (l *Library) Demo(fb *mode.Fallback) bool {
	return !l.useLive(fb)
}

func (l *Library) degrade(fb *mode.Fallback, op string, err error) {
	if fb.Degrade(op + ": " + err.Error()) {
		l.log.Warn().Err(err).Str("op", op).Msg("live persistence failed, session switched to demo mode")
		return
	}
	l.log.Warn().Err(err).Str("op", op).Msg("live persistence failed")
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (l *Library) write(ctx context.Context, fb *mode.Fallback, op string, latency time.Duration, fn func(DocumentStore) (string, error)) (WriteResult, error) {
	if l.useLive(fb) {
		id, err := fn(l.live)
		switch {
		case err == nil:
			return WriteResult{ID: id}, nil
		case errors.Is(err, ErrNotFound), errors.Is(err, context.Canceled):
			return WriteResult{}, err
		}
		l.degrade(fb, op, err)
	}
	if err := sleep(ctx, latency); err != nil {
		return WriteResult{}, err
	}
	id, err := fn(l.local)
	if err != nil {
		return WriteResult{}, err
	}
	return WriteResult{ID: id, Preview: true}, nil
}

func (l *Library) read(ctx context.Context, fb *mode.Fallback, collection string) ([]Document, bool, error) {
	if l.useLive(fb) {
		docs, err := l.live.Query(ctx, collection)
		if err == nil {
			return docs, false, nil
		}
		if errors.Is(err, context.Canceled) {
			return nil, false, err
		}
		l.degrade(fb, "query "+collection, err)
	}
	docs, err := l.local.Query(ctx, collection)
	return docs, true, err
}

func (l *Library) storedStories(ctx context.Context, fb *mode.Fallback) ([]Story, bool, error) {
	docs, preview, err := l.read(ctx, fb, CollectionStories)
	if err != nil {
		return nil, preview, err
	}
	stories, err := decodeStories(docs)
	return stories, preview, err
}

func (l *Library) storedResources(ctx context.Context, fb *mode.Fallback) ([]Resource, bool, error) {
	docs, preview, err := l.read(ctx, fb, CollectionResources)
	if err != nil {
		return nil, preview, err
	}
	rs, err := decodeResources(docs)
	return rs, preview, err
}

// StoryFilter narrows the public gallery. Zero values match everything.
type StoryFilter struct {
	Type     StoryType
	Category string // a StoryCategory or CategoryAll
}

func (f StoryFilter) match(s Story) bool {
	if f.Type != "" && s.Type != f.Type {
		return false
	}
	if f.Category != "" && f.Category != CategoryAll && string(s.Category) != f.Category {
		return false
	}
	return true
}

// PublicStories lists stored stories, newest first, followed by the
// published InitialStories. It never fails: when nothing can be read the
// initial stories are returned alone.
func (l *Library) PublicStories(ctx context.Context, fb *mode.Fallback, f StoryFilter) []Story {
	stored, _, err := l.storedStories(ctx, fb)
	if err != nil {
		l.log.Error().Err(err).Msg("reading stories")
	}
	all := append(stored, InitialStories()...)
	out := make([]Story, 0, len(all))
	for _, s := range all {
		if f.match(s) {
			out = append(out, s)
		}
	}
	return out
}

// Story finds one story of the public gallery.
func (l *Library) Story(ctx context.Context, fb *mode.Fallback, id string) (Story, bool) {
	for _, s := range l.PublicStories(ctx, fb, StoryFilter{}) {
		if s.ID == id {
			return s, true
		}
	}
	return Story{}, false
}

// AdminStories lists stored stories for the dashboard. An empty or
// unreadable store yields the localized mock stories.
func (l *Library) AdminStories(ctx context.Context, fb *mode.Fallback, lang i18n.Lang) ([]Story, bool) {
	stored, preview, err := l.storedStories(ctx, fb)
	if err != nil {
		l.log.Error().Err(err).Msg("reading stories for admin")
		return MockStories(lang), true
	}
	if len(stored) == 0 {
		return MockStories(lang), preview
	}
	return stored, preview
}

// AdminResources lists stored resources for the dashboard.
func (l *Library) AdminResources(ctx context.Context, fb *mode.Fallback) ([]Resource, bool, error) {
	return l.storedResources(ctx, fb)
}

// DynamicResources returns the resources added through the dashboard for
// one directory category.
func (l *Library) DynamicResources(ctx context.Context, fb *mode.Fallback, t ResourceType) []Resource {
	rs, _, err := l.storedResources(ctx, fb)
	if err != nil {
		l.log.Error().Err(err).Msg("reading dynamic resources")
		return nil
	}
	var out []Resource
	for _, r := range rs {
		if r.IsDynamic && r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

func validateResource(r Resource) error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	valid := false
	for _, t := range ResourceTypes() {
		if r.Type == t {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("%w: unknown type %q", ErrInvalid, r.Type)
	}
	for _, reg := range Regions() {
		if r.Region == reg {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown region %q", ErrInvalid, r.Region)
}

// CreateResource stores a dashboard-created resource. It is marked dynamic.
func (l *Library) CreateResource(ctx context.Context, fb *mode.Fallback, r Resource) (WriteResult, error) {
	if err := validateResource(r); err != nil {
		return WriteResult{}, err
	}
	r.IsDynamic = true
	data, err := encode(r)
	if err != nil {
		return WriteResult{}, err
	}
	return l.write(ctx, fb, "create resource", l.latency.Admin, func(s DocumentStore) (string, error) {
		return s.Persist(ctx, CollectionResources, data)
	})
}

// UpdateResource replaces the editable fields of a resource. Whether it is
// dynamic stays as stored.
func (l *Library) UpdateResource(ctx context.Context, fb *mode.Fallback, id string, r Resource) (WriteResult, error) {
	if err := validateResource(r); err != nil {
		return WriteResult{}, err
	}
	r.IsDynamic = false
	data, err := encodeUpdate(r, resourceEditable)
	if err != nil {
		return WriteResult{}, err
	}
	return l.write(ctx, fb, "update resource", l.latency.Admin, func(s DocumentStore) (string, error) {
		return id, s.Update(ctx, CollectionResources, id, data)
	})
}

// DeleteResource removes a resource.
func (l *Library) DeleteResource(ctx context.Context, fb *mode.Fallback, id string) (WriteResult, error) {
	return l.write(ctx, fb, "delete resource", 0, func(s DocumentStore) (string, error) {
		return id, s.Delete(ctx, CollectionResources, id)
	})
}

func validateStory(s Story) error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if !s.Type.Valid() {
		return fmt.Errorf("%w: unknown story type %q", ErrInvalid, s.Type)
	}
	if !s.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, s.Category)
	}
	return nil
}

// CreateStory stores a dashboard-authored story.
func (l *Library) CreateStory(ctx context.Context, fb *mode.Fallback, s Story) (WriteResult, error) {
	if err := validateStory(s); err != nil {
		return WriteResult{}, err
	}
	if s.Date == "" {
		s.Date = FormatDate(l.now())
	}
	data, err := encode(s)
	if err != nil {
		return WriteResult{}, err
	}
	return l.write(ctx, fb, "create story", l.latency.Admin, func(st DocumentStore) (string, error) {
		return st.Persist(ctx, CollectionStories, data)
	})
}

// UpdateStory replaces the editable fields of a story.
func (l *Library) UpdateStory(ctx context.Context, fb *mode.Fallback, id string, s Story) (WriteResult, error) {
	if err := validateStory(s); err != nil {
		return WriteResult{}, err
	}
	data, err := encodeUpdate(s, storyEditable)
	if err != nil {
		return WriteResult{}, err
	}
	return l.write(ctx, fb, "update story", l.latency.Admin, func(st DocumentStore) (string, error) {
		return id, st.Update(ctx, CollectionStories, id, data)
	})
}

// DeleteStory removes a story.
func (l *Library) DeleteStory(ctx context.Context, fb *mode.Fallback, id string) (WriteResult, error) {
	return l.write(ctx, fb, "delete story", 0, func(st DocumentStore) (string, error) {
		return id, st.Delete(ctx, CollectionStories, id)
	})
}

// Submission is a visitor's story with its already uploaded media.
type Submission struct {
	Title       string
	Category    StoryCategory
	Description string
	Location    string
	PhotoURLs   []string
	VideoURLs   []string
	AudioURLs   []string

	SignedIn bool
	UserID   string
	UserName string
}

// SubmitResult is the outcome of SubmitStory.
type SubmitResult struct {
	Story   Story
	Preview bool
}

// SubmitStory records a visitor submission. Outside demo mode it requires
// a signed-in user.
func (l *Library) SubmitStory(ctx context.Context, fb *mode.Fallback, sub Submission) (SubmitResult, error) {
	if !sub.SignedIn && !l.Demo(fb) {
		return SubmitResult{}, ErrLoginRequired
	}
	if len(sub.PhotoURLs)+len(sub.VideoURLs)+len(sub.AudioURLs) == 0 {
		return SubmitResult{}, ErrNoMedia
	}

	category := sub.Category
	if !category.Valid() {
		category = CategorySocialJustice
	}
	userID, userName := sub.UserID, sub.UserName
	if userID == "" {
		userID = "demo-user"
	}
	if userName == "" {
		userName = "Demo User"
	}

	s := Story{
		Title:       strings.TrimSpace(sub.Title),
		Category:    category,
		Description: sub.Description,
		Location:    sub.Location,
		Photos:      sub.PhotoURLs,
		UserID:      userID,
		UserName:    userName,
		Date:        FormatDate(l.now()),
	}
	switch {
	case len(sub.VideoURLs) > 0:
		s.Type = StoryVideo
		s.LocalVideoURL = sub.VideoURLs[0]
	case len(sub.PhotoURLs) > 0:
		s.Type = StoryPhoto
	default:
		s.Type = StoryAudio
	}
	if len(sub.AudioURLs) > 0 {
		s.AudioURL = sub.AudioURLs[0]
	}
	if s.Type == StoryPhoto {
		s.ImageURL = sub.PhotoURLs[0]
	} else {
		s.ImageURL = StockVideoCover
	}

	data, err := encode(s)
	if err != nil {
		return SubmitResult{}, err
	}
	res, err := l.write(ctx, fb, "submit story", l.latency.Submit, func(st DocumentStore) (string, error) {
		return st.Persist(ctx, CollectionStories, data)
	})
	if err != nil {
		return SubmitResult{}, err
	}
	s.ID = res.ID
	return SubmitResult{Story: s, Preview: res.Preview}, nil
}
