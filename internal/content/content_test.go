package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicethroughimage/vti/internal/apperr"
	"github.com/voicethroughimage/vti/internal/db"
	"github.com/voicethroughimage/vti/internal/i18n"
	"github.com/voicethroughimage/vti/internal/mode"
)

func newLocal(t *testing.T) *LocalStore {
	t.Helper()
	d, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return NewLocalStore(d)
}

// brokenStore fails every call the way an unreachable Firestore does.
type brokenStore struct{ calls int }

func (b *brokenStore) err() error {
	b.calls++
	return apperr.Transient("firestore", errors.New("unavailable"))
}

func (b *brokenStore) Persist(context.Context, string, map[string]any) (string, error) {
	return "", b.err()
}
func (b *brokenStore) Query(context.Context, string) ([]Document, error) { return nil, b.err() }
func (b *brokenStore) Update(context.Context, string, string, map[string]any) error {
	return b.err()
}
func (b *brokenStore) Delete(context.Context, string, string) error { return b.err() }

func liveLibrary(t *testing.T, live DocumentStore) (*Library, *LocalStore) {
	local := newLocal(t)
	return NewLibrary(Options{
		Flags: mode.Flags{LiveIdentity: true, LiveAI: true},
		Live:  live,
		Local: local,
		Log:   zerolog.Nop(),
	}), local
}

func demoLibrary(t *testing.T) (*Library, *LocalStore) {
	local := newLocal(t)
	return NewLibrary(Options{Local: local, Log: zerolog.Nop()}), local
}

func TestLocalStoreIDsAndOrder(t *testing.T) {
	ctx := context.Background()
	s := newLocal(t)
	fixed := time.UnixMilli(1700000000000)
	s.now = func() time.Time { return fixed }

	a, err := s.Persist(ctx, CollectionStories, map[string]any{"title": "a"})
	require.NoError(t, err)
	b, err := s.Persist(ctx, CollectionStories, map[string]any{"title": "b"})
	require.NoError(t, err)
	r, err := s.Persist(ctx, CollectionResources, map[string]any{"name": "r"})
	require.NoError(t, err)

	assert.Equal(t, "demo-story-1700000000000", a)
	assert.Equal(t, "demo-story-1700000000001", b)
	assert.True(t, strings.HasPrefix(r, "demo-"))
	assert.False(t, strings.HasPrefix(r, "demo-story-"))

	docs, err := s.Query(ctx, CollectionStories)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, b, docs[0].ID)
	assert.Equal(t, a, docs[1].ID)
}

func TestLocalStoreUpdateDelete(t *testing.T) {
	ctx := context.Background()
	s := newLocal(t)

	id, err := s.Persist(ctx, CollectionResources, map[string]any{"name": "Old", "region": "North"})
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, CollectionResources, id, map[string]any{"name": "New"}))
	docs, err := s.Query(ctx, CollectionResources)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "New", docs[0].Data["name"])
	assert.Equal(t, "North", docs[0].Data["region"])

	err = s.Update(ctx, CollectionResources, "missing", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, CollectionResources, id))
	require.NoError(t, s.Delete(ctx, CollectionResources, id))
	n, err := s.Count(ctx, CollectionResources)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedResourcesOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	s := newLocal(t)
	seed := []Resource{
		{Name: "First", Type: TypeShelter, Region: RegionNorth},
		{Name: "Second", Type: TypeFoodBank, Region: RegionSouth},
	}

	n, err := s.SeedResources(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.SeedResources(ctx, seed)
	require.NoError(t, err)
	assert.Zero(t, n)

	docs, err := s.Query(ctx, CollectionResources)
	require.NoError(t, err)
	rs, err := decodeResources(docs)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "First", rs[0].Name)
	assert.NotEmpty(t, rs[0].ID)
}

func TestEncodeStripsBookkeeping(t *testing.T) {
	data, err := encode(Story{ID: "x", Title: "T", Type: StoryPhoto})
	require.NoError(t, err)
	assert.NotContains(t, data, "id")
	assert.Equal(t, "T", data["title"])
}

func TestLocalized(t *testing.T) {
	r := Resource{
		Name:           "Shelter",
		NameZhTW:       "收容所",
		Type:           TypeShelter,
		Description:    "Beds",
		OperatingHours: "",
	}

	en := r.Localized(i18n.EN)
	assert.Equal(t, "Shelter", en.Name)
	assert.Equal(t, HoursNotListed, en.Hours)

	tw := r.Localized(i18n.ZhTW)
	assert.Equal(t, "收容所", tw.Name)
	assert.Equal(t, "Beds", tw.Description)
	assert.Empty(t, tw.Hours)

	cn := r.Localized(i18n.ZhCN)
	assert.Equal(t, "Shelter", cn.Name)
}

func TestMatches(t *testing.T) {
	r := Resource{Name: "Glide Memorial", Type: TypeFoodBank, Location: "San Francisco", DescriptionZhTW: "免費餐點"}
	assert.True(t, r.Matches("glide"))
	assert.True(t, r.Matches("FOOD"))
	assert.True(t, r.Matches("francisco"))
	assert.True(t, r.Matches("餐點"))
	assert.False(t, r.Matches("legal"))
	assert.False(t, r.Matches("  "))
}

func TestPublicStoriesAppendsInitial(t *testing.T) {
	ctx := context.Background()
	lib, _ := demoLibrary(t)

	all := lib.PublicStories(ctx, nil, StoryFilter{})
	assert.Len(t, all, len(InitialStories()))

	res, err := lib.SubmitStory(ctx, nil, Submission{
		Title:     "Night shift",
		Category:  CategoryHomelessness,
		PhotoURLs: []string{"/uploads/a.jpg"},
	})
	require.NoError(t, err)
	assert.True(t, res.Preview)

	all = lib.PublicStories(ctx, nil, StoryFilter{})
	require.Len(t, all, len(InitialStories())+1)
	assert.Equal(t, res.Story.ID, all[0].ID)

	photos := lib.PublicStories(ctx, nil, StoryFilter{Type: StoryPhoto, Category: string(CategoryHomelessness)})
	for _, s := range photos {
		assert.Equal(t, StoryPhoto, s.Type)
		assert.Equal(t, CategoryHomelessness, s.Category)
	}

	got, ok := lib.Story(ctx, nil, res.Story.ID)
	require.True(t, ok)
	assert.Equal(t, "Night shift", got.Title)
}

func TestSubmitStoryRules(t *testing.T) {
	ctx := context.Background()
	lib, _ := liveLibrary(t, &brokenStore{})
	fb := &mode.Fallback{}

	_, err := lib.SubmitStory(ctx, fb, Submission{Title: "x", PhotoURLs: []string{"a"}})
	assert.ErrorIs(t, err, ErrLoginRequired)

	_, err = lib.SubmitStory(ctx, fb, Submission{Title: "x", SignedIn: true, UserID: "u1"})
	assert.ErrorIs(t, err, ErrNoMedia)
}

func TestSubmitStoryMediaType(t *testing.T) {
	ctx := context.Background()
	lib, _ := demoLibrary(t)
	lib.now = func() time.Time { return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) }

	video, err := lib.SubmitStory(ctx, nil, Submission{
		Title:     "v",
		PhotoURLs: []string{"/p.jpg"},
		VideoURLs: []string{"/v.mp4"},
	})
	require.NoError(t, err)
	assert.Equal(t, StoryVideo, video.Story.Type)
	assert.Equal(t, StockVideoCover, video.Story.ImageURL)
	assert.Equal(t, "/v.mp4", video.Story.LocalVideoURL)
	assert.Equal(t, "MAR 2026", video.Story.Date)
	assert.Equal(t, "Demo User", video.Story.UserName)
	assert.Equal(t, CategorySocialJustice, video.Story.Category)

	photo, err := lib.SubmitStory(ctx, nil, Submission{Title: "p", PhotoURLs: []string{"/p.jpg"}})
	require.NoError(t, err)
	assert.Equal(t, StoryPhoto, photo.Story.Type)
	assert.Equal(t, "/p.jpg", photo.Story.ImageURL)

	audio, err := lib.SubmitStory(ctx, nil, Submission{Title: "a", AudioURLs: []string{"/a.mp3"}})
	require.NoError(t, err)
	assert.Equal(t, StoryAudio, audio.Story.Type)
	assert.Equal(t, "/a.mp3", audio.Story.AudioURL)
}

func TestLiveFailureDegradesSession(t *testing.T) {
	ctx := context.Background()
	live := &brokenStore{}
	lib, local := liveLibrary(t, live)
	fb := &mode.Fallback{}

	res, err := lib.CreateResource(ctx, fb, Resource{Name: "Hub", Type: TypeShelter, Region: RegionCentral})
	require.NoError(t, err)
	assert.True(t, res.Preview)
	assert.True(t, fb.Active())
	assert.Equal(t, 1, live.calls)

	n, err := local.Count(ctx, CollectionResources)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The degraded session no longer touches the live store.
	_, err = lib.CreateStory(ctx, fb, Story{Title: "t", Type: StoryPhoto, Category: CategoryAddiction})
	require.NoError(t, err)
	assert.Equal(t, 1, live.calls)

	// A fresh session still tries live first.
	other := &mode.Fallback{}
	_, _, err = lib.AdminResources(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 2, live.calls)
	assert.True(t, other.Active())
}

func TestAdminResourceCRUD(t *testing.T) {
	ctx := context.Background()
	lib, _ := demoLibrary(t)

	_, err := lib.CreateResource(ctx, nil, Resource{Type: TypeShelter, Region: RegionNorth})
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = lib.CreateResource(ctx, nil, Resource{Name: "x", Type: "Spa", Region: RegionNorth})
	assert.ErrorIs(t, err, ErrInvalid)

	res, err := lib.CreateResource(ctx, nil, Resource{Name: "Hub", Type: TypeLegalAid, Region: RegionSouth})
	require.NoError(t, err)

	dyn := lib.DynamicResources(ctx, nil, TypeLegalAid)
	require.Len(t, dyn, 1)
	assert.True(t, dyn[0].IsDynamic)
	assert.Empty(t, lib.DynamicResources(ctx, nil, TypeShelter))

	_, err = lib.UpdateResource(ctx, nil, res.ID, Resource{Name: "Hub 2", Type: TypeLegalAid, Region: RegionSouth})
	require.NoError(t, err)
	rs, _, err := lib.AdminResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "Hub 2", rs[0].Name)
	assert.True(t, rs[0].IsDynamic)

	_, err = lib.DeleteResource(ctx, nil, res.ID)
	require.NoError(t, err)
	rs, _, err = lib.AdminResources(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, rs)
}

func TestUpdateClearsOptionalFields(t *testing.T) {
	ctx := context.Background()
	lib, _ := demoLibrary(t)

	res, err := lib.CreateResource(ctx, nil, Resource{
		Name: "Hub", Type: TypeShelter, Region: RegionNorth,
		Website: "https://old.example", OperatingHours: "9-5", OperatingHoursZhTW: "九點至五點",
	})
	require.NoError(t, err)

	_, err = lib.UpdateResource(ctx, nil, res.ID, Resource{Name: "Hub", Type: TypeShelter, Region: RegionNorth})
	require.NoError(t, err)
	rs, _, err := lib.AdminResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Empty(t, rs[0].Website)
	assert.Empty(t, rs[0].OperatingHours)
	assert.Empty(t, rs[0].OperatingHoursZhTW)
	assert.True(t, rs[0].IsDynamic)

	st, err := lib.CreateStory(ctx, nil, Story{
		Type: StoryVideo, Title: "Walk", Category: CategorySocialJustice,
		LocalVideoURL: "/uploads/a.mp4", Location: "Oakland", Photos: []string{"/uploads/p.jpg"},
	})
	require.NoError(t, err)
	_, err = lib.UpdateStory(ctx, nil, st.ID, Story{Type: StoryVideo, Title: "Walk", Category: CategorySocialJustice, Date: "JAN 2026"})
	require.NoError(t, err)
	stories, _ := lib.AdminStories(ctx, nil, i18n.EN)
	require.Len(t, stories, 1)
	assert.Empty(t, stories[0].LocalVideoURL)
	assert.Empty(t, stories[0].Location)
	assert.Equal(t, []string{"/uploads/p.jpg"}, stories[0].Photos)
}

// recordingStore keeps the last update it was sent.
type recordingStore struct {
	brokenStore
	updated map[string]any
}

func (r *recordingStore) Update(_ context.Context, _, _ string, data map[string]any) error {
	r.updated = data
	return nil
}

func TestLiveUpdateSendsEmptyFields(t *testing.T) {
	rec := &recordingStore{}
	lib, _ := liveLibrary(t, rec)

	_, err := lib.UpdateResource(context.Background(), &mode.Fallback{}, "r1",
		Resource{Name: "Hub", Type: TypeShelter, Region: RegionNorth})
	require.NoError(t, err)
	for _, k := range resourceEditable {
		assert.Contains(t, rec.updated, k)
	}
	assert.Equal(t, "", rec.updated["website"])
	assert.NotContains(t, rec.updated, "isDynamic")
}

func TestUpdateKeepsSeededResourceStatic(t *testing.T) {
	ctx := context.Background()
	lib, local := demoLibrary(t)
	_, err := local.SeedResources(ctx, []Resource{{Name: "Glide", Type: TypeShelter, Region: RegionNorth}})
	require.NoError(t, err)
	rs, _, err := lib.AdminResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rs, 1)

	_, err = lib.UpdateResource(ctx, nil, rs[0].ID,
		Resource{Name: "Glide Memorial", Type: TypeShelter, Region: RegionNorth, IsDynamic: true})
	require.NoError(t, err)
	assert.Empty(t, lib.DynamicResources(ctx, nil, TypeShelter))
}

func TestAdminStoriesFallBackToMocks(t *testing.T) {
	ctx := context.Background()
	lib, _ := demoLibrary(t)

	stories, preview := lib.AdminStories(ctx, nil, i18n.ZhTW)
	assert.True(t, preview)
	assert.Equal(t, MockStories(i18n.ZhTW), stories)

	_, err := lib.CreateStory(ctx, nil, Story{Title: "Mine", Type: StoryAudio, Category: CategoryDomesticViolence})
	require.NoError(t, err)
	stories, _ = lib.AdminStories(ctx, nil, i18n.EN)
	require.Len(t, stories, 1)
	assert.Equal(t, "Mine", stories[0].Title)
	assert.NotEmpty(t, stories[0].Date)
}

func TestLatencyHonoursContext(t *testing.T) {
	local := newLocal(t)
	lib := NewLibrary(Options{Local: local, Latency: Latency{Admin: time.Hour}, Log: zerolog.Nop()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := lib.CreateStory(ctx, nil, Story{Title: "t", Type: StoryPhoto, Category: CategoryAddiction})
	assert.ErrorIs(t, err, context.Canceled)
}
