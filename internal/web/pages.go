package web

import (
	"context"
	"strings"

	"github.com/voicethroughimage/vti/internal/assistant"
	"github.com/voicethroughimage/vti/internal/audit"
	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/directory"
	"github.com/voicethroughimage/vti/internal/i18n"
	"github.com/voicethroughimage/vti/internal/notifications"
	"github.com/voicethroughimage/vti/internal/session"
	"github.com/voicethroughimage/vti/internal/view"
)

// Admin dashboard tabs.
const (
	tabResources = "resources"
	tabStories   = "stories"
	tabInbox     = "inbox"
	tabActivity  = "activity"
)

func (s *Site) registerPages() {
	s.views.Handle(view.Home, s.page("home", s.buildHome))
	s.views.Handle(view.About, s.page("about", nil))
	s.views.Handle(view.Stories, s.page("stories", s.buildStories))
	s.views.Handle(view.Resources, s.page("resources", s.buildResources))
	s.views.Handle(view.ResourceCategory, s.page("category", s.buildCategory))
	s.views.Handle(view.Contact, s.page("contact", buildContact))
	s.views.Handle(view.Login, s.page("login", s.buildAuth))
	s.views.Handle(view.Signup, s.page("signup", s.buildAuth))
	s.views.Handle(view.Profile, s.page("profile", nil))
	s.views.Handle(view.VerifyEmail, s.page("verify", nil))
	s.views.Handle(view.SubmitStory, s.page("submit", s.buildSubmit))
	s.views.Handle(view.Chat, s.page("chat", s.buildChat))
	s.views.Handle(view.Volunteer, s.page("volunteer", buildVolunteer))
	s.views.Handle(view.Presentation, s.page("presentation", buildPresentation))
	s.views.Handle(view.Donate, s.page("donate", buildDonate))
	s.views.Handle(view.AdminDashboard, s.page("admin", s.buildAdmin))
}

type homePage struct {
	News    *assistant.NewsResult // nil when the brief is fetched by the browser
	Stories []content.Story
}

func (s *Site) buildHome(ctx context.Context, sess *session.Session, d session.Data) (any, error) {
	p := homePage{}
	if !s.Assistant.Live() {
		news := sess.News.Get(ctx, string(d.Lang), s.Assistant.DailyNews)
		p.News = &news
	}
	stories := s.Library.PublicStories(ctx, sess.Fallback, content.StoryFilter{})
	if len(stories) > 3 {
		stories = stories[:3]
	}
	p.Stories = stories
	return p, nil
}

type storiesPage struct {
	Stories    []content.Story
	Type       string
	Category   string
	Types      []content.StoryType
	Categories []string
}

func (s *Site) buildStories(ctx context.Context, sess *session.Session, d session.Data) (any, error) {
	typ := content.StoryType(d.StoryType)
	if !typ.Valid() {
		typ = content.StoryVideo
	}
	cat := d.StoryCategory
	if cat == "" {
		cat = content.CategoryAll
	}
	cats := []string{content.CategoryAll}
	for _, c := range content.StoryCategories() {
		cats = append(cats, string(c))
	}
	return storiesPage{
		Stories:    s.Library.PublicStories(ctx, sess.Fallback, content.StoryFilter{Type: typ, Category: cat}),
		Type:       string(typ),
		Category:   cat,
		Types:      []content.StoryType{content.StoryVideo, content.StoryPhoto, content.StoryAudio},
		Categories: cats,
	}, nil
}

type categoryTile struct {
	ID          string
	Label       string
	Description string
}

type resourcesPage struct {
	Categories  []categoryTile
	Prompts     []directory.Prompt
	Results     []content.LocalizedResource
	Suggestions []string
	Searched    bool
}

func tiles(l i18n.Lang) []categoryTile {
	cats := directory.Categories()
	out := make([]categoryTile, len(cats))
	for i, c := range cats {
		out[i] = categoryTile{ID: string(c.ID), Label: c.Label(l), Description: c.Description(l)}
	}
	return out
}

func localize(rs []content.Resource, l i18n.Lang) []content.LocalizedResource {
	out := make([]content.LocalizedResource, len(rs))
	for i, r := range rs {
		out[i] = r.Localized(l)
	}
	return out
}

func (s *Site) buildResources(_ context.Context, _ *session.Session, d session.Data) (any, error) {
	p := resourcesPage{
		Categories: tiles(d.Lang),
		Prompts:    directory.SuggestedPrompts(d.Lang),
	}
	if q := strings.TrimSpace(d.SearchQuery); q != "" {
		p.Searched = true
		p.Results = localize(directory.Search(q), d.Lang)
		p.Suggestions = directory.Suggestions(q)
	}
	return p, nil
}

type categoryPage struct {
	Found       bool
	ID          string
	Label       string
	Description string
	Count       string
	Resources   []content.LocalizedResource
}

func (s *Site) buildCategory(ctx context.Context, sess *session.Session, d session.Data) (any, error) {
	c, ok := directory.LookupCategory(d.State.Category)
	if !ok {
		return categoryPage{ID: d.State.Category}, nil
	}
	rs := append(directory.ByCategory(c.ID), s.Library.DynamicResources(ctx, sess.Fallback, c.ID)...)
	return categoryPage{
		Found:       true,
		ID:          string(c.ID),
		Label:       c.Label(d.Lang),
		Description: c.Description(d.Lang),
		Count:       directory.CountText(d.Lang, len(rs)),
		Resources:   localize(rs, d.Lang),
	}, nil
}

type formPage struct {
	Options []string
	Success bool
}

func buildContact(_ context.Context, _ *session.Session, d session.Data) (any, error) {
	return formPage{Options: notifications.ContactSubjects(), Success: d.Success == string(notifications.KindContact)}, nil
}

func buildVolunteer(_ context.Context, _ *session.Session, d session.Data) (any, error) {
	return formPage{Options: notifications.VolunteerRoles(), Success: d.Success == string(notifications.KindVolunteer)}, nil
}

type authPage struct {
	GoogleRedirect bool
}

func (s *Site) buildAuth(context.Context, *session.Session, session.Data) (any, error) {
	return authPage{GoogleRedirect: s.googleLive()}, nil
}

type submitPage struct {
	Categories []content.StoryCategory
	NeedsLogin bool
	MaxMB      int64
}

func (s *Site) buildSubmit(_ context.Context, sess *session.Session, d session.Data) (any, error) {
	return submitPage{
		Categories: content.StoryCategories(),
		NeedsLogin: d.User == nil && !s.Library.Demo(sess.Fallback),
		MaxMB:      s.MaxUpload >> 20,
	}, nil
}

type chatPage struct {
	Messages []assistant.ChatMessage
	Live     bool
}

func (s *Site) buildChat(_ context.Context, sess *session.Session, d session.Data) (any, error) {
	conv := sess.Conversation(i18n.T(d.Lang, "chat.welcome"))
	return chatPage{Messages: conv.Messages(), Live: s.Assistant.Live()}, nil
}

type presentationPage struct {
	Slide Slide
	Index int
	Count int
	First bool
	Last  bool
}

func buildPresentation(_ context.Context, _ *session.Session, d session.Data) (any, error) {
	slides := Deck(d.Lang)
	i := view.ClampSlide(d.State.Slide, len(slides))
	return presentationPage{
		Slide: slides[i],
		Index: i,
		Count: len(slides),
		First: i == 0,
		Last:  i == len(slides)-1,
	}, nil
}

type donatePage struct {
	Tiers []int
}

func buildDonate(context.Context, *session.Session, session.Data) (any, error) {
	return donatePage{Tiers: []int{25, 50, 100, 250, 500, 1000}}, nil
}

type adminPage struct {
	Allowed   bool
	Tabs      []string
	Tab       string
	Preview   bool
	Resources []content.Resource
	Stories   []content.Story
	Inbox     []notifications.Submission
	Activity  []audit.Entry

	Edit         session.Edit
	EditResource content.Resource
	EditStory    content.Story

	Regions         []content.Region
	Types           []content.ResourceType
	StoryTypes      []content.StoryType
	StoryCategories []content.StoryCategory
}

func (s *Site) adminTabs() []string {
	tabs := []string{tabResources, tabStories, tabInbox}
	if s.Audit != nil {
		tabs = append(tabs, tabActivity)
	}
	return tabs
}

func (s *Site) buildAdmin(ctx context.Context, sess *session.Session, d session.Data) (any, error) {
	p := adminPage{
		Allowed:         d.User != nil && d.User.Admin,
		Tabs:            s.adminTabs(),
		Tab:             d.AdminTab,
		Edit:            d.AdminEdit,
		Regions:         content.Regions(),
		Types:           content.ResourceTypes(),
		StoryTypes:      []content.StoryType{content.StoryVideo, content.StoryPhoto, content.StoryAudio},
		StoryCategories: content.StoryCategories(),
	}
	if !p.Allowed {
		return p, nil
	}
	if p.Tab == "" {
		p.Tab = tabResources
	}

	switch p.Tab {
	case tabStories:
		p.Stories, p.Preview = s.Library.AdminStories(ctx, sess.Fallback, d.Lang)
		if d.AdminEdit.Kind == tabStories {
			for _, st := range p.Stories {
				if st.ID == d.AdminEdit.ID {
					p.EditStory = st
				}
			}
		}
	case tabInbox:
		if s.Inbox != nil {
			subs, err := s.Inbox.List(ctx, notifications.ListFilter{Limit: 50})
			if err != nil {
				return nil, err
			}
			p.Inbox = subs
		}
	case tabActivity:
		if s.Audit != nil {
			entries, err := s.Audit.Query(ctx, audit.QueryFilter{Limit: 100})
			if err != nil {
				return nil, err
			}
			p.Activity = entries
		}
	default:
		rs, preview, err := s.Library.AdminResources(ctx, sess.Fallback)
		if err != nil {
			return nil, err
		}
		p.Resources, p.Preview = rs, preview
		if d.AdminEdit.Kind == tabResources {
			for _, r := range rs {
				if r.ID == d.AdminEdit.ID {
					p.EditResource = r
				}
			}
		}
	}
	return p, nil
}
