// Package content manages stories and community resources, persisting them
// in Cloud Firestore or, in demo mode, in the local SQLite substitute.
package content

import (
	"strings"
	"time"

	"github.com/voicethroughimage/vti/internal/i18n"
)

// Collection names shared by both stores.
const (
	CollectionStories   = "stories"
	CollectionResources = "resources"
)

// StoryType is the media kind of a story.
type StoryType string

const (
	StoryVideo StoryType = "video"
	StoryPhoto StoryType = "photo"
	StoryAudio StoryType = "audio"
)

// Valid reports whether t is a known story type.
func (t StoryType) Valid() bool {
	switch t {
	case StoryVideo, StoryPhoto, StoryAudio:
		return true
	}
	return false
}

// StoryCategory is the social issue a story documents.
type StoryCategory string

const (
	CategoryHomelessness     StoryCategory = "Homelessness"
	CategoryDomesticViolence StoryCategory = "Domestic Violence"
	CategoryAddiction        StoryCategory = "Addiction"
	CategorySocialJustice    StoryCategory = "Social Justice"
)

// CategoryAll disables the category filter.
const CategoryAll = "All"

// StoryCategories lists the categories in filter order.
func StoryCategories() []StoryCategory {
	return []StoryCategory{CategoryHomelessness, CategoryAddiction, CategorySocialJustice, CategoryDomesticViolence}
}

// Valid reports whether c is a known category.
func (c StoryCategory) Valid() bool {
	for _, known := range StoryCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Story is one documentary piece.
type Story struct {
	ID            string        `json:"id,omitempty"`
	Type          StoryType     `json:"type"`
	Title         string        `json:"title"`
	Category      StoryCategory `json:"category"`
	Description   string        `json:"description"`
	ImageURL      string        `json:"imageUrl"`
	Date          string        `json:"date"`
	LocalVideoURL string        `json:"localVideoUrl,omitempty"`
	AudioURL      string        `json:"audioUrl,omitempty"`
	Photos        []string      `json:"photos,omitempty"`
	Location      string        `json:"location,omitempty"`
	AuthorName    string        `json:"authorName,omitempty"`
	UserID        string        `json:"userId,omitempty"`
	UserName      string        `json:"userName,omitempty"`
}

// Byline is the name credited on the story card.
func (s Story) Byline() string {
	if s.AuthorName != "" {
		return s.AuthorName
	}
	return s.UserName
}

// FormatDate renders t the way story dates are shown, e.g. "JAN 2026".
func FormatDate(t time.Time) string {
	return strings.ToUpper(t.Format("Jan 2006"))
}

// Region is the part of California a resource serves.
type Region string

const (
	RegionNorth    Region = "North"
	RegionSouth    Region = "South"
	RegionCentral  Region = "Central"
	RegionNational Region = "National"
)

// Regions lists the regions in form order.
func Regions() []Region {
	return []Region{RegionNorth, RegionSouth, RegionCentral, RegionNational}
}

// ResourceType classifies an organization.
type ResourceType string

const (
	TypeShelter           ResourceType = "Shelter"
	TypeLegalAid          ResourceType = "Legal Aid"
	TypeMentalHealth      ResourceType = "Mental Health"
	TypeHotline           ResourceType = "Hotline"
	TypeFoodBank          ResourceType = "Food Bank"
	TypeAddictionRecovery ResourceType = "Addiction Recovery"
	TypeDomesticViolence  ResourceType = "Domestic Violence"
	TypeChineseServices   ResourceType = "Chinese Services"
	TypeOther             ResourceType = "Other"
)

// ResourceTypes lists every type in form order.
func ResourceTypes() []ResourceType {
	return []ResourceType{
		TypeShelter, TypeLegalAid, TypeMentalHealth, TypeHotline, TypeFoodBank,
		TypeAddictionRecovery, TypeDomesticViolence, TypeChineseServices, TypeOther,
	}
}

var typeKeys = map[ResourceType]string{
	TypeShelter:           "resources.cat.shelter",
	TypeLegalAid:          "resources.cat.legal",
	TypeMentalHealth:      "resources.cat.mental_health",
	TypeHotline:           "resources.cat.hotline",
	TypeFoodBank:          "resources.cat.food",
	TypeAddictionRecovery: "resources.cat.recovery",
	TypeDomesticViolence:  "resources.cat.dv",
	TypeChineseServices:   "resources.cat.chinese_services",
	TypeOther:             "resources.cat.other",
}

// Label is the translated name of the type.
func (t ResourceType) Label(l i18n.Lang) string {
	if key, ok := typeKeys[t]; ok {
		return i18n.T(l, key)
	}
	return string(t)
}

// HoursNotListed is shown when a resource has no base-language hours.
const HoursNotListed = "Hours not listed"

// Resource is one organization in the directory.
type Resource struct {
	ID                 string       `json:"id,omitempty"`
	Name               string       `json:"name"`
	NameZhTW           string       `json:"nameZhTW,omitempty"`
	NameZhCN           string       `json:"nameZhCN,omitempty"`
	Region             Region       `json:"region"`
	Type               ResourceType `json:"type"`
	TypeZhTW           string       `json:"typeZhTW,omitempty"`
	TypeZhCN           string       `json:"typeZhCN,omitempty"`
	Description        string       `json:"description"`
	DescriptionZhTW    string       `json:"descriptionZhTW,omitempty"`
	DescriptionZhCN    string       `json:"descriptionZhCN,omitempty"`
	Contact            string       `json:"contact"`
	Location           string       `json:"location"`
	OperatingHours     string       `json:"operatingHours,omitempty"`
	OperatingHoursZhTW string       `json:"operatingHoursZhTW,omitempty"`
	OperatingHoursZhCN string       `json:"operatingHoursZhCN,omitempty"`
	Website            string       `json:"website,omitempty"`
	IsDynamic          bool         `json:"isDynamic,omitempty"`
}

// LocalizedResource is a Resource with its display fields resolved for one
// language.
type LocalizedResource struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ResourceType `json:"type"`
	TypeLabel   string       `json:"typeLabel"`
	Region      Region       `json:"region"`
	Description string       `json:"description"`
	Hours       string       `json:"hours"`
	Contact     string       `json:"contact"`
	Location    string       `json:"location"`
	Website     string       `json:"website,omitempty"`
	IsDynamic   bool         `json:"isDynamic,omitempty"`
}

// Localized resolves the display fields for l. Chinese variants fall back
// to the base fields; only the base language substitutes HoursNotListed.
func (r Resource) Localized(l i18n.Lang) LocalizedResource {
	out := LocalizedResource{
		ID:          r.ID,
		Name:        r.Name,
		Type:        r.Type,
		TypeLabel:   string(r.Type),
		Region:      r.Region,
		Description: r.Description,
		Hours:       r.OperatingHours,
		Contact:     r.Contact,
		Location:    r.Location,
		Website:     r.Website,
		IsDynamic:   r.IsDynamic,
	}
	switch l {
	case i18n.ZhTW:
		out.Name = firstNonEmpty(r.NameZhTW, r.Name)
		out.Description = firstNonEmpty(r.DescriptionZhTW, r.Description)
		out.Hours = firstNonEmpty(r.OperatingHoursZhTW, r.OperatingHours)
		out.TypeLabel = firstNonEmpty(r.TypeZhTW, r.Type.Label(l))
	case i18n.ZhCN:
		out.Name = firstNonEmpty(r.NameZhCN, r.Name)
		out.Description = firstNonEmpty(r.DescriptionZhCN, r.Description)
		out.Hours = firstNonEmpty(r.OperatingHoursZhCN, r.OperatingHours)
		out.TypeLabel = firstNonEmpty(r.TypeZhCN, r.Type.Label(l))
	default:
		if out.Hours == "" {
			out.Hours = HoursNotListed
		}
	}
	return out
}

// Matches reports whether q occurs, ignoring case, in any name,
// description, type or location field.
func (r Resource) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return false
	}
	for _, f := range []string{
		r.Name, r.NameZhTW, r.NameZhCN,
		r.Description, r.DescriptionZhTW, r.DescriptionZhCN,
		string(r.Type), r.TypeZhTW, r.TypeZhCN,
		r.Location,
	} {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
