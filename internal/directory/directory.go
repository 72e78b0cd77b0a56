// Package directory holds the verified resource directory shown on the
// resources pages and served to agents over MCP.
package directory

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/voicethroughimage/vti/internal/content"
	"github.com/voicethroughimage/vti/internal/i18n"
)

// SeedCount is how many leading records seed the demo store.
const SeedCount = 5

// MaxSuggestions caps the typeahead list.
const MaxSuggestions = 5

// All returns a copy of the directory.
func All() []content.Resource {
	out := make([]content.Resource, len(resources))
	copy(out, resources)
	return out
}

// Seed returns the records used to populate an empty local store.
func Seed() []content.Resource {
	return All()[:SeedCount]
}

// ByCategory lists the records of one type, in directory order.
func ByCategory(t content.ResourceType) []content.Resource {
	var out []content.Resource
	for _, r := range resources {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// Search returns every record matching q. A blank query matches nothing.
func Search(q string) []content.Resource {
	var out []content.Resource
	for _, r := range resources {
		if r.Matches(q) {
			out = append(out, r)
		}
	}
	return out
}

// Suggestions completes a partial query with record names and types.
// Queries shorter than two characters yield nothing.
func Suggestions(q string) []string {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < 2 {
		return nil
	}
	needle := strings.ToLower(q)
	seen := make(map[string]bool)
	var out []string
	add := func(s string) bool {
		if s == "" || seen[s] || !strings.Contains(strings.ToLower(s), needle) {
			return false
		}
		seen[s] = true
		out = append(out, s)
		return len(out) == MaxSuggestions
	}
	for _, r := range resources {
		for _, s := range []string{r.Name, r.NameZhTW, r.NameZhCN, string(r.Type), r.TypeZhTW, r.TypeZhCN} {
			if add(s) {
				return out
			}
		}
	}
	return out
}

// Category is one tile of the resources landing page.
type Category struct {
	ID       content.ResourceType
	LabelKey string
	desc     string
	descZh   string
}

// Label is the translated category name.
func (c Category) Label(l i18n.Lang) string { return i18n.T(l, c.LabelKey) }

// Description is the one-line summary shown on the tile.
func (c Category) Description(l i18n.Lang) string {
	if i18n.IsChinese(l) {
		return c.descZh
	}
	return c.desc
}

// Categories lists the directory tiles in display order.
func Categories() []Category {
	return []Category{
		{content.TypeChineseServices, "resources.cat.chinese_services", "Mandarin/Cantonese speaking support.", "國語／粵語支援服務。"},
		{content.TypeShelter, "resources.cat.shelter", "Emergency housing & youth centers.", "緊急住所與青年中心。"},
		{content.TypeFoodBank, "resources.cat.food", "Free meal programs & groceries.", "免費餐食與食物發放。"},
		{content.TypeLegalAid, "resources.cat.legal", "Immigration & tenant rights.", "移民與租客權益。"},
		{content.TypeMentalHealth, "resources.cat.mental_health", "Counseling & crisis intervention.", "心理諮商與危機介入。"},
		{content.TypeDomesticViolence, "resources.cat.dv", "Safe houses & victim advocacy.", "安全庇護與受害者倡導。"},
	}
}

// LookupCategory finds a tile by its type name, ignoring case.
func LookupCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c.ID), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return Category{}, false
}

// Prompt is a one-click AI search suggestion.
type Prompt struct {
	Label string
	Query string
}

// SuggestedPrompts returns the quick prompts under the AI search box. The
// query text is always English.
func SuggestedPrompts(l i18n.Lang) []Prompt {
	zh := l == i18n.ZhTW
	pick := func(en, tw string) string {
		if zh {
			return tw
		}
		return en
	}
	return []Prompt{
		{pick("Find Shelters", "尋找收容所"), "Find open emergency shelters in California"},
		{pick("Legal Aid", "法律援助"), "Find pro-bono legal aid for eviction"},
		{pick("Free Food", "食物發放"), "Find food banks near me"},
		{pick("Mental Health", "心理諮商"), "Find culturally sensitive therapy"},
	}
}

// CountText is the summary line of a category page.
func CountText(l i18n.Lang, n int) string {
	if i18n.IsChinese(l) {
		return "共有 " + strconv.Itoa(n) + " 個經過驗證的機構服務於此類別。"
	}
	return "Access " + strconv.Itoa(n) + " verified organizations currently serving this category."
}
