// Package view holds the page identifiers of the site, the per-browser
// navigation state and the table that maps each page to its renderer.
package view

import "strings"

// View identifies the page currently shown.
type View string

const (
	Home             View = "HOME"
	About            View = "ABOUT"
	Stories          View = "STORIES"
	Resources        View = "RESOURCES"
	ResourceCategory View = "RESOURCE_CATEGORY"
	Contact          View = "CONTACT"
	Login            View = "LOGIN"
	Signup           View = "SIGNUP"
	Profile          View = "PROFILE"
	VerifyEmail      View = "VERIFY_EMAIL"
	SubmitStory      View = "SUBMIT_STORY"
	Chat             View = "CHAT"
	Volunteer        View = "VOLUNTEER"
	Presentation     View = "PRESENTATION"
	Donate           View = "DONATE"
	AdminDashboard   View = "ADMIN_DASHBOARD"
)

var all = []View{
	Home, About, Stories, Resources, ResourceCategory, Contact, Login, Signup,
	Profile, VerifyEmail, SubmitStory, Chat, Volunteer, Presentation, Donate,
	AdminDashboard,
}

// All returns every view in declaration order.
func All() []View {
	out := make([]View, len(all))
	copy(out, all)
	return out
}

// Valid reports whether v is one of the declared views.
func (v View) Valid() bool {
	for _, known := range all {
		if v == known {
			return true
		}
	}
	return false
}

func (v View) String() string { return string(v) }

// Slug is the lower-case, dash separated form used in URLs.
func (v View) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(v)), "_", "-")
}

// Parse matches s case-insensitively against the declared views. Dashes
// are accepted in place of underscores, so both "resource_category" and
// the slug "resource-category" resolve.
func Parse(s string) (View, bool) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	if key == "" {
		return "", false
	}
	v := View(key)
	if !v.Valid() {
		return "", false
	}
	return v, true
}

// ShowsChrome reports whether the page is wrapped by the navbar and footer.
// The presentation deck is shown full screen.
func ShowsChrome(v View) bool {
	return v != Presentation
}
