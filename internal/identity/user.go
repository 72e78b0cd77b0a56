// Package identity signs visitors in, either against Firebase Authentication
// or, when no Firebase project is configured, with fixed demo accounts.
package identity

import (
	"strings"
)

// DefaultDisplayName is used when neither a display name nor an e-mail is
// known.
const DefaultDisplayName = "Community Member"

// User is the signed-in visitor as the site sees it.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"isVerified"`
	Admin    bool   `json:"isAdmin"`
	Avatar   string `json:"avatar,omitempty"`

	// idToken is the provider session token. Demo users have none.
	idToken string
}

// Live reports whether the user is backed by a provider session.
func (u *User) Live() bool {
	return u != nil && u.idToken != ""
}

// DisplayName picks the name shown for an account: the provider display
// name, else the e-mail local part, else DefaultDisplayName.
func DisplayName(name, email string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	if e := strings.TrimSpace(email); e != "" && !strings.Contains(e, "@") {
		return e
	}
	return DefaultDisplayName
}

// AdminPolicy decides who gets the admin dashboard. A user is an admin when
// their token carries the configured custom claim set to true, or their
// e-mail is listed explicitly.
type AdminPolicy struct {
	claim  string
	emails map[string]struct{}
}

// NewAdminPolicy builds a policy. An empty claim disables claim checks.
func NewAdminPolicy(claim string, emails []string) AdminPolicy {
	p := AdminPolicy{claim: claim, emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			p.emails[e] = struct{}{}
		}
	}
	return p
}

// Claim returns the custom claim name the policy looks for.
func (p AdminPolicy) Claim() string { return p.claim }

// IsAdmin applies the policy.
func (p AdminPolicy) IsAdmin(email string, claims map[string]any) bool {
	if p.claim != "" && claims != nil {
		if v, ok := claims[p.claim].(bool); ok && v {
			return true
		}
	}
	if email == "" {
		return false
	}
	_, ok := p.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
