package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// ClaimsClient is the part of the Firebase Admin auth client used to manage
// roles.
type ClaimsClient interface {
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
}

// RoleManager grants and revokes the admin custom claim.
type RoleManager struct {
	client ClaimsClient
	claim  string
}

// NewRoleManager creates a manager for the given claim name.
func NewRoleManager(client ClaimsClient, claim string) *RoleManager {
	return &RoleManager{client: client, claim: claim}
}

// Grant sets the admin claim on the account registered with email. Other
// custom claims are preserved.
func (m *RoleManager) Grant(ctx context.Context, email string) (string, error) {
	return m.set(ctx, email, true)
}

// Revoke removes the admin claim.
func (m *RoleManager) Revoke(ctx context.Context, email string) (string, error) {
	return m.set(ctx, email, false)
}

func (m *RoleManager) set(ctx context.Context, email string, admin bool) (string, error) {
	if m.claim == "" {
		return "", fmt.Errorf("no admin claim configured")
	}
	rec, err := m.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return "", fmt.Errorf("no account registered for %s", email)
		}
		return "", fmt.Errorf("looking up %s: %w", email, err)
	}

	claims := make(map[string]interface{}, len(rec.CustomClaims)+1)
	for k, v := range rec.CustomClaims {
		claims[k] = v
	}
	if admin {
		claims[m.claim] = true
	} else {
		delete(claims, m.claim)
	}

	uid := rec.UID
	if err := m.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return "", fmt.Errorf("setting claims for %s: %w", email, err)
	}
	return uid, nil
}
