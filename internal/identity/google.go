package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ErrNoIDToken is returned when Google's token response lacks an ID token.
var ErrNoIDToken = errors.New("google token response has no id_token")

// GoogleOAuth runs the authorization-code flow behind "Continue with Google".
// The resulting Google ID token is handed to Firebase with SignInFederated.
type GoogleOAuth struct {
	conf *oauth2.Config
}

// NewGoogleOAuth returns nil when no client id is configured.
func NewGoogleOAuth(clientID, clientSecret, redirectURL string) *GoogleOAuth {
	if clientID == "" {
		return nil
	}
	return &GoogleOAuth{conf: &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
		RedirectURL:  redirectURL,
	}}
}

// NewState returns an unguessable state value for one authorization round trip.
func NewState() string {
	return uuid.NewString()
}

// AuthURL is the consent page the browser is redirected to.
func (g *GoogleOAuth) AuthURL(state string) string {
	return g.conf.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange trades the callback code for Google's ID token.
func (g *GoogleOAuth) Exchange(ctx context.Context, code string) (string, error) {
	token, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchanging authorization code: %w", err)
	}
	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		return "", ErrNoIDToken
	}
	return idToken, nil
}
