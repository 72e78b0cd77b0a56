package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/voicethroughimage/vti/internal/apperr"
)

// MsgGoogleFailed is shown when the federated sign-in is rejected.
const MsgGoogleFailed = "Google sign-in failed."

// account is the provider's view of a user.
type account struct {
	LocalID       string
	Email         string
	DisplayName   string
	PhotoURL      string
	IDToken       string
	EmailVerified bool
	Claims        map[string]any
}

// accounts is the subset of the Identity Toolkit used by Firebase. Errors
// are *apperr.AuthError (with a normalized Code) or *apperr.TransientError.
type accounts interface {
	verifyPassword(ctx context.Context, email, password string) (*account, error)
	signUp(ctx context.Context, name, email, password string) (*account, error)
	verifyAssertion(ctx context.Context, googleIDToken, requestURI string) (*account, error)
	lookup(ctx context.Context, idToken string) (*account, error)
	update(ctx context.Context, idToken, name, avatar string) (*account, error)
	delete(ctx context.Context, idToken string) error
	sendVerification(ctx context.Context, idToken string) error
}

// TokenRevoker invalidates refresh tokens. *auth.Client from the Firebase
// Admin SDK satisfies it.
type TokenRevoker interface {
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// Firebase authenticates against a Firebase project.
type Firebase struct {
	api        accounts
	revoker    TokenRevoker
	policy     AdminPolicy
	requestURI string
	log        zerolog.Logger
}

// FirebaseOptions configures NewFirebase.
type FirebaseOptions struct {
	APIKey     string
	Revoker    TokenRevoker // optional; needs service account credentials
	Policy     AdminPolicy
	RequestURI string // continue URI reported to verifyAssertion
	Log        zerolog.Logger
}

// NewFirebase connects to the Identity Toolkit with the project's web API key.
func NewFirebase(ctx context.Context, opts FirebaseOptions) (*Firebase, error) {
	api, err := newToolkit(ctx, opts.APIKey)
	if err != nil {
		return nil, err
	}
	return newFirebase(api, opts), nil
}

func newFirebase(api accounts, opts FirebaseOptions) *Firebase {
	uri := opts.RequestURI
	if uri == "" {
		uri = "http://localhost"
	}
	return &Firebase{
		api:        api,
		revoker:    opts.Revoker,
		policy:     opts.Policy,
		requestURI: uri,
		log:        opts.Log,
	}
}

func (f *Firebase) SignIn(ctx context.Context, email, password string) (*User, error) {
	acc, err := f.api.verifyPassword(ctx, email, password)
	if err != nil {
		f.log.Warn().Err(err).Msg("password sign-in rejected")
		return nil, rejection(err, LoginMessage)
	}
	return f.complete(ctx, acc), nil
}

func (f *Firebase) SignUp(ctx context.Context, name, email, password string) (*User, error) {
	acc, err := f.api.signUp(ctx, name, email, password)
	if err != nil {
		f.log.Warn().Err(err).Msg("sign-up rejected")
		return nil, rejection(err, SignupMessage)
	}
	if name != "" && acc.DisplayName == "" {
		if updated, err := f.api.update(ctx, acc.IDToken, name, ""); err == nil {
			acc.DisplayName = updated.DisplayName
			if updated.IDToken != "" {
				acc.IDToken = updated.IDToken
			}
		} else {
			f.log.Warn().Err(err).Msg("setting display name after sign-up")
		}
	}
	if err := f.api.sendVerification(ctx, acc.IDToken); err != nil {
		f.log.Warn().Err(err).Str("email", email).Msg("sending verification e-mail")
	}
	return f.complete(ctx, acc), nil
}

func (f *Firebase) SignInFederated(ctx context.Context, googleIDToken string) (*User, error) {
	acc, err := f.api.verifyAssertion(ctx, googleIDToken, f.requestURI)
	if err != nil {
		f.log.Warn().Err(err).Msg("google sign-in rejected")
		return nil, rejection(err, func(string) string { return MsgGoogleFailed })
	}
	return f.complete(ctx, acc), nil
}

func (f *Firebase) SignOut(ctx context.Context, u *User) error {
	if f.revoker == nil || !u.Live() {
		return nil
	}
	if err := f.revoker.RevokeRefreshTokens(ctx, u.ID); err != nil {
		return apperr.Transient("revoke refresh tokens", err)
	}
	return nil
}

func (f *Firebase) UpdateProfile(ctx context.Context, u *User, name, avatar string) (*User, error) {
	if !u.Live() {
		return nil, ErrNotSignedIn
	}
	acc, err := f.api.update(ctx, u.idToken, name, avatar)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	next := *u
	next.Name = DisplayName(name, u.Email)
	next.Avatar = avatar
	if acc.IDToken != "" {
		next.idToken = acc.IDToken
	}
	return &next, nil
}

func (f *Firebase) Delete(ctx context.Context, u *User) error {
	if !u.Live() {
		return ErrNotSignedIn
	}
	if err := f.api.delete(ctx, u.idToken); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	return nil
}

func (f *Firebase) SendVerification(ctx context.Context, u *User) error {
	if !u.Live() {
		return ErrNotSignedIn
	}
	if err := f.api.sendVerification(ctx, u.idToken); err != nil {
		return fmt.Errorf("sending verification e-mail: %w", err)
	}
	return nil
}

func (f *Firebase) Reload(ctx context.Context, u *User) (*User, error) {
	if !u.Live() {
		return nil, ErrNotSignedIn
	}
	acc, err := f.api.lookup(ctx, u.idToken)
	if err != nil {
		return nil, fmt.Errorf("reloading account: %w", err)
	}
	acc.IDToken = u.idToken
	return f.toUser(acc), nil
}

// complete merges the lookup result (verification flag, custom claims) into
// acc. A failed lookup keeps what the sign-in response carried.
func (f *Firebase) complete(ctx context.Context, acc *account) *User {
	if acc.IDToken != "" {
		info, err := f.api.lookup(ctx, acc.IDToken)
		if err != nil {
			f.log.Warn().Err(err).Str("uid", acc.LocalID).Msg("account lookup after sign-in")
		} else {
			acc.EmailVerified = info.EmailVerified
			acc.Claims = info.Claims
			if acc.DisplayName == "" {
				acc.DisplayName = info.DisplayName
			}
			if acc.PhotoURL == "" {
				acc.PhotoURL = info.PhotoURL
			}
		}
	}
	return f.toUser(acc)
}

func (f *Firebase) toUser(acc *account) *User {
	return &User{
		ID:       acc.LocalID,
		Name:     DisplayName(acc.DisplayName, acc.Email),
		Email:    acc.Email,
		Verified: acc.EmailVerified,
		Admin:    f.policy.IsAdmin(acc.Email, acc.Claims),
		Avatar:   acc.PhotoURL,
		idToken:  acc.IDToken,
	}
}

// rejection attaches the user-facing message for the error's code.
func rejection(err error, message func(code string) string) error {
	code := CodeUnknown
	var ae *apperr.AuthError
	if errors.As(err, &ae) {
		code = ae.Code
	}
	return &apperr.AuthError{Code: code, Message: message(code), Err: err}
}
