package identity

import "context"

// Authenticator is the sign-in capability used by the web handlers.
// Implementations return *apperr.AuthError for credential rejections so the
// message can be shown as is.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignUp(ctx context.Context, name, email, password string) (*User, error)
	// SignInFederated exchanges a Google ID token for a site account. Demo
	// implementations ignore the token.
	SignInFederated(ctx context.Context, googleIDToken string) (*User, error)
	SignOut(ctx context.Context, u *User) error
	UpdateProfile(ctx context.Context, u *User, name, avatar string) (*User, error)
	Delete(ctx context.Context, u *User) error
	SendVerification(ctx context.Context, u *User) error
	// Reload refreshes the verification flag and profile fields.
	Reload(ctx context.Context, u *User) (*User, error)
}
