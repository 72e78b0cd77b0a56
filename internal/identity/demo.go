package identity

import "context"

// Fixed demo account values.
const (
	DemoUserID       = "demo-user-123"
	DemoUserName     = "Demo User"
	DemoGoogleID     = "demo-google-user"
	DemoGoogleName   = "Google User (Demo)"
	DemoGoogleEmail  = "user@gmail.com"
	DemoGoogleAvatar = "https://lh3.googleusercontent.com/a/default-user=s96-c"
)

// Demo accepts any credentials and synthesizes deterministic users. Every
// demo account is already verified.
type Demo struct {
	policy AdminPolicy
}

// NewDemo creates a demo authenticator. The admin policy still applies so a
// configured e-mail can reach the dashboard without a Firebase project.
func NewDemo(policy AdminPolicy) *Demo {
	return &Demo{policy: policy}
}

func (d *Demo) SignIn(_ context.Context, email, _ string) (*User, error) {
	return &User{
		ID:       DemoUserID,
		Name:     DemoUserName,
		Email:    email,
		Verified: true,
		Admin:    d.policy.IsAdmin(email, nil),
	}, nil
}

func (d *Demo) SignUp(_ context.Context, name, email, _ string) (*User, error) {
	return &User{
		ID:       DemoUserID,
		Name:     DisplayName(name, email),
		Email:    email,
		Verified: true,
		Admin:    d.policy.IsAdmin(email, nil),
	}, nil
}

func (d *Demo) SignInFederated(context.Context, string) (*User, error) {
	return &User{
		ID:       DemoGoogleID,
		Name:     DemoGoogleName,
		Email:    DemoGoogleEmail,
		Verified: true,
		Admin:    d.policy.IsAdmin(DemoGoogleEmail, nil),
		Avatar:   DemoGoogleAvatar,
	}, nil
}

func (d *Demo) SignOut(context.Context, *User) error { return nil }

func (d *Demo) UpdateProfile(_ context.Context, u *User, name, avatar string) (*User, error) {
	if u == nil {
		return nil, ErrNotSignedIn
	}
	next := *u
	next.Name = DisplayName(name, u.Email)
	next.Avatar = avatar
	return &next, nil
}

func (d *Demo) Delete(context.Context, *User) error { return nil }

func (d *Demo) SendVerification(context.Context, *User) error { return nil }

func (d *Demo) Reload(_ context.Context, u *User) (*User, error) {
	if u == nil {
		return nil, ErrNotSignedIn
	}
	next := *u
	next.Verified = true
	return &next, nil
}
