package identity

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicethroughimage/vti/internal/apperr"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ana", DisplayName(" Ana ", "ana@example.org"))
	assert.Equal(t, "ana", DisplayName("", "ana@example.org"))
	assert.Equal(t, DefaultDisplayName, DisplayName("", ""))
	assert.Equal(t, DefaultDisplayName, DisplayName("", "@example.org"))
}

func TestAdminPolicy(t *testing.T) {
	p := NewAdminPolicy("admin", []string{" Staff@VTI.org ", ""})

	assert.True(t, p.IsAdmin("staff@vti.org", nil))
	assert.True(t, p.IsAdmin("someone@else.org", map[string]any{"admin": true}))
	assert.False(t, p.IsAdmin("someone@else.org", map[string]any{"admin": "true"}))
	assert.False(t, p.IsAdmin("someone@else.org", map[string]any{"editor": true}))
	assert.False(t, p.IsAdmin("", nil))

	// The old hardcoded address carries no special meaning.
	assert.False(t, NewAdminPolicy("admin", nil).IsAdmin("admin@voicethroughimage.org", nil))

	noClaim := NewAdminPolicy("", nil)
	assert.False(t, noClaim.IsAdmin("x@y.org", map[string]any{"": true}))
}

func TestDemoSignInAcceptsAnything(t *testing.T) {
	d := NewDemo(NewAdminPolicy("admin", nil))
	ctx := context.Background()
	for i := 0; i < 50; i++ {
		email := gofakeit.Email()
		password := gofakeit.Password(true, true, true, true, false, gofakeit.Number(0, 20))

		u, err := d.SignIn(ctx, email, password)
		require.NoError(t, err)
		assert.Equal(t, DemoUserID, u.ID)
		assert.Equal(t, DemoUserName, u.Name)
		assert.Equal(t, email, u.Email)
		assert.True(t, u.Verified)
		assert.False(t, u.Admin)
		assert.False(t, u.Live())
	}
}

func TestDemoSignUpAndGoogle(t *testing.T) {
	d := NewDemo(NewAdminPolicy("admin", []string{"boss@vti.org"}))
	ctx := context.Background()

	u, err := d.SignUp(ctx, "Lin Wei", "boss@vti.org", "")
	require.NoError(t, err)
	assert.Equal(t, DemoUserID, u.ID)
	assert.Equal(t, "Lin Wei", u.Name)
	assert.True(t, u.Admin)

	g, err := d.SignInFederated(ctx, "ignored")
	require.NoError(t, err)
	assert.Equal(t, &User{
		ID:       DemoGoogleID,
		Name:     DemoGoogleName,
		Email:    DemoGoogleEmail,
		Verified: true,
		Avatar:   DemoGoogleAvatar,
	}, g)

	updated, err := d.UpdateProfile(ctx, g, "New Name", "https://img.example/a.png")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "https://img.example/a.png", updated.Avatar)
	assert.Equal(t, DemoGoogleName, g.Name)

	assert.NoError(t, d.SignOut(ctx, g))
	assert.NoError(t, d.Delete(ctx, g))
	assert.NoError(t, d.SendVerification(ctx, g))

	_, err = d.UpdateProfile(ctx, nil, "x", "")
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestToolkitCode(t *testing.T) {
	assert.Equal(t, CodeWeakPassword, toolkitCode("WEAK_PASSWORD : Password should be at least 6 characters"))
	assert.Equal(t, CodeEmailInUse, toolkitCode("EMAIL_EXISTS"))
	assert.Equal(t, CodeInvalidCredential, toolkitCode("INVALID_LOGIN_CREDENTIALS"))
	assert.Equal(t, CodeUserNotFound, toolkitCode("EMAIL_NOT_FOUND"))
	assert.Equal(t, CodeWrongPassword, toolkitCode("INVALID_PASSWORD"))
	assert.Equal(t, CodeUnknown, toolkitCode("SOMETHING_NEW"))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, MsgInvalidCredential, LoginMessage(CodeInvalidCredential))
	assert.Equal(t, MsgUserNotFound, LoginMessage(CodeUserNotFound))
	assert.Equal(t, MsgWrongPassword, LoginMessage(CodeWrongPassword))
	assert.Equal(t, MsgLoginFailed, LoginMessage(CodeEmailInUse))
	assert.Equal(t, MsgEmailInUse, SignupMessage(CodeEmailInUse))
	assert.Equal(t, MsgWeakPassword, SignupMessage(CodeWeakPassword))
	assert.Equal(t, MsgSignupFailed, SignupMessage(CodeUnknown))
	assert.Equal(t, "fallback", Message(errors.New("x"), "fallback"))
}

type fakeAccounts struct {
	accounts  map[string]*account // by email
	passwords map[string]string
	verified  map[string]bool
	claims    map[string]map[string]any
	failNext  error
	sentOob   []string
	deleted   []string
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		accounts:  map[string]*account{},
		passwords: map[string]string{},
		verified:  map[string]bool{},
		claims:    map[string]map[string]any{},
	}
}

func (f *fakeAccounts) take() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeAccounts) byToken(tok string) *account {
	for _, a := range f.accounts {
		if a.IDToken == tok {
			return a
		}
	}
	return nil
}

func (f *fakeAccounts) verifyPassword(_ context.Context, email, password string) (*account, error) {
	if err := f.take(); err != nil {
		return nil, err
	}
	a, ok := f.accounts[email]
	if !ok {
		return nil, &apperr.AuthError{Code: CodeUserNotFound}
	}
	if f.passwords[email] != password {
		return nil, &apperr.AuthError{Code: CodeWrongPassword}
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) signUp(_ context.Context, name, email, password string) (*account, error) {
	if err := f.take(); err != nil {
		return nil, err
	}
	if _, ok := f.accounts[email]; ok {
		return nil, &apperr.AuthError{Code: CodeEmailInUse}
	}
	if len(password) < 6 {
		return nil, &apperr.AuthError{Code: CodeWeakPassword}
	}
	a := &account{LocalID: "uid-" + email, Email: email, DisplayName: name, IDToken: "tok-" + email}
	f.accounts[email] = a
	f.passwords[email] = password
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) verifyAssertion(_ context.Context, idToken, _ string) (*account, error) {
	if err := f.take(); err != nil {
		return nil, err
	}
	return &account{LocalID: "g-1", Email: "g@example.org", IDToken: "tok-g", EmailVerified: true}, nil
}

func (f *fakeAccounts) lookup(_ context.Context, tok string) (*account, error) {
	a := f.byToken(tok)
	if a == nil {
		return nil, &apperr.AuthError{Code: CodeTokenExpired}
	}
	cp := *a
	cp.EmailVerified = f.verified[a.Email]
	cp.Claims = f.claims[a.Email]
	return &cp, nil
}

func (f *fakeAccounts) update(_ context.Context, tok, name, avatar string) (*account, error) {
	if err := f.take(); err != nil {
		return nil, err
	}
	a := f.byToken(tok)
	if a == nil {
		return nil, &apperr.AuthError{Code: CodeTokenExpired}
	}
	a.DisplayName = name
	a.PhotoURL = avatar
	cp := *a
	return &cp, nil
}

func (f *fakeAccounts) delete(_ context.Context, tok string) error {
	if err := f.take(); err != nil {
		return err
	}
	f.deleted = append(f.deleted, tok)
	return nil
}

func (f *fakeAccounts) sendVerification(_ context.Context, tok string) error {
	f.sentOob = append(f.sentOob, tok)
	return nil
}

type fakeRevoker struct{ revoked []string }

func (r *fakeRevoker) RevokeRefreshTokens(_ context.Context, uid string) error {
	r.revoked = append(r.revoked, uid)
	return nil
}

func newTestFirebase(api accounts, rev TokenRevoker) *Firebase {
	return newFirebase(api, FirebaseOptions{
		Revoker: rev,
		Policy:  NewAdminPolicy("admin", nil),
		Log:     zerolog.Nop(),
	})
}

func TestFirebaseSignUpThenSignIn(t *testing.T) {
	api := newFakeAccounts()
	fb := newTestFirebase(api, nil)
	ctx := context.Background()

	u, err := fb.SignUp(ctx, "Maya", "maya@example.org", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Maya", u.Name)
	assert.False(t, u.Verified, "live accounts report the real verification flag")
	assert.True(t, u.Live())
	assert.Equal(t, []string{"tok-maya@example.org"}, api.sentOob)

	api.verified["maya@example.org"] = true
	api.claims["maya@example.org"] = map[string]any{"admin": true}

	u, err = fb.SignIn(ctx, "maya@example.org", "secret1")
	require.NoError(t, err)
	assert.True(t, u.Verified)
	assert.True(t, u.Admin)
}

func TestFirebaseErrorMessages(t *testing.T) {
	api := newFakeAccounts()
	fb := newTestFirebase(api, nil)
	ctx := context.Background()

	_, err := fb.SignIn(ctx, "nobody@example.org", "x")
	assert.Equal(t, MsgUserNotFound, Message(err, ""))

	_, err = fb.SignUp(ctx, "", "a@example.org", "123")
	assert.Equal(t, MsgWeakPassword, Message(err, ""))

	_, err = fb.SignUp(ctx, "", "a@example.org", "123456")
	require.NoError(t, err)
	_, err = fb.SignUp(ctx, "", "a@example.org", "123456")
	assert.Equal(t, MsgEmailInUse, Message(err, ""))

	_, err = fb.SignIn(ctx, "a@example.org", "nope")
	assert.Equal(t, MsgWrongPassword, Message(err, ""))

	api.failNext = apperr.Transient("verify password", errors.New("dial tcp: timeout"))
	_, err = fb.SignIn(ctx, "a@example.org", "123456")
	assert.Equal(t, MsgLoginFailed, Message(err, ""))

	api.failNext = errors.New("boom")
	_, err = fb.SignInFederated(ctx, "tok")
	assert.Equal(t, MsgGoogleFailed, Message(err, ""))
}

func TestFirebaseProfileLifecycle(t *testing.T) {
	api := newFakeAccounts()
	rev := &fakeRevoker{}
	fb := newTestFirebase(api, rev)
	ctx := context.Background()

	u, err := fb.SignUp(ctx, "", "sam@example.org", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "sam", u.Name)

	u, err = fb.UpdateProfile(ctx, u, "Sam Ortiz", "https://img.example/s.png")
	require.NoError(t, err)
	assert.Equal(t, "Sam Ortiz", u.Name)
	assert.Equal(t, "https://img.example/s.png", u.Avatar)

	api.verified["sam@example.org"] = true
	u, err = fb.Reload(ctx, u)
	require.NoError(t, err)
	assert.True(t, u.Verified)
	assert.True(t, u.Live())

	require.NoError(t, fb.SignOut(ctx, u))
	assert.Equal(t, []string{"uid-sam@example.org"}, rev.revoked)

	require.NoError(t, fb.Delete(ctx, u))
	assert.Len(t, api.deleted, 1)

	demoUser := &User{ID: DemoUserID}
	assert.ErrorIs(t, fb.Delete(ctx, demoUser), ErrNotSignedIn)
	assert.NoError(t, fb.SignOut(ctx, demoUser))
}

type fakeClaims struct {
	users  map[string]*auth.UserRecord
	claims map[string]map[string]interface{}
}

func (f *fakeClaims) GetUserByEmail(_ context.Context, email string) (*auth.UserRecord, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, errors.New("missing")
	}
	return u, nil
}

func (f *fakeClaims) SetCustomUserClaims(_ context.Context, uid string, c map[string]interface{}) error {
	f.claims[uid] = c
	return nil
}

func TestRoleManager(t *testing.T) {
	client := &fakeClaims{
		users: map[string]*auth.UserRecord{
			"ed@vti.org": {
				UserInfo:     &auth.UserInfo{UID: "u-ed", Email: "ed@vti.org"},
				CustomClaims: map[string]interface{}{"tier": "gold"},
			},
		},
		claims: map[string]map[string]interface{}{},
	}
	m := NewRoleManager(client, "admin")
	ctx := context.Background()

	uid, err := m.Grant(ctx, "ed@vti.org")
	require.NoError(t, err)
	assert.Equal(t, "u-ed", uid)
	assert.Equal(t, map[string]interface{}{"tier": "gold", "admin": true}, client.claims["u-ed"])

	_, err = m.Revoke(ctx, "ed@vti.org")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"tier": "gold"}, client.claims["u-ed"])

	_, err = m.Grant(ctx, "ghost@vti.org")
	assert.Error(t, err)

	_, err = NewRoleManager(client, "").Grant(ctx, "ed@vti.org")
	assert.Error(t, err)
}

func TestGoogleOAuth(t *testing.T) {
	assert.Nil(t, NewGoogleOAuth("", "", ""))

	g := NewGoogleOAuth("client-id", "secret", "https://vti.example/auth/google/callback")
	u := g.AuthURL("state-123")
	assert.Contains(t, u, "accounts.google.com")
	assert.Contains(t, u, "state=state-123")
	assert.Contains(t, u, "client_id=client-id")
	assert.NotEqual(t, NewState(), NewState())
}
