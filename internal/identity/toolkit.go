package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"github.com/voicethroughimage/vti/internal/apperr"
)

// toolkit talks to the Identity Toolkit REST API with the project's web
// API key, which is how Firebase Authentication signs in end users.
type toolkit struct {
	rp *identitytoolkit.RelyingpartyService
}

func newToolkit(ctx context.Context, apiKey string) (*toolkit, error) {
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating identity toolkit client: %w", err)
	}
	return &toolkit{rp: svc.Relyingparty}, nil
}

func (t *toolkit) verifyPassword(ctx context.Context, email, password string) (*account, error) {
	resp, err := t.rp.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify("verify password", err)
	}
	return &account{
		LocalID:     resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		PhotoURL:    resp.PhotoUrl,
		IDToken:     resp.IdToken,
	}, nil
}

func (t *toolkit) signUp(ctx context.Context, name, email, password string) (*account, error) {
	resp, err := t.rp.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:       email,
		Password:    password,
		DisplayName: name,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify("sign up", err)
	}
	return &account{
		LocalID:     resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		IDToken:     resp.IdToken,
	}, nil
}

func (t *toolkit) verifyAssertion(ctx context.Context, googleIDToken, requestURI string) (*account, error) {
	body := url.Values{}
	body.Set("id_token", googleIDToken)
	body.Set("providerId", "google.com")
	resp, err := t.rp.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          body.Encode(),
		RequestUri:        requestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify("verify assertion", err)
	}
	if resp.ErrorMessage != "" {
		return nil, &apperr.AuthError{Code: toolkitCode(resp.ErrorMessage), Err: errors.New(resp.ErrorMessage)}
	}
	return &account{
		LocalID:       resp.LocalId,
		Email:         resp.Email,
		DisplayName:   resp.DisplayName,
		PhotoURL:      resp.PhotoUrl,
		IDToken:       resp.IdToken,
		EmailVerified: resp.EmailVerified,
	}, nil
}

func (t *toolkit) lookup(ctx context.Context, idToken string) (*account, error) {
	resp, err := t.rp.GetAccountInfo(&identitytoolkit.IdentitytoolkitRelyingpartyGetAccountInfoRequest{
		IdToken: idToken,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify("get account info", err)
	}
	if len(resp.Users) == 0 {
		return nil, &apperr.AuthError{Code: CodeUserNotFound, Err: errors.New("no account for token")}
	}
	u := resp.Users[0]
	acc := &account{
		LocalID:       u.LocalId,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		PhotoURL:      u.PhotoUrl,
		EmailVerified: u.EmailVerified,
	}
	if u.CustomAttributes != "" {
		var claims map[string]any
		if err := json.Unmarshal([]byte(u.CustomAttributes), &claims); err == nil {
			acc.Claims = claims
		}
	}
	return acc, nil
}

func (t *toolkit) update(ctx context.Context, idToken, name, avatar string) (*account, error) {
	req := &identitytoolkit.IdentitytoolkitRelyingpartySetAccountInfoRequest{
		IdToken:           idToken,
		DisplayName:       name,
		PhotoUrl:          avatar,
		ReturnSecureToken: true,
	}
	resp, err := t.rp.SetAccountInfo(req).Context(ctx).Do()
	if err != nil {
		return nil, classify("set account info", err)
	}
	return &account{
		LocalID:     resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		PhotoURL:    resp.PhotoUrl,
		IDToken:     resp.IdToken,
	}, nil
}

func (t *toolkit) delete(ctx context.Context, idToken string) error {
	_, err := t.rp.DeleteAccount(&identitytoolkit.IdentitytoolkitRelyingpartyDeleteAccountRequest{
		IdToken: idToken,
	}).Context(ctx).Do()
	if err != nil {
		return classify("delete account", err)
	}
	return nil
}

func (t *toolkit) sendVerification(ctx context.Context, idToken string) error {
	_, err := t.rp.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		RequestType: "VERIFY_EMAIL",
		IdToken:     idToken,
	}).Context(ctx).Do()
	if err != nil {
		return classify("send verification", err)
	}
	return nil
}

// classify converts a toolkit call failure into an apperr type. Requests the
// service rejected become AuthErrors; everything else is transient.
func classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusTooManyRequests:
			return &apperr.AuthError{Code: CodeTooManyRequests, Err: err}
		case gerr.Code >= 400 && gerr.Code < 500:
			return &apperr.AuthError{Code: toolkitCode(gerr.Message), Err: err}
		}
	}
	return apperr.Transient(op, err)
}
