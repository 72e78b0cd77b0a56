package identity

import (
	"errors"
	"strings"

	"github.com/voicethroughimage/vti/internal/apperr"
)

// Normalized provider error codes.
const (
	CodeInvalidCredential = "invalid-credential"
	CodeUserNotFound      = "user-not-found"
	CodeWrongPassword     = "wrong-password"
	CodeEmailInUse        = "email-already-in-use"
	CodeWeakPassword      = "weak-password"
	CodeTooManyRequests   = "too-many-requests"
	CodeUserDisabled      = "user-disabled"
	CodeTokenExpired      = "requires-recent-login"
	CodeUnknown           = "unknown"
)

// User-facing messages.
const (
	MsgLoginFailed       = "Login failed."
	MsgInvalidCredential = "Invalid email or password."
	MsgUserNotFound      = "User not found."
	MsgWrongPassword     = "Incorrect password."
	MsgSignupFailed      = "Signup failed."
	MsgEmailInUse        = "Email already in use."
	MsgWeakPassword      = "Password should be at least 6 characters."
)

// ErrNotSignedIn is returned by operations that need a user.
var ErrNotSignedIn = errors.New("not signed in")

// identity toolkit error message prefixes -> normalized codes
var toolkitCodes = map[string]string{
	"INVALID_LOGIN_CREDENTIALS":      CodeInvalidCredential,
	"INVALID_IDP_RESPONSE":           CodeInvalidCredential,
	"EMAIL_NOT_FOUND":                CodeUserNotFound,
	"USER_NOT_FOUND":                 CodeUserNotFound,
	"INVALID_PASSWORD":               CodeWrongPassword,
	"EMAIL_EXISTS":                   CodeEmailInUse,
	"WEAK_PASSWORD":                  CodeWeakPassword,
	"TOO_MANY_ATTEMPTS_TRY_LATER":    CodeTooManyRequests,
	"USER_DISABLED":                  CodeUserDisabled,
	"TOKEN_EXPIRED":                  CodeTokenExpired,
	"CREDENTIAL_TOO_OLD_LOGIN_AGAIN": CodeTokenExpired,
	"INVALID_ID_TOKEN":               CodeTokenExpired,
}

// toolkitCode normalizes an Identity Toolkit error message such as
// "WEAK_PASSWORD : Password should be at least 6 characters".
func toolkitCode(message string) string {
	head := strings.TrimSpace(message)
	if i := strings.IndexAny(head, " :"); i >= 0 {
		head = head[:i]
	}
	if code, ok := toolkitCodes[strings.ToUpper(head)]; ok {
		return code
	}
	return CodeUnknown
}

// LoginMessage maps a normalized code to the sign-in error text.
func LoginMessage(code string) string {
	switch code {
	case CodeInvalidCredential:
		return MsgInvalidCredential
	case CodeUserNotFound:
		return MsgUserNotFound
	case CodeWrongPassword:
		return MsgWrongPassword
	}
	return MsgLoginFailed
}

// SignupMessage maps a normalized code to the sign-up error text.
func SignupMessage(code string) string {
	switch code {
	case CodeEmailInUse:
		return MsgEmailInUse
	case CodeWeakPassword:
		return MsgWeakPassword
	}
	return MsgSignupFailed
}

// Message extracts the user-facing text from err, or fallback when err is
// not an auth rejection.
func Message(err error, fallback string) string {
	if ae, ok := apperr.AsAuth(err); ok && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
