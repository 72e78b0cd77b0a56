package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/voicethroughimage/vti/internal/apperr"
)

// classify maps a provider failure onto the apperr types. Quota problems
// are recognised by status code first and by message text as a last resort,
// since some providers only report them in the body.
func classify(provider string, err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	if isQuota(err) {
		return apperr.Quota(provider, err)
	}
	return apperr.Transient(provider, err)
}

func isQuota(err error) bool {
	var gerr genai.APIError
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusTooManyRequests || strings.Contains(gerr.Status, "RESOURCE_EXHAUSTED") {
			return true
		}
	}
	var oerr *openai.APIError
	if errors.As(err, &oerr) && oerr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	var rerr *openai.RequestError
	if errors.As(err, &rerr) && rerr.HTTPStatusCode == http.StatusTooManyRequests {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "quota")
}
