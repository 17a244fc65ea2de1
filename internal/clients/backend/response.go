package backend

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/KirkDiggler/grimdank-editor/internal/errors"
)

// decodePage accepts either a bare JSON array or a {data,total} envelope
func decodePage[T any](body []byte) (*Page[T], error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &Page[T]{Items: []T{}}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to decode list response")
		}
		return &Page[T]{Items: nonNil(items)}, nil
	}

	var env pageEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to decode list response")
	}
	return &Page[T]{Items: nonNil(env.Data), Total: env.Total}, nil
}

func unmarshal(body []byte, out any) error {
	return json.Unmarshal(body, out)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// responseError converts a failed response into an *errors.Error, preferring
// the backend's own message
func responseError(resp *resty.Response, fallback string) *errors.Error {
	status := resp.StatusCode()
	return errors.New(errors.CodeFromHTTPStatus(status), backendMessage(resp.Body(), fallback)).
		WithMeta("status", status)
}

func backendMessage(body []byte, fallback string) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fallback
	}

	var eb errorBody
	if trimmed[0] == '{' && json.Unmarshal(trimmed, &eb) == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
		return fallback
	}

	if msg := strings.TrimSpace(string(trimmed)); msg != "" && !strings.HasPrefix(msg, "<") {
		return msg
	}
	return fallback
}
