package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError carries the backend's status code and the most readable message
// that could be extracted from its response body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// messageBody matches the backend's error envelope, where message may be a
// single string or an array of strings.
type messageBody struct {
	Message json.RawMessage `json:"message"`
}

// extractMessage pulls a human-readable message out of an error response
// body: a JSON "message" field (string, or array of strings joined with
// ", "), the raw body text, or a generic fallback when the body is empty.
func extractMessage(status int, body []byte) string {
	text := strings.TrimSpace(string(body))

	var parsed messageBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Message) > 0 {
		var single string
		if err := json.Unmarshal(parsed.Message, &single); err == nil {
			text = single
		} else {
			var many []string
			if err := json.Unmarshal(parsed.Message, &many); err == nil {
				text = strings.Join(many, ", ")
			}
		}
	}

	if text == "" {
		return fmt.Sprintf("request failed with status %d", status)
	}
	return text
}
