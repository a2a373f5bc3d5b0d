package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Tags    map[string]string
}

// Mailer delivers a message and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SendError is a delivery failure reported by the provider.
type SendError struct {
	StatusCode int
	Name       string
	Message    string
}

func (e *SendError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Name != "":
		return fmt.Sprintf("mail provider error %d (%s): %s", e.StatusCode, e.Name, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("mail provider error %d: %s", e.StatusCode, e.Message)
	default:
		return e.Message
	}
}

// NameValidationError is the provider's error kind for rejected sender domains.
const NameValidationError = "validation_error"

// IsDomainNotVerified reports whether err means the sender domain is not verified
// with the provider: a 403 validation_error, or any message saying "not verified".
func IsDomainNotVerified(err error) bool {
	if err == nil {
		return false
	}
	var se *SendError
	if errors.As(err, &se) {
		if se.StatusCode == http.StatusForbidden && se.Name == NameValidationError {
			return true
		}
		return strings.Contains(strings.ToLower(se.Message), "not verified")
	}
	return strings.Contains(strings.ToLower(err.Error()), "not verified")
}

// Detail returns the provider message for err, suitable for the client.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var se *SendError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Error desconocido"
}
