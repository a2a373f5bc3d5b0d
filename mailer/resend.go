package mailer

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/resend/resend-go/v2"
)

// MaxTagValueLen is the longest tag value Resend accepts.
const MaxTagValueLen = 256

// TagValue slugifies s into a valid tag value, cut to MaxTagValueLen.
func TagValue(s string) string {
	return capTag(slug.Make(s))
}

func capTag(v string) string {
	if len(v) <= MaxTagValueLen {
		return v
	}
	return strings.TrimRight(v[:MaxTagValueLen], "-_")
}

// ResendMailer sends mail through the Resend API.
type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Tags:    resendTags(msg.Tags),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", toSendError(err)
	}
	if sent == nil {
		return "", nil
	}
	return sent.Id, nil
}

func resendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]resend.Tag, 0, len(keys))
	for _, k := range keys {
		v := capTag(tags[k])
		if v == "" {
			continue
		}
		out = append(out, resend.Tag{Name: k, Value: v})
	}
	return out
}

// toSendError normalises the SDK's "[ERROR]: <message>" errors.
// The SDK drops the HTTP status and error name, so only Message is set and
// IsDomainNotVerified falls back to matching the message text.
// Context errors pass through unchanged so callers can still match them.
func toSendError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	msg := strings.TrimSpace(strings.TrimPrefix(err.Error(), "[ERROR]:"))
	return &SendError{Message: msg}
}
