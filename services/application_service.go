// services/application_service.go
package services

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tryout-intake/config"
	"tryout-intake/mailer"
	"tryout-intake/models"
	"tryout-intake/names"
	"tryout-intake/validation"
)

const (
	NoteUnconfigured = "Email no configurado (RESEND_API_KEY/MAIL_FROM/MAIL_TO)"
	NoteSimulated    = "Dev mode: dominio no verificado, email simulado"

	ErrSendFailed = "Error enviando email"
	errUnknown    = "Error desconocido"
)

// ApplicationService validates tryout applications and forwards them by email.
type ApplicationService struct {
	Mail       config.MailConfig
	Production bool
	Mailer     mailer.Mailer
	Validator  *validation.Validator
	Stats      *DispatchStats
	Log        *zap.SugaredLogger

	newID func() string
}

// NewApplicationService wires the service. m may be nil when delivery is not configured.
func NewApplicationService(cfg *config.Config, m mailer.Mailer, log *zap.SugaredLogger) *ApplicationService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ApplicationService{
		Mail:       cfg.Mail,
		Production: cfg.IsProduction(),
		Mailer:     m,
		Validator:  validation.New(),
		Stats:      &DispatchStats{},
		Log:        log,
		newID:      uuid.NewString,
	}
}

// Submit runs the full pipeline for one raw submission and returns the HTTP
// status and body to send back.
func (s *ApplicationService) Submit(ctx context.Context, raw map[string]any) (status int, resp models.ApplyResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.Log.Errorw("❌ [APPLY] unexpected panic", "panic", r)
			s.Stats.Record(OutcomeFailed)
			status, resp = failure(errUnknown)
		}
	}()

	if isTruthy(raw[models.FieldCompany]) {
		s.Log.Infow("🍯 [APPLY] honeypot filled, dropping submission")
		s.Stats.Record(OutcomeSpam)
		return fiber.StatusOK, models.ApplyResponse{OK: true}
	}

	input, errs := s.Validator.Validate(raw)
	if errs != nil {
		s.Log.Debugw("[APPLY] validation failed", "fields", errs.Fields())
		s.Stats.Record(OutcomeInvalid)
		return fiber.StatusBadRequest, models.ApplyResponse{Error: errs}
	}

	if !s.Mail.Enabled() || s.Mailer == nil {
		s.Log.Warnw("⚠️ [APPLY] mail delivery not configured, submission accepted without email")
		s.Stats.Record(OutcomeUnconfigured)
		return fiber.StatusOK, models.ApplyResponse{OK: true, Note: NoteUnconfigured}
	}

	html, err := RenderApplicationHTML(input)
	if err != nil {
		s.Log.Errorw("❌ [APPLY] render failed", "error", err)
		s.Stats.Record(OutcomeFailed)
		return failure(err.Error())
	}

	submissionID := s.newID()
	player := names.ExtractName(input)
	msg := mailer.Message{
		From:    s.Mail.From,
		To:      s.Mail.To,
		Subject: Subject(player),
		HTML:    html,
		Tags: map[string]string{
			"submission": submissionID,
			"server":     mailer.TagValue(input.Server),
			"player":     mailer.TagValue(player),
		},
	}

	id, err := s.Mailer.Send(ctx, msg)
	if err == nil {
		s.Log.Infow("✅ [APPLY] application sent", "submission", submissionID, "message_id", id, "player", player)
		s.Stats.Record(OutcomeSent)
		return fiber.StatusOK, models.ApplyResponse{OK: true}
	}

	s.Log.Errorw("❌ [MAILER] send failed", "submission", submissionID, "error", err)
	if !mailer.IsDomainNotVerified(err) {
		s.Stats.Record(OutcomeFailed)
		return failure(mailer.Detail(err))
	}

	fallback := msg
	fallback.From = s.Mail.FallbackFrom
	id, fbErr := s.Mailer.Send(ctx, fallback)
	if fbErr == nil {
		s.Log.Infow("✅ [APPLY] application sent with fallback sender", "submission", submissionID, "message_id", id, "from", fallback.From)
		s.Stats.Record(OutcomeFallback)
		return fiber.StatusOK, models.ApplyResponse{OK: true, Note: fallbackNote(fallback.From)}
	}
	s.Log.Errorw("❌ [MAILER] fallback send failed", "submission", submissionID, "error", fbErr)

	if !s.Production {
		s.Log.Warnw("⚠️ [APPLY] sender domain not verified, email simulated", "submission", submissionID)
		s.Stats.Record(OutcomeSimulated)
		return fiber.StatusOK, models.ApplyResponse{OK: true, Note: NoteSimulated}
	}

	s.Stats.Record(OutcomeFailed)
	return failure(mailer.Detail(err))
}

// ValidateStep checks only the fields of step, for step-gated clients.
func (s *ApplicationService) ValidateStep(raw map[string]any, step models.Step) (int, models.ApplyResponse) {
	errs := s.Validator.ValidateFields(raw, step.Fields())
	if len(errs) > 0 {
		return fiber.StatusBadRequest, models.ApplyResponse{Error: errs}
	}
	return fiber.StatusOK, models.ApplyResponse{OK: true}
}

// Failure is the shape used for unexpected errors outside Submit, e.g. an unreadable body.
func Failure(details string) (int, models.ApplyResponse) {
	return failure(details)
}

func failure(details string) (int, models.ApplyResponse) {
	if details == "" {
		details = errUnknown
	}
	return fiber.StatusBadGateway, models.ApplyResponse{Error: ErrSendFailed, Details: details}
}

func fallbackNote(from string) string {
	addr := from
	if parsed, err := mail.ParseAddress(from); err == nil {
		addr = parsed.Address
	}
	return fmt.Sprintf("Enviado usando %s (dominio no verificado)", addr)
}

// isTruthy treats any non-empty honeypot value as a bot signal.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}
