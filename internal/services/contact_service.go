package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ldbiro/ldbiro-web/config"
	"github.com/ldbiro/ldbiro-web/internal/models"
	"github.com/ldbiro/ldbiro-web/pkg/logger"
	"github.com/ldbiro/ldbiro-web/pkg/metrics"
	"github.com/ldbiro/ldbiro-web/pkg/sanitize"
)

// Fixed Serbian responses of the contact endpoint. The vocabulary does not
// vary with the locale that rendered the form.
const (
	MsgNameRequired         = "Ime i prezime su obavezni"
	MsgNameTooShort         = "Ime mora imati najmanje 2 karaktera"
	MsgEmailRequired        = "Email adresa je obavezna"
	MsgEmailInvalid         = "Molimo unesite valjan email"
	MsgBusinessTypeRequired = "Molimo izaberite tip biznisa"
	MsgMessageRequired      = "Poruka je obavezna"
	MsgMessageTooShort      = "Poruka mora imati najmanje 10 karaktera"
	MsgServiceUnavailable   = "Email servis trenutno nije dostupan. Molimo kontaktirajte nas direktno."
	MsgSendFailed           = "Greška pri slanju poruke. Molimo pokušajte ponovo."
	MsgSuccess              = "Poruka je uspešno poslana!"
)

// SubmissionError carries the HTTP status a rejected submission maps to.
type SubmissionError struct {
	Status  int
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// AsSubmissionError extracts a *SubmissionError from an error chain.
func AsSubmissionError(err error) (*SubmissionError, bool) {
	var subErr *SubmissionError
	ok := errors.As(err, &subErr)
	return subErr, ok
}

var validate = validator.New()

// ContactService runs the contact submission pipeline: validation of the
// raw input, sanitization, configuration check and synchronous dispatch to
// the email collaborator. Submissions are never stored.
type ContactService struct {
	cfg    *config.Config
	sender EmailSender
}

// NewContactService creates a new contact service instance
func NewContactService(cfg *config.Config, sender EmailSender) *ContactService {
	return &ContactService{
		cfg:    cfg,
		sender: sender,
	}
}

// SubmitContactForm validates, sanitizes and forwards one submission.
// Expected rejections come back as *SubmissionError; any other error is an
// internal fault the handler maps to the generic retry message.
func (s *ContactService) SubmitContactForm(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	// Validation runs on the raw, un-sanitized input so that escaping can
	// never mask an empty or malformed field.
	if err := validateRaw(req); err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("rejected_validation").Inc()
		return nil, err
	}

	fields := emailFields{
		Name:         sanitize.HTML(strings.TrimSpace(req.Name)),
		EmailDisplay: sanitize.HTML(strings.TrimSpace(req.Email)),
		BusinessType: sanitize.HTML(strings.TrimSpace(req.BusinessType)),
		Message:      sanitize.HTML(strings.TrimSpace(req.Message)),
		// The reply-to slot is header-injection sensitive and must not be
		// entity-escaped, so it gets its own derivation from the raw value.
		ReplyTo: sanitize.Email(req.Email),
	}

	if !s.cfg.ContactConfigured() {
		metrics.ContactFormSubmissions.WithLabelValues("missing_config").Inc()
		logger.Error("Contact email service not configured",
			zap.Bool("api_key_set", s.cfg.Contact.APIKey != ""),
			zap.Bool("to_address_set", s.cfg.Contact.ToAddress != ""))
		return nil, &SubmissionError{Status: http.StatusInternalServerError, Message: MsgServiceUnavailable}
	}

	email := buildContactEmail(s.cfg.Contact.FromAddress, s.cfg.Contact.ToAddress, fields)

	if _, err := s.sender.SendEmail(ctx, email); err != nil {
		metrics.ContactFormSubmissions.WithLabelValues("error").Inc()
		logger.Error("Failed to send contact email", zap.Error(err))
		return nil, &SubmissionError{Status: http.StatusInternalServerError, Message: MsgSendFailed}
	}

	metrics.ContactFormSubmissions.WithLabelValues("success").Inc()
	logger.Info("Contact form submission forwarded")

	return &models.ContactResponse{
		Success: true,
		Message: MsgSuccess,
	}, nil
}

func validateRaw(req *models.ContactRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &SubmissionError{Status: http.StatusBadRequest, Message: MsgNameRequired}
	}
	if strings.TrimSpace(req.Email) == "" {
		return &SubmissionError{Status: http.StatusBadRequest, Message: MsgEmailRequired}
	}
	if strings.TrimSpace(req.BusinessType) == "" {
		return &SubmissionError{Status: http.StatusBadRequest, Message: MsgBusinessTypeRequired}
	}
	if strings.TrimSpace(req.Message) == "" {
		return &SubmissionError{Status: http.StatusBadRequest, Message: MsgMessageRequired}
	}
	// Header-injection defense: CR/LF in the address is rejected outright,
	// before the structural check.
	if strings.ContainsAny(req.Email, "\r\n") {
		return &SubmissionError{Status: http.StatusBadRequest, Message: MsgEmailInvalid}
	}
	if err := validate.Var(strings.TrimSpace(req.Email), "email"); err != nil {
		return &SubmissionError{Status: http.StatusBadRequest, Message: MsgEmailInvalid}
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Name)) < 2 {
		return &SubmissionError{Status: http.StatusBadRequest, Message: MsgNameTooShort}
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Message)) < 10 {
		return &SubmissionError{Status: http.StatusBadRequest, Message: MsgMessageTooShort}
	}
	return nil
}
