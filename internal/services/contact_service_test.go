package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ldbiro/ldbiro-web/config"
	"github.com/ldbiro/ldbiro-web/internal/models"
	"github.com/ldbiro/ldbiro-web/internal/services"
	"github.com/ldbiro/ldbiro-web/pkg/logger"
	"github.com/ldbiro/ldbiro-web/pkg/resend"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

// MockEmailSender implements services.EmailSender for testing
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendEmail(ctx context.Context, email *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func configuredCfg() *config.Config {
	return &config.Config{
		Contact: config.ContactConfig{
			APIKey:      "re_test_key",
			ToAddress:   "office@ldbiro.rs",
			FromAddress: "LD Biro Kontakt <kontakt@resend.dev>",
		},
	}
}

func validRequest() *models.ContactRequest {
	return &models.ContactRequest{
		Name:         "Ana Petrović",
		Email:        "ana@example.com",
		BusinessType: "Preduzetnik",
		Message:      "Zanima me cena vaših usluga.",
	}
}

func TestSubmitContactForm_Success(t *testing.T) {
	sender := new(MockEmailSender)
	service := services.NewContactService(configuredCfg(), sender)

	var sent *resend.SendEmailRequest
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(email *resend.SendEmailRequest) bool {
		sent = email
		return true
	})).Return(&resend.SendEmailResponse{ID: "msg_123"}, nil).Once()

	resp, err := service.SubmitContactForm(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, services.MsgSuccess, resp.Message)

	sender.AssertExpectations(t)
	assert.Equal(t, "LD Biro Kontakt <kontakt@resend.dev>", sent.From)
	assert.Equal(t, []string{"office@ldbiro.rs"}, sent.To)
	assert.Equal(t, "ana@example.com", sent.ReplyTo)
	assert.Contains(t, sent.Subject, "Ana Petrović")
	assert.Contains(t, sent.Subject, "Preduzetnik")
	assert.Contains(t, sent.HTML, "Zanima me cena vaših usluga.")
	assert.Contains(t, sent.Text, "Zanima me cena vaših usluga.")
	assert.Equal(t, "1", sent.Headers["X-Priority"])
	assert.Equal(t, "OOF, DR, RN, NRN, AutoReply", sent.Headers["X-Auto-Response-Suppress"])
}

func TestSubmitContactForm_RequiredFieldsRejectedIndependently(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.ContactRequest)
		wantErrMsg string
	}{
		{"blank_name", func(r *models.ContactRequest) { r.Name = "   " }, services.MsgNameRequired},
		{"blank_email", func(r *models.ContactRequest) { r.Email = "" }, services.MsgEmailRequired},
		{"blank_business_type", func(r *models.ContactRequest) { r.BusinessType = " " }, services.MsgBusinessTypeRequired},
		{"blank_message", func(r *models.ContactRequest) { r.Message = "\n\t" }, services.MsgMessageRequired},
		{"short_name", func(r *models.ContactRequest) { r.Name = "A" }, services.MsgNameTooShort},
		{"short_message", func(r *models.ContactRequest) { r.Message = "kratko" }, services.MsgMessageTooShort},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(MockEmailSender)
			service := services.NewContactService(configuredCfg(), sender)

			req := validRequest()
			tc.mutate(req)

			resp, err := service.SubmitContactForm(context.Background(), req)
			assert.Nil(t, resp)

			subErr, ok := services.AsSubmissionError(err)
			assert.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, subErr.Status)
			assert.Equal(t, tc.wantErrMsg, subErr.Message)

			sender.AssertNotCalled(t, "SendEmail")
		})
	}
}

func TestSubmitContactForm_MalformedEmailRejected(t *testing.T) {
	sender := new(MockEmailSender)
	service := services.NewContactService(configuredCfg(), sender)

	req := validRequest()
	req.Email = "not-an-email"

	resp, err := service.SubmitContactForm(context.Background(), req)
	assert.Nil(t, resp)

	subErr, ok := services.AsSubmissionError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, subErr.Status)
	assert.Equal(t, services.MsgEmailInvalid, subErr.Message)

	sender.AssertNotCalled(t, "SendEmail")
}

func TestSubmitContactForm_HeaderInjectionRejected(t *testing.T) {
	sender := new(MockEmailSender)
	service := services.NewContactService(configuredCfg(), sender)

	req := validRequest()
	req.Email = "a@b.com\r\nBcc: x@y.com"

	resp, err := service.SubmitContactForm(context.Background(), req)
	assert.Nil(t, resp)

	subErr, ok := services.AsSubmissionError(err)
	assert.True(t, ok)
	assert.Equal(t, services.MsgEmailInvalid, subErr.Message)

	sender.AssertNotCalled(t, "SendEmail")
}

func TestSubmitContactForm_SanitizesMarkupAndDerivesReplyTo(t *testing.T) {
	sender := new(MockEmailSender)
	service := services.NewContactService(configuredCfg(), sender)

	var sent *resend.SendEmailRequest
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(email *resend.SendEmailRequest) bool {
		sent = email
		return true
	})).Return(&resend.SendEmailResponse{ID: "msg_123"}, nil).Once()

	req := validRequest()
	req.Name = "<script>alert(1)</script>"
	req.Email = " Ana.Petrovic@Example.COM "

	resp, err := service.SubmitContactForm(context.Background(), req)
	assert.NoError(t, err)
	assert.True(t, resp.Success)

	// Display copies are entity-escaped; no raw markup reaches the email.
	assert.NotContains(t, sent.Subject, "<script>")
	assert.NotContains(t, sent.HTML, "<script>")
	assert.Contains(t, sent.HTML, "&lt;script&gt;")
	// The reply-to derivation lower-cases and trims without escaping.
	assert.Equal(t, "ana.petrovic@example.com", sent.ReplyTo)
}

func TestSubmitContactForm_MissingConfigRejectsBeforeDispatch(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"missing_api_key", &config.Config{Contact: config.ContactConfig{ToAddress: "office@ldbiro.rs", FromAddress: "x <x@resend.dev>"}}},
		{"missing_to_address", &config.Config{Contact: config.ContactConfig{APIKey: "re_test", FromAddress: "x <x@resend.dev>"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(MockEmailSender)
			service := services.NewContactService(tc.cfg, sender)

			resp, err := service.SubmitContactForm(context.Background(), validRequest())
			assert.Nil(t, resp)

			subErr, ok := services.AsSubmissionError(err)
			assert.True(t, ok)
			assert.Equal(t, http.StatusInternalServerError, subErr.Status)
			assert.Equal(t, services.MsgServiceUnavailable, subErr.Message)

			sender.AssertNotCalled(t, "SendEmail")
		})
	}
}

func TestSubmitContactForm_SendFailureMapsToGenericError(t *testing.T) {
	sender := new(MockEmailSender)
	service := services.NewContactService(configuredCfg(), sender)

	sender.On("SendEmail", mock.Anything, mock.Anything).
		Return(nil, errors.New("resend: validation_error (422): invalid from")).Once()

	resp, err := service.SubmitContactForm(context.Background(), validRequest())
	assert.Nil(t, resp)

	subErr, ok := services.AsSubmissionError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, subErr.Status)
	assert.Equal(t, services.MsgSendFailed, subErr.Message)

	sender.AssertExpectations(t)
}
