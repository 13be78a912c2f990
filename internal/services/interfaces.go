package services

import (
	"context"

	"github.com/ldbiro/ldbiro-web/internal/models"
	"github.com/ldbiro/ldbiro-web/pkg/resend"
)

// ContactServiceInterface defines the interface for contact form operations
type ContactServiceInterface interface {
	SubmitContactForm(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error)
}

// EmailSender dispatches a single transactional email. Implemented by the
// Resend client; mocked in tests.
type EmailSender interface {
	SendEmail(ctx context.Context, email *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}
