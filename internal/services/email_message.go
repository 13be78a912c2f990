package services

import (
	"fmt"
	"time"

	"github.com/ldbiro/ldbiro-web/pkg/resend"
)

// emailFields are the sanitized values interpolated into the outbound
// email. All display fields are already HTML-escaped; ReplyTo is the
// control-character-stripped, lower-cased address.
type emailFields struct {
	Name         string
	EmailDisplay string
	BusinessType string
	Message      string
	ReplyTo      string
}

// belgradeTZ renders the submission timestamp in the firm's local time.
var belgradeTZ = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Belgrade")
	if err != nil {
		return time.UTC
	}
	return loc
}()

const emailHTMLFormat = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Nova poruka - LD Biro</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #1e40af; color: white; padding: 30px; border-radius: 10px; margin-bottom: 30px;">
    <h1 style="margin: 0; font-size: 24px;">Nova poruka sa sajta</h1>
    <p style="margin: 10px 0 0 0;">LD Biro - Kontakt forma</p>
  </div>
  <div style="background: #f8fafc; padding: 25px; border-radius: 8px;">
    <h2 style="color: #1e40af; margin-top: 0;">Detalji kontakta</h2>
    <table style="width: 100%%; border-collapse: collapse;">
      <tr><td style="padding: 8px 0; font-weight: bold; width: 30%%;">Ime:</td><td style="padding: 8px 0;">%s</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Email:</td><td style="padding: 8px 0;"><a href="mailto:%s">%s</a></td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold;">Tip biznisa:</td><td style="padding: 8px 0;">%s</td></tr>
    </table>
  </div>
  <div style="background: white; padding: 25px; border-radius: 8px; border: 1px solid #e5e7eb; margin-top: 20px;">
    <h3 style="color: #1e40af; margin-top: 0;">Poruka:</h3>
    <p style="margin: 0; white-space: pre-wrap;">%s</p>
  </div>
  <div style="margin-top: 30px; padding: 20px; background: #f1f5f9; border-radius: 8px; text-align: center;">
    <p style="margin: 0; color: #64748b; font-size: 14px;">Možete direktno odgovoriti na ovaj email</p>
    <p style="margin: 5px 0 0 0; color: #64748b; font-size: 12px;">Vreme slanja: %s</p>
  </div>
</body>
</html>`

const emailTextFormat = `NOVA PORUKA SA LD BIRO SAJTA

Ime: %s
Email: %s
Tip biznisa: %s

Poruka:
%s

---
Vreme slanja: %s
Možete direktno odgovoriti na ovaj email.`

// buildContactEmail assembles the single outbound email for a submission:
// fixed sender identity, configured recipient, sanitized reply-to, both
// body renderings and the priority / auto-responder-suppression headers.
func buildContactEmail(from, to string, f emailFields) *resend.SendEmailRequest {
	businessType := f.BusinessType
	if businessType == "" {
		businessType = "Klijent"
	}
	sentAt := time.Now().In(belgradeTZ).Format("02.01.2006. 15:04")

	return &resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		ReplyTo: f.ReplyTo,
		Subject: fmt.Sprintf("NOVA PORUKA: %s - %s", f.Name, businessType),
		HTML:    fmt.Sprintf(emailHTMLFormat, f.Name, f.ReplyTo, f.EmailDisplay, businessType, f.Message, sentAt),
		Text:    fmt.Sprintf(emailTextFormat, f.Name, f.EmailDisplay, businessType, f.Message, sentAt),
		Headers: map[string]string{
			"X-Priority":               "1",
			"X-MSMail-Priority":        "High",
			"Importance":               "high",
			"X-Mailer":                 "LD Biro Contact Form",
			"X-Auto-Response-Suppress": "OOF, DR, RN, NRN, AutoReply",
		},
	}
}
