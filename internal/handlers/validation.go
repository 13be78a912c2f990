package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/ldbiro/ldbiro-web/internal/services"
)

// msgInvalidRequest covers undecodable bodies and anything the field
// mapping below does not recognize.
const msgInvalidRequest = "Neispravan zahtev"

// ValidationMessage maps a binding error to the fixed Serbian message of
// the first failing field. Field-specific wording matches the pipeline's
// own raw-input validation so the caller sees one vocabulary regardless of
// which layer rejected.
func ValidationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return msgInvalidRequest
	}

	fe := vErrs[0]
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "min" {
			return services.MsgNameTooShort
		}
		return services.MsgNameRequired
	case "Email":
		if fe.Tag() == "required" {
			return services.MsgEmailRequired
		}
		return services.MsgEmailInvalid
	case "BusinessType":
		return services.MsgBusinessTypeRequired
	case "Message":
		if fe.Tag() == "min" {
			return services.MsgMessageTooShort
		}
		return services.MsgMessageRequired
	}
	return msgInvalidRequest
}
