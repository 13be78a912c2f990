package models

// ContactRequest represents a contact form submission. Binding tags catch
// structurally missing fields at decode time; the submission pipeline
// re-checks the raw values (trimming, header-injection characters) with
// field-specific messages before anything is forwarded.
type ContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	BusinessType string `json:"businessType" binding:"required"`
	Message      string `json:"message" binding:"required"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
