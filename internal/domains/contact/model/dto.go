package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// REQUEST DTO
// =====================================================

// SubmitRequest is a contact form submission. It is transient: created
// on submit, validated, relayed, discarded. Nothing is persisted.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// User-facing validation messages. These are surfaced verbatim next to
// the form fields, so wording changes here are frontend-visible.
const (
	MsgNameTooShort    = "Name must be at least 2 characters"
	MsgNameTooLong     = "Name too long"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgMessageTooShort = "Message must be at least 10 characters"
	MsgMessageTooLong  = "Message too long"
)

// Validate enforces the contact form contract:
//   - name: 2-100 characters
//   - email: well-formed address
//   - message: 10-1000 characters
//
// This is the single rule set. The interactive client pre-check mirrors
// it; this call is the authoritative server-side check against clients
// that bypass the browser.
func (r *SubmitRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error(MsgNameTooShort),
			validation.RuneLength(2, 0).Error(MsgNameTooShort),
			validation.RuneLength(0, 100).Error(MsgNameTooLong),
		),
		validation.Field(&r.Email,
			validation.Required.Error(MsgEmailInvalid),
			is.Email.Error(MsgEmailInvalid),
		),
		validation.Field(&r.Message,
			validation.Required.Error(MsgMessageTooShort),
			validation.RuneLength(10, 0).Error(MsgMessageTooShort),
			validation.RuneLength(0, 1000).Error(MsgMessageTooLong),
		),
	)
}

// =====================================================
// RESULT DTO
// =====================================================

// Result is what the form client consumes to update its UI state. On
// success the form clears; on failure the entered values are preserved.
type Result struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError pairs a form field with its validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	MsgSubmitSuccess = "Thanks for your message! I'll get back to you soon."
	MsgSubmitFailure = "Something went wrong. Please try again later."
)

// fieldOrder fixes which error is reported first when several fields
// fail. ozzo returns a map, so without this the "first" error would be
// nondeterministic.
var fieldOrder = []string{"name", "email", "message"}

// FieldErrorsFrom flattens an ozzo validation error into ordered
// field/message pairs. A non-validation error yields nil.
func FieldErrorsFrom(err error) []FieldError {
	ves, ok := err.(validation.Errors)
	if !ok {
		return nil
	}

	var out []FieldError
	for _, field := range fieldOrder {
		if fieldErr, found := ves[field]; found && fieldErr != nil {
			out = append(out, FieldError{Field: field, Message: fieldErr.Error()})
		}
	}
	return out
}
