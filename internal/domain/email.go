package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SignupConfirmationEmailData holds data for the signup confirmation email.
type SignupConfirmationEmailData struct {
	Email        string
	ActivityName string
	Schedule     string
}

// UnregisterConfirmationEmailData holds data for the unregister confirmation email.
type UnregisterConfirmationEmailData struct {
	Email        string
	ActivityName string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSignupConfirmation(ctx context.Context, data *SignupConfirmationEmailData) error
	SendUnregisterConfirmation(ctx context.Context, data *UnregisterConfirmationEmailData) error
}
