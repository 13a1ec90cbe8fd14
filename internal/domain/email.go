package domain

// Mailer sends an email with HTML and/or plain text bodies.
// Implementations must not block request handling on provider outages;
// callers treat send failures as log-and-continue.
type Mailer interface {
	Send(to, subject, html, text string) error
}
