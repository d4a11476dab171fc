package models

// Email is a transactional message handed to the mail transport.
type Email struct {
	From    string
	To      string
	ReplyTo string
	Subject string

	// HTML is the message body rendered as text/html.
	HTML string
}
