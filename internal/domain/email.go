package domain

// Email is one outgoing message handed to the mail queue.
type Email struct {
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	HTMLBody string   `json:"html_body"`
	TextBody string   `json:"text_body,omitempty"`
}
