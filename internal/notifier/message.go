package notifier

import (
	"fmt"
	"html"
	"net/url"
)

const confirmationSubject = "Confirm your registration"

// Message is a rendered confirmation email. The http driver sends it as the
// JSON request body.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// newConfirmationMessage renders the confirmation email for code. When
// confirmationURL is set the HTML part links to it with the code attached
// as the "code" query parameter.
func newConfirmationMessage(from, to, code, confirmationURL string) Message {
	text := fmt.Sprintf("confirmation code: %s", code)

	body := fmt.Sprintf("<h1>Thank you for your registration</h1>\n<p>confirmation code: <b>%s</b></p>", html.EscapeString(code))
	if link := confirmationLink(confirmationURL, code); link != "" {
		body += fmt.Sprintf("\n<p>To finish registration please follow the link below:\n<a href=\"%s\">complete registration</a></p>", html.EscapeString(link))
	}

	return Message{
		From:    from,
		To:      to,
		Subject: confirmationSubject,
		Text:    text,
		HTML:    body,
	}
}

// confirmationLink appends code to base as the "code" query parameter.
// It returns "" when base is empty or unparsable.
func confirmationLink(base, code string) string {
	if base == "" {
		return ""
	}

	u, err := url.Parse(base)
	if err != nil {
		return ""
	}

	q := u.Query()
	q.Set("code", code)
	u.RawQuery = q.Encode()

	return u.String()
}
