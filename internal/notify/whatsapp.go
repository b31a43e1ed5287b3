package notify

import (
	"fmt"
	"strings"

	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// WhatsAppSender sends messages through Twilio's WhatsApp API.
type WhatsAppSender struct {
	client *twilio.RestClient
	from   string
}

// NewWhatsAppSender returns a sender, or nil when credentials are missing
// so callers can treat the channel as disabled.
func NewWhatsAppSender(accountSID, authToken, from string) *WhatsAppSender {
	if accountSID == "" || authToken == "" || from == "" {
		return nil
	}
	return &WhatsAppSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{Username: accountSID, Password: authToken}),
		from:   from,
	}
}

// Send delivers body to the given WhatsApp number.
func (s *WhatsAppSender) Send(to, body string) error {
	recipient := normalizeWhatsAppAddress(to)
	if recipient == "" {
		return fmt.Errorf("recipient number missing or invalid")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom(normalizeWhatsAppAddress(s.from))
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send message: %w", err)
	}
	return nil
}

func normalizeWhatsAppAddress(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "whatsapp:") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "+") {
		return "whatsapp:" + trimmed
	}
	return "whatsapp:+" + trimmed
}
