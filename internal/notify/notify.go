// Package notify delivers fired reminders out of band: a desktop toast
// always, plus a WhatsApp message when Twilio is configured.
package notify

import (
	"log"

	"github.com/gen2brain/beeep"
)

// Notifier fans a reminder out to the configured channels. Delivery
// failures are logged, never returned: a missed toast must not disturb
// the scheduler.
type Notifier struct {
	whatsapp *WhatsAppSender
	to       string
	logger   *log.Logger
}

// New creates a notifier. whatsapp and to may be zero values, in which
// case only desktop notifications are sent.
func New(whatsapp *WhatsAppSender, to string, logger *log.Logger) *Notifier {
	return &Notifier{whatsapp: whatsapp, to: to, logger: logger}
}

// Notify shows a desktop notification and, when configured, forwards the
// reminder over WhatsApp.
func (n *Notifier) Notify(title, body string) {
	if err := beeep.Notify(title, body, ""); err != nil {
		n.logger.Printf("notify: desktop notification: %v", err)
	}

	if n.whatsapp == nil || n.to == "" {
		return
	}
	if err := n.whatsapp.Send(n.to, title+": "+body); err != nil {
		n.logger.Printf("notify: whatsapp: %v", err)
	}
}
