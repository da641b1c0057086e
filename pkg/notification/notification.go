// Package notification dispatches out-of-band notifications (currently the
// mail channel). User-visible in-request notices are session flashes, not
// notifications; this package is for messages that leave the process.
//
// Define a notification:
//
//	type WelcomeNotification struct{ Name string }
//	func (n *WelcomeNotification) Via() []string { return []string{"mail"} }
//	func (n *WelcomeNotification) ToMail() notification.MailData {
//	    return notification.MailData{Subject: "Welcome!", Body: "<h1>Hi " + n.Name + "</h1>"}
//	}
//
// Send:
//
//	notification.SendAsync("user@example.com", &WelcomeNotification{Name: name})
package notification

import (
	"fmt"

	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/mail"
)

// MailData carries the data needed to send an email notification.
type MailData struct {
	To      string // overrides the notifiable address if set
	Subject string
	Body    string // HTML
}

// Notification is the interface every notification must satisfy.
type Notification interface {
	// Via returns the list of channel names. Only "mail" is wired today.
	Via() []string
}

// Mailable must be implemented to support the mail channel.
type Mailable interface {
	ToMail() MailData
}

// Send dispatches the notification through all channels returned by Via().
// address is the default recipient for the mail channel.
func Send(address string, n Notification) []error {
	var errs []error
	for _, channel := range n.Via() {
		if err := dispatch(address, channel, n); err != nil {
			logger.Error("notification: channel failed", "channel", channel, "error", err)
			errs = append(errs, err)
		}
	}
	return errs
}

// SendAsync dispatches the notification in a background goroutine.
// Delivery failures are logged, never surfaced to the request.
func SendAsync(address string, n Notification) {
	go func() {
		_ = Send(address, n)
	}()
}

func dispatch(address, channel string, n Notification) error {
	switch channel {
	case "mail":
		m, ok := n.(Mailable)
		if !ok {
			return fmt.Errorf("notification: %T does not implement Mailable", n)
		}
		d := m.ToMail()
		to := d.To
		if to == "" {
			to = address
		}
		return mail.To(to).Subject(d.Subject).Body(d.Body).Send()

	default:
		return fmt.Errorf("notification: unknown channel %q", channel)
	}
}
