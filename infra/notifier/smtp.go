// Package notifier implements outbound email delivery for account history
// reports.
package notifier

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/amirasaad/bank/config"
)

// SMTPNotifier sends mail through a configured SMTP relay. It implements
// account.Notifier: delivery is reported as a boolean and never as an error.
type SMTPNotifier struct {
	cfg    config.SMTP
	logger *slog.Logger
}

// New creates an SMTP notifier from config.
func New(cfg config.SMTP, logger *slog.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, logger: logger}
}

// Send delivers one message. A disabled or unconfigured notifier always
// reports failure, matching the contract that callers only ever see a
// boolean.
func (n *SMTPNotifier) Send(subject, body, recipient string) bool {
	if !n.cfg.Enabled || n.cfg.Host == "" {
		n.logger.Warn("SMTP notifier disabled, dropping message", "recipient", recipient, "subject", subject)
		return false
	}

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.cfg.From, recipient, subject, body)

	var auth smtp.Auth
	if n.cfg.User != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Pass, n.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{recipient}, []byte(msg)); err != nil {
		n.logger.Error("Failed to send history email", "recipient", recipient, "error", err)
		return false
	}
	n.logger.Info("History email sent", "recipient", recipient, "subject", subject)
	return true
}
