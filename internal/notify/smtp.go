// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// SMTPSender delivers messages over an authenticated SMTP relay.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
	logger   *slog.Logger
}

// NewSMTPSender creates an SMTPSender for the given relay.
func NewSMTPSender(host, port, username, password, from string, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		logger:   logger,
	}
}

// SendPasswordReset implements [Sender] by delivering the message via SMTP.
func (sender *SMTPSender) SendPasswordReset(ctx context.Context, toEmail, resetToken, resetURL string) error {
	message := email.NewEmail()
	message.From = sender.from
	message.To = []string{toEmail}
	message.Subject = passwordResetSubject
	message.Text = []byte(passwordResetBody(resetToken, resetURL))

	addr := fmt.Sprintf("%s:%s", sender.host, sender.port)
	auth := smtp.PlainAuth("", sender.username, sender.password, sender.host)

	if err := message.Send(addr, auth); err != nil {
		sender.logger.ErrorContext(ctx, "password_reset_mail_failed",
			slog.String("to", toEmail),
			slog.Any("error", err),
		)
		return fmt.Errorf("notify: failed to send reset email: %w", err)
	}

	sender.logger.InfoContext(ctx, "password_reset_mail_sent", slog.String("to", toEmail))
	return nil
}
