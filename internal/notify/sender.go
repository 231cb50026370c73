// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

/*
Package notify delivers transactional email to users.

Two backends are provided:

  - FileSender: writes the rendered message to a local directory, one file
    per recipient. Intended for development and automated tests.
  - SMTPSender: delivers over a real SMTP relay.

Both satisfy the [Sender] interface consumed by the auth service, so the
backend is chosen once at startup via configuration.
*/
package notify

import "context"

// Sender is the delivery contract for account-related email.
type Sender interface {

	/*
		SendPasswordReset delivers a password-reset message.

		Parameters:
		  - context: context.Context
		  - toEmail: Recipient address
		  - resetToken: The raw reset token to embed in the message
		  - resetURL: Fully-qualified link for completing the reset

		Returns:
		  - error: Delivery failures
	*/
	SendPasswordReset(context context.Context, toEmail, resetToken, resetURL string) error
}

// passwordResetSubject is the subject line shared by both backends.
const passwordResetSubject = "Password Reset Request"

// passwordResetBody renders the plain-text body of the reset message.
func passwordResetBody(resetToken, resetURL string) string {
	return "A password reset was requested for your dictionary account.\n\n" +
		"Open the link below to choose a new password:\n\n" +
		resetURL + "\n\n" +
		"Reset token: " + resetToken + "\n\n" +
		"If you did not request this, you can safely ignore this message.\n"
}
