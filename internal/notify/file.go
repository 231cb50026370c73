// Copyright (c) 2026 Dictionary API. All rights reserved.
// Author: diana.shakirova.dev@gmail.com

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileSender writes each outgoing message to <dir>/<recipient address>.
// A later message to the same address overwrites the earlier file, which is
// the desired behavior for reset links: only the newest one matters.
type FileSender struct {
	dir    string
	from   string
	logger *slog.Logger
}

// NewFileSender creates a FileSender, ensuring the target directory exists.
func NewFileSender(dir, from string, logger *slog.Logger) (*FileSender, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("notify: failed to create mail directory: %w", err)
	}
	return &FileSender{dir: dir, from: from, logger: logger}, nil
}

// SendPasswordReset implements [Sender] by writing the rendered message to disk.
func (sender *FileSender) SendPasswordReset(ctx context.Context, toEmail, resetToken, resetURL string) error {
	message := fmt.Sprintf("From: %s\nTo: %s\nSubject: %s\n\n%s",
		sender.from,
		toEmail,
		passwordResetSubject,
		passwordResetBody(resetToken, resetURL),
	)

	// The file is named after the recipient so tests and dev flows can
	// locate the latest message for an address without parsing headers.
	path := filepath.Join(sender.dir, toEmail)
	if err := os.WriteFile(path, []byte(message), 0o600); err != nil {
		return fmt.Errorf("notify: failed to write mail file: %w", err)
	}

	sender.logger.InfoContext(ctx, "password_reset_mail_written",
		slog.String("to", toEmail),
		slog.String("path", path),
	)

	return nil
}
