package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier is the delivery fallback for environments without an email
// provider configured: it logs the send instead of performing it.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, to, subject, body string, attachment []byte, filename string) error {
	n.logger.Info().
		Str("to", to).
		Str("subject", subject).
		Str("attachment", filename).
		Int("attachment_bytes", len(attachment)).
		Msg("email delivery skipped: no provider configured")
	return nil
}
