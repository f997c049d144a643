// Package clipboard reads text from the system clipboard on a best-effort basis.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"
	"github.com/rs/zerolog"
)

// ErrUnavailable is returned when no clipboard text could be obtained.
var ErrUnavailable = errors.New("clipboard unavailable")

// Reader reads the current clipboard text.
type Reader interface {
	ReadText(ctx context.Context) (string, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(ctx context.Context) (string, error)

// ReadText implements Reader.
func (f ReaderFunc) ReadText(ctx context.Context) (string, error) {
	return f(ctx)
}

// System reads the OS clipboard (pbpaste, xclip/xsel/wl-paste or the Windows API).
type System struct{}

// ReadText implements Reader.
func (System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if sysclip.Unsupported {
		return "", fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	text, err := sysclip.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return text, nil
}

// ReadText returns the clipboard text from r, or "" if it cannot be read.
// Failures are logged and never returned.
func ReadText(ctx context.Context, r Reader, logger zerolog.Logger) string {
	if r == nil {
		return ""
	}
	text, err := r.ReadText(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Clipboard does not contain text")
		return ""
	}
	logger.Debug().Int("length", len(text)).Str("text", text).Msg("Got clipboard text")
	return text
}
