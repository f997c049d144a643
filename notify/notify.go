// Package notify sends best-effort desktop notifications.
package notify

import (
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

const defaultTitle = "ChatGPT"

// maxPreview bounds the notification body.
const maxPreview = 200

// Notifier delivers a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, message string) error

// Notify implements Notifier.
func (f NotifierFunc) Notify(title, message string) error {
	return f(title, message)
}

// Desktop sends notifications through the platform notification center.
type Desktop struct{}

// Notify implements Notifier.
func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Send notifies with a preview of message. Failures are logged and otherwise ignored.
func Send(n Notifier, title, message string, logger zerolog.Logger) {
	if n == nil {
		return
	}
	if title == "" {
		title = defaultTitle
	}
	if err := n.Notify(title, Preview(message)); err != nil {
		// Common causes: notification permissions not granted, or no notification daemon
		logger.Warn().Err(err).Msg("Failed to send desktop notification")
		return
	}
	logger.Debug().Msg("Desktop notification sent")
}

// Preview shortens message to at most maxPreview runes.
func Preview(message string) string {
	runes := []rune(message)
	if len(runes) <= maxPreview {
		return message
	}
	return string(runes[:maxPreview-1]) + "…"
}
