package notify

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

func TestSend_DefaultTitleAndPreview(t *testing.T) {
	var gotTitle, gotMessage string
	n := NotifierFunc(func(title, message string) error {
		gotTitle, gotMessage = title, message
		return nil
	})

	Send(n, "", "Review complete", zerolog.Nop())

	if gotTitle != "ChatGPT" {
		t.Errorf("Expected default title, got %q", gotTitle)
	}
	if gotMessage != "Review complete" {
		t.Errorf("Expected message to pass through, got %q", gotMessage)
	}
}

func TestSend_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	n := NotifierFunc(func(title, message string) error {
		return errors.New("no notification daemon")
	})

	Send(n, "t", "m", zerolog.New(&buf))

	if !strings.Contains(buf.String(), "no notification daemon") {
		t.Errorf("Expected failure to be logged, got %q", buf.String())
	}
}

func TestSend_NilNotifier(t *testing.T) {
	Send(nil, "t", "m", zerolog.Nop())
}

func TestPreview(t *testing.T) {
	short := "short"
	if Preview(short) != short {
		t.Errorf("Expected short message unchanged")
	}

	long := strings.Repeat("é", 500)
	p := Preview(long)
	if n := utf8.RuneCountInString(p); n != maxPreview {
		t.Errorf("Expected %d runes, got %d", maxPreview, n)
	}
	if !strings.HasSuffix(p, "…") {
		t.Errorf("Expected ellipsis suffix, got %q", p)
	}
}
