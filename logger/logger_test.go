package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{" DEBUG ", zerolog.DebugLevel},
		{"warning", zerolog.WarnLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestMask(t *testing.T) {
	if got := Mask("short"); got != "[REDACTED]" {
		t.Errorf("Expected short secret to be fully redacted, got %q", got)
	}
	if got := Mask("sk-abcdefghijklmnop"); got != "[REDACTED]...mnop" {
		t.Errorf("Expected last four characters to be kept, got %q", got)
	}
}

func TestRedactingWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewRedactingWriter(&buf, "sk-secret-key-1234", "")

	n, err := w.Write([]byte("Authorization: Bearer sk-secret-key-1234\n"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != len("Authorization: Bearer sk-secret-key-1234\n") {
		t.Errorf("Expected full length to be reported, got %d", n)
	}
	if strings.Contains(buf.String(), "sk-secret-key-1234") {
		t.Errorf("Expected secret to be redacted, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[REDACTED]...1234") {
		t.Errorf("Expected masked secret in output, got %q", buf.String())
	}
}

func TestNewRedactingWriter_NoSecrets(t *testing.T) {
	var buf bytes.Buffer
	if w := NewRedactingWriter(&buf, "", ""); w != &buf {
		t.Error("Expected the original writer when no secrets are configured")
	}
}

func TestRedactingWriter_JSONEscapedSecret(t *testing.T) {
	secret := `sk-a"b\c-123456`
	var buf bytes.Buffer
	log := zerolog.New(NewRedactingWriter(&buf, secret))

	log.Info().Str("apiKey", secret).Msg("configured")

	out := buf.String()
	if strings.Contains(out, secret) || strings.Contains(out, `sk-a\"b\\c-123456`) {
		t.Errorf("Expected escaped secret to be redacted, got %q", out)
	}
	if !strings.Contains(out, "[REDACTED]...3456") {
		t.Errorf("Expected masked secret, got %q", out)
	}
	if !json.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Errorf("Expected valid JSON after redaction, got %q", out)
	}
}

func TestInitWithOptions_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	log, err := InitWithOptions(Options{
		Level:   "debug",
		Secrets: []string{"sk-live-0123456789"},
		Out:     &buf,
	})
	if err != nil {
		t.Fatalf("InitWithOptions failed: %v", err)
	}

	log.Info().Str("apiKey", "sk-live-0123456789").Msg("configured")

	out := buf.String()
	if strings.Contains(out, "sk-live-0123456789") {
		t.Errorf("Expected API key to be redacted, got %q", out)
	}
	if !strings.Contains(out, "configured") {
		t.Errorf("Expected message in output, got %q", out)
	}
}

func TestInitWithOptions_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := InitWithOptions(Options{Level: "warn", Out: &buf})
	if err != nil {
		t.Fatalf("InitWithOptions failed: %v", err)
	}

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("Expected info message to be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("Expected warn message to be written")
	}
}

func TestInitWithOptions_FileAndPrettyExclusive(t *testing.T) {
	_, err := InitWithOptions(Options{
		LogFile: filepath.Join(t.TempDir(), "chatgpt.log"),
		Pretty:  true,
	})
	if err == nil {
		t.Error("Expected error when both logfile and pretty are set")
	}
}

func TestInitWithOptions_LogFileClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatgpt.log")
	log, err := InitWithOptions(Options{LogFile: path, Secrets: []string{"sk-file-secret-4242"}})
	if err != nil {
		t.Fatalf("InitWithOptions failed: %v", err)
	}

	log.Info().Str("apiKey", "sk-file-secret-4242").Msg("written to file")
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := Close(); err != nil {
		t.Errorf("Expected second Close to be a no-op, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("Expected log line in file, got %q", data)
	}
	if strings.Contains(string(data), "sk-file-secret-4242") {
		t.Errorf("Expected secret to be redacted in file, got %q", data)
	}
}
