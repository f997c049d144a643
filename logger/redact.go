package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

const redactedMarker = "[REDACTED]"

// RedactingWriter rewrites every chunk written through it, replacing known
// secrets with their masked form. zerolog issues one Write per event, so a
// secret never straddles two writes.
type RedactingWriter struct {
	w        io.Writer
	replacer *strings.Replacer
}

// NewRedactingWriter wraps w. Empty secrets are skipped; if none remain, w is
// returned unchanged. A secret is also matched in its JSON-escaped form, which
// is how it appears inside zerolog's encoded string fields.
func NewRedactingWriter(w io.Writer, secrets ...string) io.Writer {
	pairs := make([]string, 0, len(secrets)*4)
	for _, s := range secrets {
		if s == "" {
			continue
		}
		if escaped := jsonEscape(s); escaped != s {
			pairs = append(pairs, escaped, jsonEscape(Mask(s)))
		}
		pairs = append(pairs, s, Mask(s))
	}
	if len(pairs) == 0 {
		return w
	}
	return &RedactingWriter{
		w:        w,
		replacer: strings.NewReplacer(pairs...),
	}
}

// Write implements io.Writer. It reports len(p) on success so callers never
// see a short write caused by the replacement changing the length.
func (r *RedactingWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(r.w, r.replacer.Replace(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Mask hides a secret, keeping the last four characters of long values so
// operators can still tell keys apart.
func Mask(secret string) string {
	if len(secret) <= 8 {
		return redactedMarker
	}
	return redactedMarker + "..." + secret[len(secret)-4:]
}

// jsonEscape returns s as it appears between the quotes of a JSON string.
func jsonEscape(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return s
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}
