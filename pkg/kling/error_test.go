package kling

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"empty body", &Error{HTTPStatus: 502}, "kling: empty non-JSON response (http 502)"},
		{"short body", &Error{HTTPStatus: 404, Body: "not found"}, "kling: non-JSON response (http 404): not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_TruncatesOnRuneBoundary(t *testing.T) {
	// "é" occupies bytes 511 and 512, straddling the cut.
	body := strings.Repeat("a", maxErrorBody-1) + "é" + strings.Repeat("b", 100)
	e := &Error{HTTPStatus: 502, Body: body}

	msg := e.Error()
	if !utf8.ValidString(msg) {
		t.Errorf("Error() is not valid UTF-8: %q", msg[len(msg)-8:])
	}
	if !strings.HasSuffix(msg, strings.Repeat("a", 10)+"...") {
		t.Errorf("Error() should end before the split rune, got suffix %q", msg[len(msg)-16:])
	}
	if e.Body != body {
		t.Error("Body should keep the full response")
	}
}

func TestError_TruncatesASCII(t *testing.T) {
	e := &Error{HTTPStatus: 500, Body: strings.Repeat("x", 2*maxErrorBody)}
	msg := e.Error()
	if !strings.HasSuffix(msg, strings.Repeat("x", maxErrorBody)+"...") {
		t.Errorf("Error() should keep %d bytes of body", maxErrorBody)
	}
	if strings.Contains(msg, strings.Repeat("x", maxErrorBody+1)) {
		t.Error("Error() kept more than the limit")
	}
}
