package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestTail(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"09771234567", 3, "********567"},
		{"123", 3, "***"},
		{"", 3, ""},
		{"12", 3, "**"},
	}
	for _, tc := range cases {
		if got := Tail(tc.in, tc.n); got != tc.want {
			t.Fatalf("Tail(%q, %d): expected %q, got %q", tc.in, tc.n, tc.want, got)
		}
	}
}

func TestPhoneCheckedNeverLogsFullNumber(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("production", &buf)

	log.PhoneChecked("09771234567", "MPT", false, "some reason")

	out := buf.String()
	if strings.Contains(out, "09771234567") {
		t.Fatalf("full number leaked into log output: %s", out)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output in production, got %q: %v", out, err)
	}
	if entry["number_tail"] != "********567" {
		t.Fatalf("unexpected number_tail: %v", entry["number_tail"])
	}
	if entry["reason"] != "some reason" {
		t.Fatalf("unexpected reason: %v", entry["reason"])
	}
}

func TestWithContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("production", &buf)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	log.WithContext(ctx).Info("hello")

	if !strings.Contains(buf.String(), `"request_id":"req-123"`) {
		t.Fatalf("expected request_id in output, got %s", buf.String())
	}
}

func TestDevelopmentUsesTextHandlerAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("development", &buf)

	log.Debug("visible")

	if !strings.Contains(buf.String(), "msg=visible") {
		t.Fatalf("expected debug text output, got %q", buf.String())
	}
}
