package service

import (
	"context"
	"testing"

	"esim_portal_backend/platform/logger"
)

func TestValidateEnrichesValidNumbers(t *testing.T) {
	svc := New(logger.Discard())
	raw := "(09) 771-234-567"

	got := svc.Validate(context.Background(), &raw)

	if !got.Valid || got.Cleaned != "09771234567" || got.Formatted != "09-771-234-567" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.Carrier != "MPT" {
		t.Fatalf("expected MPT, got %q", got.Carrier)
	}
	if got.E164 != "+959771234567" {
		t.Fatalf("expected +959771234567, got %q", got.E164)
	}
}

func TestValidateLeavesInvalidNumbersBare(t *testing.T) {
	svc := New(logger.Discard())

	got := svc.Validate(context.Background(), nil)

	if got.Valid || got.Error != "Phone number is required" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.Carrier != "" || got.E164 != "" {
		t.Fatalf("invalid result must not be enriched: %+v", got)
	}
}

func TestFormatAndDetectCarrier(t *testing.T) {
	svc := New(logger.Discard())

	if got := svc.Format("097712345").Formatted; got != "09-771-2345" {
		t.Fatalf("expected 09-771-2345, got %q", got)
	}
	if got := svc.DetectCarrier("00000000000").Carrier; got != "Unknown" {
		t.Fatalf("expected Unknown, got %q", got)
	}
}
