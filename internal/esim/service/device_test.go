package service

import (
	"context"
	"testing"

	"esim_portal_backend/internal/esim/transport"
	"esim_portal_backend/platform/logger"
)

func TestCheckDevice(t *testing.T) {
	svc := New(logger.Discard())

	cases := []struct {
		name     string
		req      transport.DeviceRequest
		status   string
		matched  string
		message  string
		warnings int
	}{
		{
			name:    "tablet has no table entry",
			req:     transport.DeviceRequest{DeviceType: "tablet", DeviceModel: "Galaxy Tab S9", OSVersion: "14"},
			status:  DeviceFailed,
			message: "Unsupported device type: tablet",
		},
		{
			name:    "ios below minimum",
			req:     transport.DeviceRequest{DeviceType: "ios", DeviceModel: "iPhone XS", OSVersion: "11.4"},
			status:  DeviceFailed,
			message: "OS version 11.4 is below minimum 12.1",
		},
		{
			name:    "android below minimum",
			req:     transport.DeviceRequest{DeviceType: "android", DeviceModel: "Google Pixel 3", OSVersion: "8.1.0"},
			status:  DeviceFailed,
			message: "OS version 8.1.0 is below minimum 9.0",
		},
		{
			name:     "unreadable os version still matches model",
			req:      transport.DeviceRequest{DeviceType: "iOS", DeviceModel: "iPhone 15 Pro", OSVersion: "beta"},
			status:   DeviceVerified,
			matched:  "iPhone 15",
			message:  "Device is eSIM compatible",
			warnings: 1,
		},
		{
			name:     "unreadable os version and unknown model",
			req:      transport.DeviceRequest{DeviceType: "android", DeviceModel: "Nokia 3310", OSVersion: "x.y"},
			status:   DeviceRequiresReview,
			message:  "Could not verify OS version; Device model 'Nokia 3310' not in verified list",
			warnings: 2,
		},
		{
			name:    "first containing model wins",
			req:     transport.DeviceRequest{DeviceType: "ios", DeviceModel: "iPhone 12 mini", OSVersion: "17.2"},
			status:  DeviceVerified,
			matched: "iPhone 12",
			message: "Device is eSIM compatible",
		},
		{
			name:    "partial model ignores case and hyphens",
			req:     transport.DeviceRequest{DeviceType: "android", DeviceModel: "galaxy-s21", OSVersion: "13"},
			status:  DeviceVerified,
			matched: "Samsung Galaxy S21+",
			message: "Device is eSIM compatible",
		},
		{
			name:     "unknown model needs review",
			req:      transport.DeviceRequest{DeviceType: "android", DeviceModel: "Nokia G42", OSVersion: "14"},
			status:   DeviceRequiresReview,
			message:  "Device model 'Nokia G42' not in verified list",
			warnings: 1,
		},
		{
			name:     "blank model needs review",
			req:      transport.DeviceRequest{DeviceType: "ios", DeviceModel: " - ", OSVersion: "17"},
			status:   DeviceRequiresReview,
			message:  "Device model ' - ' not in verified list",
			warnings: 1,
		},
	}

	for _, tc := range cases {
		got := svc.CheckDevice(context.Background(), tc.req)
		if got.Status != tc.status || got.Success != (tc.status == DeviceVerified) {
			t.Fatalf("%s: expected status %s, got %+v", tc.name, tc.status, got)
		}
		if got.MatchedModel != tc.matched {
			t.Fatalf("%s: expected match %q, got %q", tc.name, tc.matched, got.MatchedModel)
		}
		if got.Message != tc.message {
			t.Fatalf("%s: expected message %q, got %q", tc.name, tc.message, got.Message)
		}
		if len(got.Warnings) != tc.warnings {
			t.Fatalf("%s: expected %d warnings, got %v", tc.name, tc.warnings, got.Warnings)
		}
	}
}

func TestModelMatches(t *testing.T) {
	cases := []struct {
		input, model string
		want         bool
	}{
		{"iPhone XR", "iPhone XR", true},
		{"IPHONE-XR", "iPhone XR", true},
		{"Apple Watch Series 3+ (GPS)", "Apple Watch Series 3+", true},
		{"Pixel 7", "Google Pixel 7+", true},
		{"Pixel 2", "Google Pixel 3+", false},
		{"", "iPhone XS", false},
	}

	for _, tc := range cases {
		if got := modelMatches(tc.input, tc.model); got != tc.want {
			t.Fatalf("modelMatches(%q, %q) = %v, want %v", tc.input, tc.model, got, tc.want)
		}
	}
}
