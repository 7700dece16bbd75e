package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"esim_portal_backend/internal/esim/transport"
)

// Device check outcomes.
const (
	DeviceVerified       = "verified"
	DeviceFailed         = "failed"
	DeviceRequiresReview = "requires_review"
)

const deviceCompatibleMessage = "Device is eSIM compatible"

type platformSupport struct {
	minVersion string
	minMajor   float64
	models     []string
}

// deviceTable holds the platforms with known eSIM hardware. Tablets and
// wearables pass request validation but have no entry here.
var deviceTable = map[string]platformSupport{
	"ios": {
		minVersion: "12.1",
		minMajor:   12,
		models: []string{
			"iPhone XS", "iPhone XS Max", "iPhone XR",
			"iPhone 11", "iPhone 11 Pro", "iPhone 11 Pro Max",
			"iPhone SE (2nd)", "iPhone SE (3rd)",
			"iPhone 12", "iPhone 12 mini", "iPhone 12 Pro", "iPhone 12 Pro Max",
			"iPhone 13", "iPhone 13 mini", "iPhone 13 Pro", "iPhone 13 Pro Max",
			"iPhone 14", "iPhone 14 Plus", "iPhone 14 Pro", "iPhone 14 Pro Max",
			"iPhone 15", "iPhone 15 Plus", "iPhone 15 Pro", "iPhone 15 Pro Max",
			"iPhone 16", "iPhone 16 Plus", "iPhone 16 Pro", "iPhone 16 Pro Max",
			"iPad Pro (3rd+)", "iPad Air (3rd+)", "iPad (7th+)", "iPad mini (5th+)",
			"Apple Watch Series 3+", "Apple Watch SE", "Apple Watch Ultra",
		},
	},
	"android": {
		minVersion: "9.0",
		minMajor:   9,
		models: []string{
			"Samsung Galaxy S20+", "Samsung Galaxy S21+", "Samsung Galaxy S22+", "Samsung Galaxy S23+", "Samsung Galaxy S24+",
			"Samsung Galaxy Z Fold", "Samsung Galaxy Z Flip",
			"Google Pixel 3+", "Google Pixel 4+", "Google Pixel 5+", "Google Pixel 6+", "Google Pixel 7+", "Google Pixel 8+",
			"Huawei P40+", "Huawei Mate 40+",
			"Xiaomi 12+", "Xiaomi 13+", "Xiaomi 14+",
			"OPPO Find X3+", "OPPO Find X5+",
			"OnePlus 9+", "OnePlus 10+", "OnePlus 11+", "OnePlus 12+",
		},
	},
}

// CheckDevice decides whether a handset can take an eSIM profile.
// An unknown platform or an OS major below the platform minimum fails the
// check. A model missing from the verified list needs manual review. An OS
// version that cannot be read only adds a warning.
func (s *Service) CheckDevice(ctx context.Context, req transport.DeviceRequest) transport.DeviceResponse {
	resp := checkDevice(req)
	s.log.WithContext(ctx).Info("esim_device_check",
		"device_type", req.DeviceType,
		"device_model", req.DeviceModel,
		"os_version", req.OSVersion,
		"status", resp.Status,
	)
	return resp
}

func checkDevice(req transport.DeviceRequest) transport.DeviceResponse {
	resp := transport.DeviceResponse{Errors: []string{}, Warnings: []string{}}

	support, ok := deviceTable[strings.ToLower(req.DeviceType)]
	if !ok {
		resp.Errors = append(resp.Errors, fmt.Sprintf("Unsupported device type: %s", req.DeviceType))
		return finishDevice(resp, DeviceFailed)
	}

	major, err := osMajor(req.OSVersion)
	switch {
	case err != nil:
		resp.Warnings = append(resp.Warnings, "Could not verify OS version")
	case major < support.minMajor:
		resp.Errors = append(resp.Errors, fmt.Sprintf("OS version %s is below minimum %s", req.OSVersion, support.minVersion))
		return finishDevice(resp, DeviceFailed)
	}

	for _, model := range support.models {
		if modelMatches(req.DeviceModel, model) {
			resp.MatchedModel = model
			return finishDevice(resp, DeviceVerified)
		}
	}

	resp.Warnings = append(resp.Warnings, fmt.Sprintf("Device model '%s' not in verified list", req.DeviceModel))
	return finishDevice(resp, DeviceRequiresReview)
}

func finishDevice(resp transport.DeviceResponse, status string) transport.DeviceResponse {
	resp.Status = status
	resp.Success = status == DeviceVerified
	if resp.Success {
		resp.Message = deviceCompatibleMessage
	} else {
		resp.Message = strings.Join(append(append([]string{}, resp.Errors...), resp.Warnings...), "; ")
	}
	return resp
}

// osMajor reads the part of an OS version before the first dot.
func osMajor(version string) (float64, error) {
	head, _, _ := strings.Cut(version, ".")
	return strconv.ParseFloat(strings.TrimSpace(head), 64)
}

// modelMatches compares models ignoring case, spaces and hyphens, and accepts
// containment in either direction so "Galaxy S21" matches "Samsung Galaxy S21+".
func modelMatches(input, model string) bool {
	in, target := normalizeModel(input), normalizeModel(model)
	if in == "" {
		return false
	}
	return strings.Contains(target, in) || strings.Contains(in, target)
}

var modelReplacer = strings.NewReplacer(" ", "", "-", "")

func normalizeModel(s string) string {
	return modelReplacer.Replace(strings.ToLower(s))
}
