package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestUpstreamErrorWithStatus(t *testing.T) {
	t.Parallel()

	err := &UpstreamError{Symbol: "DOGEUSDT", Status: 404, Body: `{"msg":"Invalid symbol."}`}
	msg := err.Error()
	if !strings.Contains(msg, "DOGEUSDT") || !strings.Contains(msg, "404") || !strings.Contains(msg, "Invalid symbol.") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestUpstreamErrorTransportFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := &UpstreamError{Symbol: "BTCUSDT", Cause: cause}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	cause := errors.New("invalid character '<'")
	err := &DecodeError{Symbol: "BTCUSDT", Cause: cause}
	if !strings.Contains(err.Error(), "malformed upstream response for BTCUSDT") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}
}
