package sftpclient

import (
	"context"
	"strings"
	"testing"
)

// The real upload needs a server; these tests cover the validation and
// cancellation paths that run before any network traffic succeeds.

func TestUploadFileMissingCredentials(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{"all empty", Config{}},
		{"missing host", Config{User: "u", Pass: "p"}},
		{"missing user", Config{Host: "h", Pass: "p"}},
		{"missing pass", Config{Host: "h", User: "u"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := UploadFile(context.Background(), tc.cfg, "catalog.csv", "catalog.csv")
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), "missing env SFTP_HOST / SFTP_USER / SFTP_PASS") {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestUploadFileStrictHostKeyRefused(t *testing.T) {
	cfg := Config{
		Host: "test-host",
		User: "test-user",
		Pass: "test-pass",
		// zero value: strict checking requested
		InsecureIgnoreHostKey: false,
	}

	err := UploadFile(context.Background(), cfg, "catalog.csv", "catalog.csv")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "strict host key checking is not supported") {
		t.Errorf("Expected host key refusal, got %v", err)
	}
}

func TestUploadFileCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{
		// TEST-NET address, never routable: the dial cannot win the race
		// against the already-canceled context.
		Host:                  "192.0.2.1",
		User:                  "test-user",
		Pass:                  "test-pass",
		InsecureIgnoreHostKey: true,
	}

	err := UploadFile(ctx, cfg, "catalog.csv", "catalog.csv")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), "sftp: dial canceled") {
		t.Errorf("Expected dial-canceled error, got %v", err)
	}
}
