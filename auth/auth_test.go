// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestCheckPassword_Plain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		password string
		wantErr  bool
	}{
		{"correct", "coffee", "coffee", false},
		{"wrong", "tea", "coffee", true},
		{"case sensitive", "Coffee", "coffee", true},
		{"empty input", "", "coffee", true},
		{"no password configured", "", "", true},
		{"trailing space", "coffee ", "coffee", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.input, tt.password, "")
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidPassword {
				t.Errorf("CheckPassword() error = %v, want %v", err, ErrInvalidPassword)
			}
		})
	}
}

func TestCheckPassword_Hash(t *testing.T) {
	hash, err := HashPassword("coffee")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("HashPassword() = %q, want a bcrypt hash", hash)
	}

	if err := CheckPassword("coffee", "", hash); err != nil {
		t.Errorf("CheckPassword() with hash error = %v", err)
	}
	// Hash wins over the plain password
	if err := CheckPassword("tea", "tea", hash); err != ErrInvalidPassword {
		t.Errorf("CheckPassword() error = %v, want %v", err, ErrInvalidPassword)
	}
	if err := CheckPassword("coffee", "", "not-a-hash"); err != ErrInvalidPassword {
		t.Errorf("CheckPassword() with malformed hash error = %v, want %v", err, ErrInvalidPassword)
	}
}

func TestGenerateSessionToken(t *testing.T) {
	now := time.Now()

	token, err := GenerateSessionToken("salt", now)
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("GenerateSessionToken() = %q, want 3 dot-separated parts", token)
	}

	// Should be URL-safe (no padding)
	if strings.Contains(token, "=") {
		t.Error("GenerateSessionToken() contains padding characters")
	}

	// Nonce makes every token unique
	other, _ := GenerateSessionToken("salt", now)
	if token == other {
		t.Error("GenerateSessionToken() produced duplicate tokens")
	}
}

func TestValidateSessionToken(t *testing.T) {
	salt := "session-salt"
	issued := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	valid, err := GenerateSessionToken(salt, issued)
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(valid, ".")
	// Same MAC, later issue time
	forged := parts[0] + ".9999999999." + parts[2]

	tests := []struct {
		name    string
		token   string
		salt    string
		maxAge  time.Duration
		now     time.Time
		wantErr error
	}{
		{"valid", valid, salt, time.Hour, issued.Add(time.Minute), nil},
		{"no max age", valid, salt, 0, issued.Add(1000 * time.Hour), nil},
		{"expired", valid, salt, time.Hour, issued.Add(2 * time.Hour), ErrSessionExpired},
		{"wrong salt", valid, "other", time.Hour, issued, ErrInvalidSession},
		{"forged issue time", forged, salt, time.Hour, issued, ErrInvalidSession},
		{"garbage", "not-a-token", salt, time.Hour, issued, ErrInvalidSession},
		{"empty", "", salt, time.Hour, issued, ErrInvalidSession},
		{"issued in future", valid, salt, time.Hour, issued.Add(-time.Hour), ErrInvalidSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSessionToken(tt.token, tt.salt, tt.maxAge, tt.now)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSessionToken() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
