// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidSession  = errors.New("invalid session")
	ErrSessionExpired  = errors.New("session expired")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// CheckPassword compares user input with the shared dashboard password.
// When hash is set it is a bcrypt hash and takes precedence over password.
func CheckPassword(input, password, hash string) error {
	if hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input)); err != nil {
			return ErrInvalidPassword
		}
		return nil
	}

	if password == "" || !hmac.Equal([]byte(input), []byte(password)) {
		return ErrInvalidPassword
	}
	return nil
}

// HashPassword returns a bcrypt hash suitable for DASHBOARD_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// GenerateSessionToken issues a cookie value of the form nonce.issued.mac
// The MAC covers nonce and issue time so the token cannot be extended.
func GenerateSessionToken(salt string, issuedAt time.Time) (string, error) {
	nonce, err := GenerateID(8)
	if err != nil {
		return "", err
	}
	payload := nonce + "." + strconv.FormatInt(issuedAt.Unix(), 10)
	return payload + "." + sign(payload, salt), nil
}

// ValidateSessionToken checks the MAC and that the token is younger than maxAge
func ValidateSessionToken(token, salt string, maxAge time.Duration, now time.Time) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrInvalidSession
	}

	payload := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(parts[2]), []byte(sign(payload, salt))) {
		return ErrInvalidSession
	}

	issued, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ErrInvalidSession
	}
	age := now.Sub(time.Unix(issued, 0))
	if age < 0 {
		return ErrInvalidSession
	}
	if maxAge > 0 && age > maxAge {
		return ErrSessionExpired
	}
	return nil
}

// sign creates an HMAC-SHA256 over payload, URL-safe base64 without padding
func sign(payload, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(payload))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}
