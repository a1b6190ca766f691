// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the dashboard's shared-password gate.

This is a convenience gate, not access control: everyone who knows the one
shared password sees the same report.

# Password

The password comes from configuration either in plain text or as a bcrypt
hash. The hash wins when both are set:

	err := auth.CheckPassword(input, cfg.Password, cfg.PasswordHash)

Generate a hash with HashPassword (or the -hash-password flag of the server).

# Sessions

After a correct password the browser receives a signed cookie so the gate
does not reappear on every slider change:

	token, err := auth.GenerateSessionToken(salt, time.Now())
	err = auth.ValidateSessionToken(token, salt, 12*time.Hour, time.Now())

Tokens are nonce.issued.mac, where mac is HMAC-SHA256 of nonce.issued keyed
with the session salt. Nothing is stored server-side; rotating the salt
signs everyone out.

# ID Generation

Random hex IDs:

	id, err := auth.GenerateID(8)  // 16 hex characters
*/
package auth
