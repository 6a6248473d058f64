// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth derives and validates the admin API key.

# Admin Key

The site-wide admin key uses HMAC-SHA256 over a fixed scope string,
keyed by the configured salt:

	adminKey := auth.AdminKey(salt)
	err := auth.ValidateAdminKey(adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's
deterministic, the same salt always produces the same key. This allows
validation without storing the key anywhere: the operator computes the
key from the salt and hands it to admin clients, and handlers
recompute it per request.

Validation uses hmac.Equal for constant-time comparison.
*/
package auth
