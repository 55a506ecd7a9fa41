package service

import "crypto/subtle"

// Gate is the shared-secret check in front of admin operations. A minimal
// MVP gate: one configured secret, exact match, no accounts.
type Gate struct {
	AdminKey string
}

// RequireAdmin rejects with ServerMisconfigured when no secret is configured
// at all, so a missing key can never fail open.
func (g *Gate) RequireAdmin(providedKey string) error {
	if g.AdminKey == "" {
		return fail(ErrServerMisconfigured, "ADMIN_API_KEY not set")
	}
	if subtle.ConstantTimeCompare([]byte(providedKey), []byte(g.AdminKey)) != 1 {
		return fail(ErrUnauthorized, "Unauthorized")
	}
	return nil
}
