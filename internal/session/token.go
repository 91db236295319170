package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/and161185/kid-clinic/internal/errs"
)

// TokenInfo is what the client can learn from its access token without the signing key.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time // zero when the token carries no exp
}

// Expired reports whether the token is past its exp at now.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// InspectToken decodes the claims of a JWT access token. The signature is not verified;
// the result is for display only. Subject falls back to the user_id claim.
func InspectToken(token string) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: not a JWT: %w", errs.ErrInvalidInput, err)
	}

	var info TokenInfo
	info.Subject, _ = claims.GetSubject()
	if info.Subject == "" {
		if uid, ok := claims["user_id"]; ok {
			info.Subject = fmt.Sprint(uid)
		}
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
