// Package auth verifies session tokens issued by the external auth provider.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session is the identity carried by a verified token.
type Session struct {
	UserID uuid.UUID
	Role   string
	Admin  bool
}

// SessionVerifier validates HS256 session JWTs.
type SessionVerifier struct {
	secret    []byte
	audience  string
	adminRole string
	leeway    time.Duration
}

// NewSessionVerifier creates a verifier. secret must be the provider's JWT
// signing secret; tokens must carry audience in "aud".
func NewSessionVerifier(secret, audience, adminRole string) *SessionVerifier {
	return &SessionVerifier{
		secret:    []byte(secret),
		audience:  audience,
		adminRole: adminRole,
		leeway:    30 * time.Second,
	}
}

// sessionClaims are the claims the provider puts into its access tokens.
// The admin role may be carried at the top level or in app_metadata.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role        string `json:"role,omitempty"`
	AppMetadata struct {
		Role string `json:"role,omitempty"`
	} `json:"app_metadata"`
}

// Verify parses and validates token. The signature, expiry and audience are
// checked and the subject must be a UUID.
func (v *SessionVerifier) Verify(_ context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, fmt.Errorf("token is empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return Session{}, fmt.Errorf("parse token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Session{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := claims.Role
	if claims.AppMetadata.Role != "" {
		role = claims.AppMetadata.Role
	}
	return Session{
		UserID: userID,
		Role:   role,
		Admin:  v.adminRole != "" && role == v.adminRole,
	}, nil
}
