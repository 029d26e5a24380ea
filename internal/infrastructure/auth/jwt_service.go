package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Luffyt01/HemoLink-sub000/domain"
)

// JWTService implements domain.TokenService. The frontend session token is
// an HS256 JWT carrying the backend bearer token and the user snapshot,
// valid for the configured session lifetime (7 days) and re-minted on each
// successful sign-in.
type JWTService struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

// NewJWTService creates a session token service.
func NewJWTService(secretKey, issuer string, ttl time.Duration) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
	}
}

// Lifetime implements domain.TokenService.
func (j *JWTService) Lifetime() time.Duration { return j.ttl }

func (j *JWTService) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// IssueSessionToken implements domain.TokenService.
func (j *JWTService) IssueSessionToken(sessionID string, user domain.SessionUser, accessToken string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"session_id":       sessionID,
		"user_id":          user.ID,
		"email":            user.Email,
		"role":             string(user.Role),
		"access_token":     accessToken,
		"provider":         user.Provider,
		"profile_complete": user.ProfileComplete,
		"iss":              j.issuer,
		"iat":              now.Unix(),
		"exp":              now.Add(j.ttl).Unix(),
		"jti":              j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateSessionToken implements domain.TokenService.
func (j *JWTService) ValidateSessionToken(tokenString string) (*domain.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	out := &domain.SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
		Role:      domain.Role(role),
		ExpiresAt: int64(exp),
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if accessToken, ok := claims["access_token"].(string); ok {
		out.AccessToken = accessToken
	}
	if provider, ok := claims["provider"].(string); ok {
		out.Provider = provider
	}
	if complete, ok := claims["profile_complete"].(bool); ok {
		out.ProfileComplete = complete
	}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = int64(iat)
	}
	return out, nil
}
