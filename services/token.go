package services

import (
	"errors"
	"fmt"
	"time"

	"notemark/config"

	"github.com/golang-jwt/jwt/v5"
)

var authConfig config.AuthConfig

// InitTokens stores the auth configuration the token helpers sign and
// verify with. Must run before any token is issued.
func InitTokens(cfg config.AuthConfig) {
	authConfig = cfg
}

// GenerateToken issues a short-lived access token for the user.
func GenerateToken(userID string) (string, error) {
	return signToken(userID, "access", authConfig.AccessExpiration)
}

// GenerateRefreshToken issues a long-lived refresh token for the user.
func GenerateRefreshToken(userID string) (string, error) {
	return signToken(userID, "refresh", authConfig.RefreshExpiration)
}

func signToken(userID, tokenType string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenType,
		"iss":     authConfig.Issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authConfig.JWTSecretKey))
}

// ParseToken verifies the signature, issuer, and expiry of a token and
// returns its user id. tokenType must match the token's "type" claim, so an
// access token cannot be replayed as a refresh token or vice versa.
func ParseToken(tokenString, tokenType string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(authConfig.JWTSecretKey), nil
	}, jwt.WithIssuer(authConfig.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	if claimedType, _ := claims["type"].(string); claimedType != tokenType {
		return "", errors.New("invalid token type")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", errors.New("invalid user id in token")
	}

	return userID, nil
}
