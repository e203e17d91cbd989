package api

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/nyayconnect/nyayconnect-api/models"
)

// TokenLifetime is the fixed, non-renewing token validity window. There is
// no refresh flow; clients re-authenticate after expiry.
const TokenLifetime = 24 * time.Hour

// Claims is the signed claim set carried by every bearer token
type Claims struct {
	UserID int64       `json:"UserID"`
	Role   models.Role `json:"Role"`
	jwt.RegisteredClaims
}

// IssueToken produces a signed HS256 token for the given identity
func IssueToken(userID int64, role models.Role, secret string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates the signature and expiry of a bearer token and
// returns the identity it carries. No claim field is trusted before the
// signature validates.
func VerifyToken(tokenString, secret string) (int64, models.Role, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || !claims.Role.Valid() {
		return 0, "", fmt.Errorf("invalid token")
	}
	return claims.UserID, claims.Role, nil
}
