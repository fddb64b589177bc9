package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignedDetails are the claims carried by a session token.
type SignedDetails struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

const tokenLifetime = 24 * time.Hour

var jwtSecret []byte

// InitTokenHelper sets the signing secret. Called from main with the
// configured value.
func InitTokenHelper(secret string) {
	jwtSecret = []byte(secret)
}

// GenerateToken issues a signed token binding the user identity and role.
// Expiry is absolute; there is no refresh mechanism.
func GenerateToken(userID, email, role string) (string, error) {
	claims := &SignedDetails{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken returns the decoded claims, or an error when the signature is
// invalid or the token expired. Callers treat any failure the same way.
func ValidateToken(tokenString string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SignedDetails{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
