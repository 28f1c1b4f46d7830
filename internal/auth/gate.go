// Package auth implements the admin gate: mutating catalog and order
// operations (except public checkout) must present a token this gate
// accepts.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

type Gate interface {
	Authorize(token string) bool
}

type JWTGate struct {
	secret string
}

func CreateJWTGate(secret string) *JWTGate {
	return &JWTGate{secret: secret}
}

// IssueToken signs a 7-day admin token for a caller whose credentials have
// already been checked.
func (g *JWTGate) IssueToken(email string) (string, error) {
	claims := jwt.MapClaims{}
	claims["role"] = "admin"
	claims["email"] = email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(g.secret))
}

func (g *JWTGate) Authorize(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(g.secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)

	return role == "admin"
}
