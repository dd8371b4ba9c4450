package jwt

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el scope (rol) del principal.
// El subject es el UUID de la empresa o del empleado autenticado.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"` // "COMPANY" | "MANAGER" | "EMPLOYEE"
}

// Generate firma con RS256 un token para subject/scope con la vigencia indicada.
func Generate(key *rsa.PrivateKey, subject, scope, issuer string, ttl time.Duration) (string, error) {
	if key == nil {
		return "", fmt.Errorf("jwt: llave privada nula")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scope: scope,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(key)
}

// Parse valida firma, expiración y emisor y devuelve subject y scope.
// issuer vacío desactiva la verificación del emisor.
func Parse(key *rsa.PublicKey, issuer, tokenString string) (subject, scope string, err error) {
	if key == nil {
		return "", "", fmt.Errorf("jwt: llave pública nula")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return key, nil
	}, opts...)
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return "", "", fmt.Errorf("jwt: subject vacío")
	}
	return claims.Subject, claims.Scope, nil
}
