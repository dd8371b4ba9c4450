package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ParsePrivateKey acepta la llave privada RSA en PEM o como DER PKCS#8 en base64
// (formato de la variable PRIVATE_KEY, admite saltos de línea).
func ParsePrivateKey(raw string) (*rsa.PrivateKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("jwt: llave privada vacía")
	}
	if strings.HasPrefix(raw, "-----BEGIN") {
		return jwt.ParseRSAPrivateKeyFromPEM([]byte(raw))
	}
	der, err := decodeBase64(raw)
	if err != nil {
		return nil, fmt.Errorf("jwt: llave privada base64: %w", err)
	}
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		if rsaKey, err2 := x509.ParsePKCS1PrivateKey(der); err2 == nil {
			return rsaKey, nil
		}
		return nil, fmt.Errorf("jwt: parse PKCS#8: %w", err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("jwt: la llave privada no es RSA")
	}
	return rsaKey, nil
}

// ParsePublicKey acepta la llave pública RSA en PEM o como DER X.509 (PKIX) en base64.
func ParsePublicKey(raw string) (*rsa.PublicKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("jwt: llave pública vacía")
	}
	if strings.HasPrefix(raw, "-----BEGIN") {
		return jwt.ParseRSAPublicKeyFromPEM([]byte(raw))
	}
	der, err := decodeBase64(raw)
	if err != nil {
		return nil, fmt.Errorf("jwt: llave pública base64: %w", err)
	}
	key, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("jwt: parse PKIX: %w", err)
	}
	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("jwt: la llave pública no es RSA")
	}
	return rsaKey, nil
}

// GenerateKeyPair crea un par RSA efímero (solo desarrollo y tests).
func GenerateKeyPair(bits int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("jwt: generar llave RSA: %w", err)
	}
	return key, &key.PublicKey, nil
}

// EncodePublicKeyPEM serializa la llave pública en PEM (PKIX).
func EncodePublicKeyPEM(key *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return "", err
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})), nil
}

func decodeBase64(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
	return base64.StdEncoding.DecodeString(clean)
}
