package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/office-api/internal/domain/membership"
)

type idLookup func(ctx context.Context, value string) ([]string, error)

// checkUnique consulta quién usa value y delega la decisión al motor de membresía.
func checkUnique(ctx context.Context, field string, lookup idLookup, value, excludingID string) error {
	ids, err := lookup(ctx, value)
	if err != nil {
		return err
	}
	return membership.ValidateUniqueName(field, ids, excludingID)
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// dedupe conserva el primer orden de aparición.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
