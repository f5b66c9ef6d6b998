package ticket

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crewdesk/internal/shared/id"
)

// ReferenceGenerator produces the human-readable unique code printed on every
// ticket, e.g. CD-20260830-X7K2QF.
type ReferenceGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type DefaultReferenceGenerator struct{}

func NewDefaultReferenceGenerator() *DefaultReferenceGenerator {
	return &DefaultReferenceGenerator{}
}

func (g *DefaultReferenceGenerator) Generate(ctx context.Context) (string, error) {
	suffix, err := id.Generate(6)
	if err != nil {
		return "", fmt.Errorf("generate ticket reference: %w", err)
	}

	dateKey := time.Now().UTC().Format("20060102")
	return fmt.Sprintf("CD-%s-%s", dateKey, strings.ToUpper(suffix)), nil
}
