package service

import (
	"fmt"

	"github.com/labstack/gommon/random"
)

// NumberGenerator produces human-facing document numbers such as INV-482911.
// The generator is random rather than clock-derived so that two creates in
// the same instant cannot collide; the unique index on the number column is
// the backstop for the residual collision chance.
type NumberGenerator interface {
	Next(prefix string) string
}

type randomNumberGenerator struct{}

func NewNumberGenerator() NumberGenerator {
	return &randomNumberGenerator{}
}

func (g *randomNumberGenerator) Next(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, random.String(6, random.Numeric))
}
