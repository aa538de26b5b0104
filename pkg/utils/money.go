package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMinorUnits converte um valor monetário em texto (ex.: "999", "1200.00")
// para unidades mínimas inteiras. Valores fracionários são arredondados.
func ParseMinorUnits(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("valor monetário vazio")
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("valor monetário inválido %q: %w", raw, err)
	}

	return value.Round(0).IntPart(), nil
}

// ParseOptionalMinorUnits é como ParseMinorUnits, mas nil ou vazio resultam em nil sem erro
func ParseOptionalMinorUnits(raw *string) (*int64, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	value, err := ParseMinorUnits(*raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
