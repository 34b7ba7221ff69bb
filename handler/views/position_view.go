package views

import (
	"lending/core"

	"github.com/shopspring/decimal"
)

// Position position view
type Position struct {
	core.Position
	Symbol string `json:"symbol"`
}

// Account account view
type Account struct {
	UserID       string          `json:"user_id"`
	HealthFactor decimal.Decimal `json:"health_factor"`
	Positions    []*Position     `json:"positions"`
}
