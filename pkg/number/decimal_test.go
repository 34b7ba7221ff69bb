package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestCeil(t *testing.T) {
	data := map[string]string{
		"0.10304":     "0.11",
		"0.100000001": "0.11",
		"0.108":       "0.11",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			c := Ceil(Decimal(k), 2)
			assert.Equal(t, v, c.String(), "should be ceil")
		})
	}
}

func TestExp(t *testing.T) {
	if !Exp(Decimal("0")).Equal(Decimal("1")) {
		t.Error("e^0 should be 1")
	}

	one := Exp(Decimal("1"))
	if one.LessThan(Decimal("2.718281")) || one.GreaterThan(Decimal("2.718282")) {
		t.Error("e^1 out of range:", one)
	}
}
