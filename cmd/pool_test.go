package cmd

import (
	"testing"

	"lending/pkg/number"

	"github.com/stretchr/testify/assert"
)

func TestValidatePoolParams(t *testing.T) {
	cases := []struct {
		name        string
		rate        string
		threshold   string
		bonus       string
		closeFactor string
		ok          bool
	}{
		{"defaults", "0", "0.8", "0.05", "0.5", true},
		{"full threshold", "0.000001", "1", "0", "1", true},
		{"negative rate", "-0.000001", "0.8", "0.05", "0.5", false},
		{"zero threshold", "0", "0", "0.05", "0.5", false},
		{"threshold above one", "0", "1.1", "0.05", "0.5", false},
		{"negative bonus", "0", "0.8", "-0.1", "0.5", false},
		{"bonus at one", "0", "0.8", "1", "0.5", false},
		{"zero close factor", "0", "0.8", "0.05", "0", false},
		{"close factor above one", "0", "0.8", "0.05", "1.5", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validatePoolParams(number.Decimal(c.rate), number.Decimal(c.threshold), number.Decimal(c.bonus), number.Decimal(c.closeFactor))
			if c.ok {
				assert.Nil(t, err)
			} else {
				assert.NotNil(t, err)
			}
		})
	}
}
