package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	assert.Equal(t, 10, Price(1, DefaultPricePerMonth))
	assert.Equal(t, 120, Price(12, DefaultPricePerMonth))
	assert.Equal(t, 45, Price(3, 15))
}

func TestDelta(t *testing.T) {
	tests := []struct {
		name      string
		oldMonths int
		newMonths int
		want      int
	}{
		{"upgrade 3 to 6 charges 30", 3, 6, 30},
		{"downgrade 6 to 3 refunds 30", 6, 3, -30},
		{"same duration is free", 3, 3, 0},
		{"1 to 12", 1, 12, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Delta(tt.oldMonths, tt.newMonths, DefaultPricePerMonth))
		})
	}
}
