package amazon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosingFeeTiers(t *testing.T) {
	tests := []struct {
		gross float64
		want  float64
	}{
		{gross: 0, want: 10},
		{gross: 299.99, want: 10},
		{gross: 300, want: 15},
		{gross: 500, want: 15},
		{gross: 500.01, want: 45},
		{gross: 10000, want: 45},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, closingFee(tt.gross), "gross %v", tt.gross)
	}
}

func TestProfile(t *testing.T) {
	p := Profile()

	assert.False(t, p.DeductOutputGST)
	assert.Equal(t, 150.0, p.DefaultCommission(1000))
	assert.Equal(t, 0.0, p.DefaultShippingFee(1000))
	if assert.NotNil(t, p.Guard) {
		assert.Equal(t, "collection-fee", p.Guard.ForeignFeeColumn)
	}
}
