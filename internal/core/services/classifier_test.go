package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	classifier := services.NewPriceClassifier()
	baseUnit := decimal.NewFromInt(1000)

	tests := []struct {
		name  string
		price decimal.Decimal
		want  domain.Classification
	}{
		{"zero price is invalid", decimal.Zero, domain.InvalidPrice},
		{"negative price is invalid", decimal.NewFromInt(-1), domain.InvalidPrice},
		{"price at peg", decimal.NewFromInt(1000), domain.AtPeg},
		{"price above peg", decimal.NewFromInt(1001), domain.AbovePeg},
		{"price far above peg", decimal.NewFromInt(2000), domain.AbovePeg},
		{"price below peg", decimal.NewFromInt(999), domain.BelowPeg},
		{"price just above zero", decimal.RequireFromString("0.000000000000000001"), domain.BelowPeg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.price, baseUnit))
		})
	}
}

func TestClassify_EqualityIsExactNotApproximate(t *testing.T) {
	classifier := services.NewPriceClassifier()
	// 1000 and 1000.000 compare equal as decimals regardless of exponent.
	assert.Equal(t, domain.AtPeg, classifier.Classify(decimal.RequireFromString("1000.000"), decimal.NewFromInt(1000)))
}
