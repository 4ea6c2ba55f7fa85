package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceOrder_RecalcTotal(t *testing.T) {
	tests := []struct {
		name  string
		parts []OrderPart
		fee   float64
		want  float64
	}{
		{
			name: "no parts no fee",
			want: 0,
		},
		{
			name:  "single line plus fee",
			parts: []OrderPart{{PartID: 1, Quantity: 4, UnitPrice: 100000}},
			fee:   150000,
			want:  550000,
		},
		{
			name: "two lines plus fee",
			parts: []OrderPart{
				{PartID: 1, Quantity: 4, UnitPrice: 100000},
				{PartID: 2, Quantity: 1, UnitPrice: 30000},
			},
			fee:  150000,
			want: 580000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := ServiceOrder{PartsUsed: tt.parts, ServiceFee: tt.fee}
			o.RecalcTotal()
			assert.Equal(t, tt.want, o.TotalCost)
		})
	}
}
