package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalOf(t *testing.T) {
	tests := []struct {
		name     string
		items    []OrderItem
		expected int64
	}{
		{
			name: "two items",
			items: []OrderItem{
				{ProductID: 1, Name: "A", Price: 100, Quantity: 2},
				{ProductID: 2, Name: "B", Price: 50, Quantity: 1},
			},
			expected: 250,
		},
		{
			name:     "no items",
			items:    nil,
			expected: 0,
		},
		{
			name: "single item large quantity",
			items: []OrderItem{
				{ProductID: 3, Name: "C", Price: 1850, Quantity: 5},
			},
			expected: 9250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalOf(tt.items))
		})
	}
}
