package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teamwear/jersey-orders/internal/app/entity"
)

func TestFormatPublicOrderID(t *testing.T) {
	assert.Equal(t, "JSY-000001", FormatPublicOrderID(entity.OrderID(1)))
	assert.Equal(t, "JSY-000042", FormatPublicOrderID(entity.OrderID(42)))
	assert.Equal(t, "JSY-1000000", FormatPublicOrderID(entity.OrderID(1000000)))
}

func TestConvertOrderToResponse(t *testing.T) {
	batch := "2026"
	created := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	order := entity.Order{
		ID:           42,
		Name:         "Alice",
		StudentID:    "S-100200",
		JerseyNumber: 7,
		Size:         "M",
		CollarType:   "round",
		SleeveType:   "short",
		Email:        "alice@example.edu",
		Batch:        &batch,
		FinalPrice:   25.50,
		Status:       entity.StatusPending,
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	response := ConvertOrderToResponse(order)

	assert.Equal(t, "JSY-000042", response.ID)
	assert.Equal(t, "pending", response.Status)
	assert.Equal(t, 7, response.JerseyNumber)
	assert.NotNil(t, response.Batch)
	assert.Nil(t, response.Notes)
	assert.NotEmpty(t, response.CreatedAt)
}
