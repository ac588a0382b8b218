package models_test

import (
	"math"
	"testing"

	"foodapp-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	total, err := models.ComputeTotal([]models.OrderItem{
		{PriceEachCents: 500, Quantity: 2},
		{PriceEachCents: 350, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1350), total)

	total, err = models.ComputeTotal(nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestComputeTotal_Overflow(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		_, err := models.ComputeTotal([]models.OrderItem{
			{PriceEachCents: 500, Quantity: math.MaxInt64 / 250},
		})
		assert.ErrorIs(t, err, models.ErrTotalOverflow)
	})

	t.Run("sum", func(t *testing.T) {
		_, err := models.ComputeTotal([]models.OrderItem{
			{PriceEachCents: math.MaxInt64 - 10, Quantity: 1},
			{PriceEachCents: 100, Quantity: 1},
		})
		assert.ErrorIs(t, err, models.ErrTotalOverflow)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := models.ComputeTotal([]models.OrderItem{{PriceEachCents: 500, Quantity: -1}})
		assert.ErrorIs(t, err, models.ErrTotalOverflow)
	})
}
