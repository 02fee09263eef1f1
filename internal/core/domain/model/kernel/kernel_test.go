package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("new_uuid_is_valid", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var id kernel.UUID

		require.Error(t, id.Validate())
	})

	t.Run("round_trip_through_string", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})
}

func TestMoney(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		fee := kernel.NewMoney(3000)
		tip := kernel.NewMoney(500)

		assert.Equal(t, int64(3500), fee.Add(tip).Amount())
		assert.Equal(t, int64(2500), fee.Sub(tip).Amount())
		assert.Equal(t, int64(-3000), fee.Negate().Amount())
	})

	t.Run("sign_checks", func(t *testing.T) {
		assert.True(t, kernel.NewMoney(1).IsPositive())
		assert.True(t, kernel.NewMoney(-1).IsNegative())
		assert.False(t, kernel.NewMoney(0).IsPositive())
		assert.False(t, kernel.NewMoney(0).IsNegative())
	})

	t.Run("zero_amount_is_constructed_but_zero_value_is_not", func(t *testing.T) {
		require.NoError(t, kernel.NewMoney(0).Validate())

		var m kernel.Money
		require.Error(t, m.Validate())
	})
}

func TestLocation(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		loc, err := kernel.NewLocation(41.2995, 69.2401)

		require.NoError(t, err)
		assert.InDelta(t, 41.2995, loc.Latitude(), 1e-9)
		assert.InDelta(t, 69.2401, loc.Longitude(), 1e-9)
		require.NoError(t, loc.Validate())
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewLocation(95, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewLocation(0, -181)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var loc kernel.Location

		require.Error(t, loc.Validate())
	})
}
