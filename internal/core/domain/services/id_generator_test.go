package services_test

import (
	"regexp"
	"testing"

	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIDGenerator_Generate(t *testing.T) {
	t.Run("should produce identifiers in the BM-###### format", func(t *testing.T) {
		generator := services.NewOrderIDGenerator()
		pattern := regexp.MustCompile(`^BM-[1-9][0-9]{5}$`)

		for range 100 {
			id, err := generator.Generate(nil)

			require.NoError(t, err)
			assert.Regexp(t, pattern, id.String())
		}
	})

	t.Run("should never return a duplicate against a growing set", func(t *testing.T) {
		generator := services.NewOrderIDGenerator()
		existing := make(map[kernel.OrderID]struct{})

		for range 5000 {
			id, err := generator.Generate(existing)

			require.NoError(t, err)
			_, taken := existing[id]
			require.False(t, taken, "generator returned duplicate id %s", id)
			existing[id] = struct{}{}
		}
	})

	t.Run("should fail with ErrGenerationExhausted when the space is saturated", func(t *testing.T) {
		generator := services.NewOrderIDGenerator()

		// Every possible serial is taken, so every redraw collides.
		existing := make(map[kernel.OrderID]struct{}, kernel.MaxOrderSerial-kernel.MinOrderSerial+1)
		for serial := kernel.MinOrderSerial; serial <= kernel.MaxOrderSerial; serial++ {
			id, err := kernel.OrderIDFromSerial(serial)
			require.NoError(t, err)
			existing[id] = struct{}{}
		}

		_, err := generator.Generate(existing)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrGenerationExhausted)
	})
}
