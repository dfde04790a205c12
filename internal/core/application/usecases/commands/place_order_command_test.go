package commands_test

import (
	"errors"
	"testing"

	"butchermarket/internal/core/application/usecases/commands"
	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCart() []commands.CartLine {
	return []commands.CartLine{
		{ProductID: 11, Quantity: decimal.NewFromInt(2)},
	}
}

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create command from valid intake", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(
			"Ahmed", "01234567890", "", "123 Example St, Cairo", "", "Cash",
			validCart(),
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Ahmed", cmd.CustomerName())
		assert.Equal(t, "01234567890", cmd.CustomerPhone())
		assert.Equal(t, "123 Example St, Cairo", cmd.CustomerAddress())
		assert.Equal(t, order.Cash, cmd.PaymentMethod())
		require.Len(t, cmd.Lines(), 1)
	})

	t.Run("should keep optional fields", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(
			"Fatma", "01098765432", "01512345678", "45 Nasr St, Giza", "next to the mosque", "InstaPay",
			validCart(),
		)

		require.NoError(t, err)
		assert.Equal(t, "01512345678", cmd.AlternatePhone())
		assert.Equal(t, "next to the mosque", cmd.Landmark())
		assert.Equal(t, order.InstaPay, cmd.PaymentMethod())
	})

	t.Run("should report multiple simultaneous violations together", func(t *testing.T) {
		// Given a blank name AND a malformed phone
		_, err := commands.NewPlaceOrderCommand(
			"", "12345", "", "123 Example St", "", "Cash",
			validCart(),
		)

		// Then both field messages are present, not just the first encountered
		require.Error(t, err)
		var validationErr *errs.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields, "name")
		assert.Contains(t, validationErr.Fields, "phone")
		assert.Len(t, validationErr.Fields, 2)
	})

	t.Run("should report every broken rule at once", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			" ", "", "not-a-phone", "  ", "", "Card",
			nil,
		)

		require.Error(t, err)
		var validationErr *errs.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields, "name")
		assert.Contains(t, validationErr.Fields, "phone")
		assert.Contains(t, validationErr.Fields, "alternatePhone")
		assert.Contains(t, validationErr.Fields, "address")
		assert.Contains(t, validationErr.Fields, "paymentMethod")
		assert.Contains(t, validationErr.Fields, "items")
	})

	t.Run("blank alternate phone is not a violation", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			"Ahmed", "01234567890", "   ", "123 Example St", "", "Cash",
			validCart(),
		)

		require.NoError(t, err)
	})

	t.Run("alternate phone must match the pattern when present", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			"Ahmed", "01234567890", "0123", "123 Example St", "", "Cash",
			validCart(),
		)

		require.Error(t, err)
		var validationErr *errs.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields, "alternatePhone")
		assert.Len(t, validationErr.Fields, 1)
	})

	t.Run("should drop cart lines with non-positive quantity", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(
			"Ahmed", "01234567890", "", "123 Example St", "", "Cash",
			[]commands.CartLine{
				{ProductID: 1, Quantity: decimal.Zero},
				{ProductID: 11, Quantity: decimal.NewFromInt(2)},
				{ProductID: 14, Quantity: decimal.NewFromInt(-1)},
			},
		)

		require.NoError(t, err)
		lines := cmd.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 11, lines[0].ProductID)
	})

	t.Run("cart with only non-positive quantities is an items violation", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			"Ahmed", "01234567890", "", "123 Example St", "", "Cash",
			[]commands.CartLine{{ProductID: 1, Quantity: decimal.Zero}},
		)

		require.Error(t, err)
		var validationErr *errs.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields, "items")
		assert.Len(t, validationErr.Fields, 1)
	})

	t.Run("should preserve cart entry order", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(
			"Ahmed", "01234567890", "", "123 Example St", "", "Cash",
			[]commands.CartLine{
				{ProductID: 14, Quantity: decimal.NewFromInt(1)},
				{ProductID: 11, Quantity: decimal.NewFromInt(2)},
				{ProductID: 1, Quantity: decimal.RequireFromString("0.5")},
			},
		)

		require.NoError(t, err)
		lines := cmd.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, 14, lines[0].ProductID)
		assert.Equal(t, 11, lines[1].ProductID)
		assert.Equal(t, 1, lines[2].ProductID)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
	})
}
