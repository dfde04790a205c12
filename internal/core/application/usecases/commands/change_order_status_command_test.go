package commands_test

import (
	"testing"

	"butchermarket/internal/core/application/usecases/commands"
	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_Valid(t *testing.T) {
	id, err := kernel.OrderIDFromString("BM-171700")
	require.NoError(t, err)

	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Ready)

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, order.Ready, cmd.NewStatus())
	assert.NoError(t, cmd.Validate())
}

func TestNewChangeOrderStatusCommand_ZeroOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.OrderID{}, order.Ready)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	id, err := kernel.OrderIDFromString("BM-171700")
	require.NoError(t, err)

	_, err = commands.NewChangeOrderStatusCommand(id, order.Unknown)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewChangeOrderStatusCommand_BothInvalid(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.OrderID{}, order.Status(42))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.Equal(t, commands.ErrChangeOrderStatusCommandIsNotConstructed, err)
}
