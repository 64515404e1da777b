package commands_test

import (
	"testing"

	"refillstation/internal/core/application/usecases/commands"
	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWalkInOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateWalkInOrderCommand(id, "Ben Cruz", "09998887777", "", false, false)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Ben Cruz", cmd.CustomerName())
	assert.Equal(t, "09998887777", cmd.Phone())
	assert.Empty(t, cmd.Address())
	assert.False(t, cmd.HasContainer())
	assert.False(t, cmd.Delivery())
}

func TestNewCreateWalkInOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateWalkInOrderCommand(kernel.UUID{}, "Ben Cruz", "09998887777", "", false, false)
	require.Error(t, err)
}

func TestNewCreateWalkInOrderCommand_EmptyCustomerName(t *testing.T) {
	_, err := commands.NewCreateWalkInOrderCommand(kernel.NewUUID(), "", "09998887777", "", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateWalkInOrderCommand_EmptyPhone(t *testing.T) {
	_, err := commands.NewCreateWalkInOrderCommand(kernel.NewUUID(), "Ben Cruz", "", "", false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
