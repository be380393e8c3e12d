package commands_test

import (
	"strings"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand("ORD-1700000000000-AB12CD34", "customer changed mind")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1700000000000-AB12CD34", cmd.OrderNumber())
	assert.Equal(t, "customer changed mind", cmd.Reason())
	require.NoError(t, cmd.Validate())
}

func TestNewCancelOrderCommand_EmptyReasonIsAllowed(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand("ORD-1700000000000-AB12CD34", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Reason())
}

func TestNewCancelOrderCommand_EmptyOrderNumber(t *testing.T) {
	_, err := commands.NewCancelOrderCommand("", "reason")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCancelOrderCommand_ReasonTooLong(t *testing.T) {
	_, err := commands.NewCancelOrderCommand("ORD-1700000000000-AB12CD34", strings.Repeat("r", commands.MaxReasonLength+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCancelOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CancelOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}
