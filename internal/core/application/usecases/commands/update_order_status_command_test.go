package commands_test

import (
	"strings"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-1700000000000-AB12CD34", order.Confirmed, "merchant accepted")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1700000000000-AB12CD34", cmd.OrderNumber())
	assert.Equal(t, order.Confirmed, cmd.NewStatus())
	assert.Equal(t, "merchant accepted", cmd.Reason())
	require.NoError(t, cmd.Validate())
}

func TestNewUpdateOrderStatusCommand_EmptyOrderNumber(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand("", order.Confirmed, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand("ORD-1700000000000-AB12CD34", order.StatusUnknown, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateOrderStatusCommand_ReasonTooLong(t *testing.T) {
	reason := strings.Repeat("r", commands.MaxReasonLength+1)
	_, err := commands.NewUpdateOrderStatusCommand("ORD-1700000000000-AB12CD34", order.Confirmed, reason)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewUpdateOrderStatusCommand_NotConstructed(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
