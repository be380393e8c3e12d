package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := orderInStatus(t, order.Delivering)
	cmd, err := commands.NewCancelOrderCommand(existing.Number(), "customer refused delivery")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", mock.Anything, existing.Number()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationClient)
	done := expectNotification(notifier, "Your order status has been updated to: Cancelled")

	updateHandler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier, testLogger())
	h := commands.NewCancelOrderCommandHandler(updateHandler)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, order.Delivering, result.PreviousStatus)
	assert.Equal(t, order.Cancelled, result.NewStatus)
	assert.Equal(t, order.Cancelled, existing.Status())

	waitForGateways(t, done)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CompletedOrderCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	existing := orderInStatus(t, order.Completed)
	cmd, err := commands.NewCancelOrderCommand(existing.Number(), "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByNumber", mock.Anything, existing.Number()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationClient)

	updateHandler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier, testLogger())
	h := commands.NewCancelOrderCommandHandler(updateHandler)

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var transitionErr *order.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Completed, existing.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	updateHandler := commands.NewUpdateOrderStatusCommandHandler(factory, new(MockNotificationClient), testLogger())
	h := commands.NewCancelOrderCommandHandler(updateHandler)

	_, err := h.Handle(ctx, commands.CancelOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
