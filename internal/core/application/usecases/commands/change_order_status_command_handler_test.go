package commands_test

import (
	"errors"
	"testing"
	"time"

	"refillstation/internal/core/application/usecases/commands"
	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"
	"refillstation/internal/pkg/clock"
	"refillstation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	customerID := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, "Ana Reyes", "09123456789", "123 Main St", true, true, createdAt)
	require.NoError(t, err)
	return o
}

func TestChangeOrderStatusCommandHandler_Handle_StaffSuccess(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t, testNow)
	cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), order.OnTheWay, order.ActorStaff)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, existing, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, clock.NewFixed(testNow.Add(10*time.Minute)))
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.OnTheWay, updated.Status())
	assert.Equal(t, testNow.Add(10*time.Minute), updated.UpdatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CustomerCancelInsideWindow(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t, testNow)
	cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), order.Cancelled, order.ActorCustomer)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, existing, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, clock.NewFixed(testNow.Add(59*time.Minute)))
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CustomerCancelAfterWindow(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t, testNow)
	cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), order.Cancelled, order.ActorCustomer)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, clock.NewFixed(testNow.Add(time.Hour)))
	updated, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrActionIsForbidden)
	assert.Equal(t, order.Pending, existing.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Delivered, order.ActorStaff)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("orderId", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, clock.NewFixed(testNow))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t, testNow)
	cmd, err := commands.NewChangeOrderStatusCommand(existing.ID(), order.OnTheWay, order.ActorStaff)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("UpdateStatus", mock.Anything, existing, order.Pending).
			Return(errs.NewVersionConflictError("orderId", existing.ID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, clock.NewFixed(testNow))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Delivered, order.ActorStaff)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewChangeOrderStatusCommandHandler(factory, clock.NewFixed(testNow))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
