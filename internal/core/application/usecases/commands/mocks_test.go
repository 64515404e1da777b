package commands_test

import (
	"context"
	"time"

	"refillstation/internal/core/application/usecases/commands"
	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"
	"refillstation/internal/core/domain/model/websitegate"
	"refillstation/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, previousStatus order.Status) error {
	args := m.Called(ctx, o, previousStatus)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWebsiteGateRepository struct{ mock.Mock }

func (m *MockWebsiteGateRepository) Get(ctx context.Context) (*websitegate.WebsiteGate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*websitegate.WebsiteGate), args.Error(1)
}

func (m *MockWebsiteGateRepository) Save(ctx context.Context, gate *websitegate.WebsiteGate) error {
	args := m.Called(ctx, gate)
	return args.Error(0)
}

// MockUoW satisfies commands.UoW, commands.OrderUoW and commands.GateUoW, so a
// single mock serves every handler.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WebsiteGateRepository() ports.WebsiteGateRepository {
	args := m.Called()
	return args.Get(0).(ports.WebsiteGateRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockGateUoWFactory struct{ mock.Mock }

func (m *MockGateUoWFactory) Create() commands.GateUoW {
	args := m.Called()
	return args.Get(0).(commands.GateUoW)
}
