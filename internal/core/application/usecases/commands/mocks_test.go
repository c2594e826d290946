package commands_test

import (
	"context"

	"cargospace/internal/core/application/usecases/commands"
	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/core/domain/model/space"
	"cargospace/internal/core/domain/model/transaction"
	"cargospace/internal/core/domain/model/user"
	"cargospace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Repositories share one mock type per aggregate across all handler tests in
// this package.

type MockSpaceRepository struct{ mock.Mock }

func (m *MockSpaceRepository) Add(ctx context.Context, aggregate *space.Space) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSpaceRepository) Update(ctx context.Context, aggregate *space.Space) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSpaceRepository) Get(ctx context.Context, id kernel.UUID) (*space.Space, error) {
	args := m.Called(ctx, id)
	if sp, ok := args.Get(0).(*space.Space); ok {
		return sp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSpaceRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*space.Space, error) {
	args := m.Called(ctx, id)
	if sp, ok := args.Get(0).(*space.Space); ok {
		return sp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSpaceRepository) GetByTokenID(ctx context.Context, tokenID string) (*space.Space, error) {
	args := m.Called(ctx, tokenID)
	if sp, ok := args.Get(0).(*space.Space); ok {
		return sp, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if sh, ok := args.Get(0).(*shipment.Shipment); ok {
		return sh, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTrackingEventRepository struct{ mock.Mock }

func (m *MockTrackingEventRepository) Add(ctx context.Context, event *shipment.TrackingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) Add(ctx context.Context, aggregate *transaction.Transaction) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTransactionRepository) Update(ctx context.Context, aggregate *transaction.Transaction) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTransactionRepository) Get(ctx context.Context, id kernel.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if tr, ok := args.Get(0).(*transaction.Transaction); ok {
		return tr, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTransactionRepository) GetByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) (*transaction.Transaction, error) {
	args := m.Called(ctx, shipmentID)
	if tr, ok := args.Get(0).(*transaction.Transaction); ok {
		return tr, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByWalletAddress(ctx context.Context, walletAddress string) (*user.User, error) {
	args := m.Called(ctx, walletAddress)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW implements every narrow unit of work interface; each test wires
// only the repositories its handler touches.

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

func (m *MockUoW) SpaceRepository() ports.SpaceRepository {
	args := m.Called()
	return args.Get(0).(ports.SpaceRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) TrackingEventRepository() ports.TrackingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingEventRepository)
}

func (m *MockUoW) TransactionRepository() ports.TransactionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransactionRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockSpaceUoWFactory struct{ mock.Mock }

func (m *MockSpaceUoWFactory) Create() commands.SpaceUoW {
	args := m.Called()
	return args.Get(0).(commands.SpaceUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}

type MockTransactionUoWFactory struct{ mock.Mock }

func (m *MockTransactionUoWFactory) Create() commands.TransactionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransactionUoW)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

// StubPublisher records publishes without asserting on them; handlers
// publish best effort after commit.
type StubPublisher struct {
	calls []shipment.Status
	err   error
}

func (p *StubPublisher) PublishStatusChanged(
	_ context.Context,
	_ kernel.UUID,
	status shipment.Status,
) error {
	p.calls = append(p.calls, status)
	return p.err
}
