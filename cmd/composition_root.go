package cmd

import (
	"context"
	"log/slog"
	"time"

	"cargospace/internal/adapters/out/kafka"
	"cargospace/internal/adapters/out/postgres"
	"cargospace/internal/core/application/usecases/commands"
	"cargospace/internal/core/application/usecases/queries"
	"cargospace/internal/core/domain/model/kernel"
	"cargospace/internal/core/domain/model/shipment"
	"cargospace/internal/core/ports"
	"cargospace/internal/jobs"

	"gorm.io/gorm"
)

// defaultMaxPendingAge is how long a shipment may stay pending without a
// settlement transaction before the reminder job reports it.
const defaultMaxPendingAge = time.Hour

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	publisher     ports.ShipmentEventPublisher
	kafkaCloser   *kafka.ShipmentEventPublisher
	maxPendingAge time.Duration
	logger        *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:     nopPublisher{},
		maxPendingAge: defaultMaxPendingAge,
		logger:        logger,
	}

	if configs.KafkaHost != "" && configs.KafkaShipmentStatusTopic != "" {
		kafkaPublisher := kafka.NewShipmentEventPublisher(
			configs.KafkaHost,
			configs.KafkaShipmentStatusTopic,
			logger,
		)
		root.publisher = kafkaPublisher
		root.kafkaCloser = kafkaPublisher
	}

	if configs.SettlementMaxPendingAge != "" {
		age, err := time.ParseDuration(configs.SettlementMaxPendingAge)
		if err != nil {
			logger.Warn("Invalid SETTLEMENT_MAX_PENDING_AGE, using default",
				"value", configs.SettlementMaxPendingAge,
				"default", defaultMaxPendingAge.String(),
			)
		} else {
			root.maxPendingAge = age
		}
	}

	return root
}

// Close releases resources held by the composition root, such as the Kafka
// writer.
func (c *CompositionRoot) Close() error {
	if c.kafkaCloser != nil {
		return c.kafkaCloser.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateSpaceCommandHandler() commands.CreateSpaceCommandHandler {
	var f commands.SpaceUoWFactory = FuncSpaceUoWFactory(func() commands.SpaceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSpaceCommandHandler(f)
}

func (c *CompositionRoot) CreateSetSpaceStatusCommandHandler() commands.SetSpaceStatusCommandHandler {
	var f commands.SpaceUoWFactory = FuncSpaceUoWFactory(func() commands.SpaceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetSpaceStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateBookShipmentCommandHandler() commands.BookShipmentCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookShipmentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAdvanceShipmentStatusCommandHandler() commands.AdvanceShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceShipmentStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCreateTransactionCommandHandler() commands.CreateTransactionCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransactionCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateConfirmTransactionCommandHandler() commands.ConfirmTransactionCommandHandler {
	var f commands.TransactionUoWFactory = FuncTransactionUoWFactory(func() commands.TransactionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmTransactionCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendTrackingEventCommandHandler() commands.AppendTrackingEventCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTrackingEventCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSearchSpacesQueryHandler() queries.SearchSpacesQueryHandler {
	return queries.NewSearchSpacesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSpaceByIDQueryHandler() queries.GetSpaceByIDQueryHandler {
	return queries.NewGetSpaceByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSpacesByOwnerQueryHandler() queries.GetSpacesByOwnerQueryHandler {
	return queries.NewGetSpacesByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentByIDQueryHandler() queries.GetShipmentByIDQueryHandler {
	return queries.NewGetShipmentByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionByIDQueryHandler() queries.GetTransactionByIDQueryHandler {
	return queries.NewGetTransactionByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsByUserQueryHandler() queries.GetShipmentsByUserQueryHandler {
	return queries.NewGetShipmentsByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTrackingEventsQueryHandler() queries.ListTrackingEventsQueryHandler {
	return queries.NewListTrackingEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTransactionByShipmentQueryHandler() queries.GetTransactionByShipmentQueryHandler {
	return queries.NewGetTransactionByShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnsettledShipmentsQueryHandler() queries.GetUnsettledShipmentsQueryHandler {
	return queries.NewGetUnsettledShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateGetUnsettledShipmentsQueryHandler()
	return jobs.NewJobManager(handler, c.maxPendingAge, c.logger)
}

// nopPublisher discards events; wired when Kafka is not configured so
// command handlers never care whether eventing is on.
type nopPublisher struct{}

func (nopPublisher) PublishStatusChanged(_ context.Context, _ kernel.UUID, _ shipment.Status) error {
	return nil
}

type FuncSpaceUoWFactory func() commands.SpaceUoW

func (f FuncSpaceUoWFactory) Create() commands.SpaceUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncTransactionUoWFactory func() commands.TransactionUoW

func (f FuncTransactionUoWFactory) Create() commands.TransactionUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
