package queries_test

import (
	"context"
	"time"

	"refillstation/internal/adapters/out/postgres/gaterepo"
	"refillstation/internal/adapters/out/postgres/orderrepo"
	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stubAggregateTracker satisfies the repository's tracker dependency for
// read-side tests that only seed data.
type stubAggregateTracker struct{}

func (stubAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// PostgresQuerySuite is the shared fixture for query handler integration
// tests. It runs a PostgreSQL container, migrates the schema and exposes
// seeding helpers; each handler suite embeds it.
type PostgresQuerySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	gateRepo  *gaterepo.GormWebsiteGateRepository
}

func (suite *PostgresQuerySuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &gaterepo.WebsiteGateDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, stubAggregateTracker{})
	suite.gateRepo = gaterepo.NewGormWebsiteGateRepository(db)
}

func (suite *PostgresQuerySuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE website_gate").Error)
}

func (suite *PostgresQuerySuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// seedOrder creates and stores a website order for the given customer, moving
// it to the target status via a staff transition when needed.
func (suite *PostgresQuerySuite) seedOrder(
	customerID kernel.UUID,
	name string,
	hasContainer bool,
	delivery bool,
	status order.Status,
	createdAt time.Time,
) *order.Order {
	address := ""
	if delivery {
		address = "123 Main St"
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, name, "09123456789", address, hasContainer, delivery, createdAt)
	suite.Require().NoError(err)

	if status != order.Pending {
		suite.Require().NoError(o.ChangeStatus(status, order.ActorStaff, createdAt))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

// seedWalkInOrder creates and stores a walk-in order, which lands directly in
// the Delivered status with no customer reference.
func (suite *PostgresQuerySuite) seedWalkInOrder(name string, createdAt time.Time) *order.Order {
	o, err := order.NewWalkInOrder(kernel.NewUUID(), name, "09998887777", "", false, false, createdAt)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}
