package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nikhilx/zomato-spend-analyzer/internal/core/domain"
	"github.com/nikhilx/zomato-spend-analyzer/internal/storage"
	"github.com/nikhilx/zomato-spend-analyzer/test"
)

func TestOrders(t *testing.T) {
	suite.Run(t, new(OrdersSuite))
}

type OrdersSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	storage          *storage.OrderStorage
}

func (suite *OrdersSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	if !suite.T().Failed() {
		ctx := context.Background()
		postgresDB, err := storage.NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
		if err != nil {
			suite.T().Fatalf("Failed to connect to database: %v", err)
		}

		suite.storage = storage.NewOrderStorage(postgresDB)
	}
}

func (suite *OrdersSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/create_tables.sql")
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/fixtures.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *OrdersSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func newOrder(id string, date time.Time, total string) domain.Order {
	t := decimal.RequireFromString(total)
	return domain.Order{
		OrderID:        id,
		OrderDate:      date,
		RestaurantName: "Kake Da Hotel",
		Amount:         t,
		TotalAmount:    t,
		Status:         domain.StatusCompleted,
		RawSnippet:     "test row",
	}
}

func (suite *OrdersSuite) TestUpsertOrder_InsertThenUpdate() {
	ctx := context.Background()
	order := newOrder("ITEST001", time.Date(2021, time.June, 5, 9, 0, 0, 0, time.UTC), "440.00")

	inserted, err := suite.storage.UpsertOrder(ctx, order, true)
	suite.NoError(err)
	suite.True(inserted)

	order.TotalAmount = decimal.RequireFromString("500.00")
	inserted, err = suite.storage.UpsertOrder(ctx, order, true)
	suite.NoError(err)
	suite.False(inserted, "second upsert must report an update")

	count, err := suite.storage.CountOrders(ctx)
	suite.NoError(err)
	suite.Equal(3, count)
}

func (suite *OrdersSuite) TestUpsertOrder_InsertOnlySkipsExisting() {
	ctx := context.Background()
	order := newOrder("SEED0001", time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), "999.00")

	inserted, err := suite.storage.UpsertOrder(ctx, order, false)
	suite.NoError(err)
	suite.False(inserted)

	// The seed row is untouched.
	orders, err := suite.storage.GetOrdersByYear(ctx, 2020)
	suite.NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].TotalAmount.Equal(decimal.RequireFromString("400.00")))
}

func (suite *OrdersSuite) TestBulkUpsert_Incremental() {
	ctx := context.Background()
	batch := []domain.Order{
		newOrder("BULK0001", time.Date(2021, time.June, 5, 9, 0, 0, 0, time.UTC), "300.00"),
		newOrder("SEED0002", time.Date(2021, time.March, 9, 19, 30, 0, 0, time.UTC), "777.00"),
	}

	stats, err := suite.storage.BulkUpsert(ctx, batch, false)
	suite.NoError(err)
	suite.Equal(domain.UpsertStats{Inserted: 1, Skipped: 1}, stats)
}

func (suite *OrdersSuite) TestBulkUpsert_ForceRewrites() {
	ctx := context.Background()
	batch := []domain.Order{
		newOrder("BULK0001", time.Date(2021, time.June, 5, 9, 0, 0, 0, time.UTC), "300.00"),
		newOrder("SEED0002", time.Date(2021, time.March, 9, 19, 30, 0, 0, time.UTC), "777.00"),
	}

	stats, err := suite.storage.BulkUpsert(ctx, batch, true)
	suite.NoError(err)
	suite.Equal(domain.UpsertStats{Inserted: 1, Updated: 1}, stats)

	orders, err := suite.storage.GetOrdersByMonth(ctx, 2021, time.March)
	suite.NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].TotalAmount.Equal(decimal.RequireFromString("777.00")))
}

func (suite *OrdersSuite) TestGetAllOrders_NewestFirst() {
	ctx := context.Background()
	orders, err := suite.storage.GetAllOrders(ctx)
	suite.NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("SEED0002", orders[0].OrderID)
	suite.Equal("SEED0001", orders[1].OrderID)
	suite.Equal("Pind Balluchi", orders[0].RestaurantName)
}
