package queries_test

import (
	"context"
	"testing"
	"time"

	"refillstation/internal/core/application/usecases/queries"
	"refillstation/internal/core/domain/model/kernel"
	"refillstation/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type GetMonthlySalesQueryHandlerTestSuite struct {
	PostgresQuerySuite
	handler queries.GetMonthlySalesQueryHandler
}

func (suite *GetMonthlySalesQueryHandlerTestSuite) SetupSuite() {
	suite.PostgresQuerySuite.SetupSuite()
	suite.handler = queries.NewGetMonthlySalesQueryHandler(suite.db)
}

func (suite *GetMonthlySalesQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsZero() {
	query, err := queries.NewGetMonthlySalesQuery(2025, time.March)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(0, result.TotalSales)
	suite.Equal(0, result.OrderCount)
	suite.Equal(2025, result.Year)
	suite.Equal(time.March, result.Month)
}

func (suite *GetMonthlySalesQueryHandlerTestSuite) TestHandle_CountsOnlyDeliveredOrders() {
	march := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	// 25 + 200, walk-ins included since they are delivered
	suite.seedOrder(kernel.NewUUID(), "Ana Reyes", true, false, order.Delivered, march)
	suite.seedWalkInOrder("Ben Cruz", march)

	// not sales: pending, cancelled, on the way
	suite.seedOrder(kernel.NewUUID(), "Cara Lim", true, true, order.Pending, march)
	suite.seedOrder(kernel.NewUUID(), "Dan Ong", true, true, order.Cancelled, march)
	suite.seedOrder(kernel.NewUUID(), "Eva Tan", true, true, order.OnTheWay, march)

	query, err := queries.NewGetMonthlySalesQuery(2025, time.March)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(order.ContainerPurchasePrice+order.RefillPickupPrice, result.TotalSales)
	suite.Equal(2, result.OrderCount)
}

func (suite *GetMonthlySalesQueryHandlerTestSuite) TestHandle_RespectsMonthBoundaries() {
	endOfFebruary := time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC)
	startOfMarch := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	startOfApril := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	suite.seedOrder(kernel.NewUUID(), "Ana Reyes", true, true, order.Delivered, endOfFebruary)
	suite.seedOrder(kernel.NewUUID(), "Ben Cruz", true, true, order.Delivered, startOfMarch)
	suite.seedOrder(kernel.NewUUID(), "Cara Lim", true, true, order.Delivered, startOfApril)

	query, err := queries.NewGetMonthlySalesQuery(2025, time.March)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(order.RefillDeliveryPrice, result.TotalSales)
	suite.Equal(1, result.OrderCount)
}

func (suite *GetMonthlySalesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetMonthlySalesQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetMonthlySalesQuery constructor")
}

func TestGetMonthlySalesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMonthlySalesQueryHandlerTestSuite))
}
