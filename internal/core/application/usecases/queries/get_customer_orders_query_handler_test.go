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

type GetCustomerOrdersQueryHandlerTestSuite struct {
	PostgresQuerySuite
	handler queries.GetCustomerOrdersQueryHandler
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.PostgresQuerySuite.SetupSuite()
	suite.handler = queries.NewGetCustomerOrdersQueryHandler(suite.db)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyThatCustomersOrders() {
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	mine := suite.seedOrder(customerID, "Ana Reyes", true, true, order.Pending, base)
	suite.seedOrder(otherID, "Ben Cruz", false, false, order.Pending, base)
	suite.seedWalkInOrder("Cara Lim", base)

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(mine.ID()))
	suite.Require().NotNil(result[0].CustomerID)
	suite.True(result[0].CustomerID.IsEqual(customerID))
	suite.Equal("Ana Reyes", result[0].CustomerName)
	suite.Equal("Pending", result[0].Status)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_NewestFirst() {
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()

	oldest := suite.seedOrder(customerID, "Ana Reyes", true, true, order.Delivered, base.Add(-48*time.Hour))
	middle := suite.seedOrder(customerID, "Ana Reyes", true, false, order.Cancelled, base.Add(-24*time.Hour))
	newest := suite.seedOrder(customerID, "Ana Reyes", false, true, order.Pending, base)

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(newest.ID()))
	suite.True(result[1].ID.IsEqual(middle.ID()))
	suite.True(result[2].ID.IsEqual(oldest.ID()))
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	customerID := kernel.NewUUID()

	seeded := suite.seedOrder(customerID, "Ana Reyes", false, true, order.OnTheWay, base)

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	got := result[0]
	suite.Equal("123 Main St", got.Address)
	suite.False(got.HasContainer)
	suite.True(got.Delivery)
	suite.Equal(order.ContainerPurchasePrice, got.Price)
	suite.Equal("OnTheWay", got.Status)
	suite.True(seeded.CreatedAt().Equal(got.CreatedAt))
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCustomerOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCustomerOrdersQuery constructor")
}

func TestGetCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCustomerOrdersQueryHandlerTestSuite))
}
