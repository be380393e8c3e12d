package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(number string, aggregate interface{}) {
	m.Called(number, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	// Create valid order
	testOrder := suite.createTestOrder()

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testOrder.Number(), testOrder).Once()

	// Add order to repository
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Database assigns the identifier during insert
	suite.Positive(testOrder.ID())

	// Verify order and items were persisted
	suite.assertOrderCount(1)
	suite.assertItemCount(2)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_Fails() {
	ctx := context.Background()

	first := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", first.Number(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Second aggregate reusing the same number must hit the unique index
	items := suite.createTestItems()
	duplicate, err := order.NewOrder(
		first.Number(), 42, 7, order.Cash, "12 Rue de Rivoli, Paris", "", items)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.Number(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	// Retrieve order
	retrievedOrder, err := suite.repository.GetByNumber(ctx, originalOrder.Number())
	suite.Require().NoError(err)

	// Verify order details survived the round trip
	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.Number(), retrievedOrder.Number())
	suite.Equal(originalOrder.CustomerID(), retrievedOrder.CustomerID())
	suite.Equal(originalOrder.MerchantID(), retrievedOrder.MerchantID())
	suite.Equal(order.WaitingForConfirmation, retrievedOrder.Status())
	suite.Equal(order.PaymentPending, retrievedOrder.PaymentStatus())
	suite.True(originalOrder.TotalAmount().Equal(retrievedOrder.TotalAmount()),
		"expected total %s, got %s", originalOrder.TotalAmount(), retrievedOrder.TotalAmount())

	// Items come back in insertion order with their stored prices
	items := retrievedOrder.Items()
	suite.Require().Len(items, 2)
	suite.Equal(int64(101), items[0].MenuItemID())
	suite.Equal("Margherita Pizza", items[0].MenuItemName())
	suite.Equal(2, items[0].Quantity())
	suite.True(decimal.RequireFromString("25.00").Equal(items[0].TotalPrice()))
	suite.Equal(int64(102), items[1].MenuItemID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.GetByNumber(ctx, "ORD-0000000000000-FFFFFFFF")

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions() {
	testCases := []struct {
		name          string
		targetStatus  order.Status
		paymentStatus order.PaymentStatus
	}{
		{
			name:          "waiting to confirmed",
			targetStatus:  order.Confirmed,
			paymentStatus: order.PaymentCompleted,
		},
		{
			name:          "waiting to cancelled",
			targetStatus:  order.Cancelled,
			paymentStatus: order.PaymentRefunded,
		},
	}

	ctx := context.Background()
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			testOrder := suite.createTestOrder()
			suite.tracker.On("TrackAggregate", testOrder.Number(), testOrder).Twice()
			suite.Require().NoError(suite.repository.Add(ctx, testOrder))

			// Advance the aggregate and persist
			suite.Require().NoError(testOrder.UpdateStatus(tc.targetStatus))
			suite.Require().NoError(testOrder.UpdatePaymentStatus(tc.paymentStatus))
			suite.Require().NoError(suite.repository.Update(ctx, testOrder))

			// Retrieve and verify updated order
			retrievedOrder, err := suite.repository.GetByNumber(ctx, testOrder.Number())
			suite.Require().NoError(err)
			suite.Equal(tc.targetStatus, retrievedOrder.Status())
			suite.Equal(tc.paymentStatus, retrievedOrder.PaymentStatus())

			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DoesNotRewriteItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.Number(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.UpdateStatus(order.Confirmed))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// Items remain exactly as written at placement
	suite.assertItemCount(2)
	retrievedOrder, err := suite.repository.GetByNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.Len(retrievedOrder.Items(), 2)
	suite.True(testOrder.TotalAmount().Equal(retrievedOrder.TotalAmount()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	// Create order that doesn't exist in database
	nonExistentOrder := suite.createTestOrder()

	// No expectations on tracker since operation should fail

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with empty number",
			operation: func() error {
				_, err := suite.repository.GetByNumber(context.Background(), "")
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				_, err := suite.repository.GetByNumber(context.Background(), "ORD-1-MISSING")
				return err
			},
			expected: "not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	// Create initial order
	initialOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", initialOrder.Number(), initialOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, initialOrder))

	// Simulate concurrent reads
	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.GetByNumber(ctx, initialOrder.Number())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	// Collect results
	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.Number(), result.Number())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestItems creates two line items with known prices.
func (suite *OrderRepositoryIntegrationTestSuite) createTestItems() []order.Item {
	pizza, err := order.NewItem(101, "Margherita Pizza", 2, decimal.RequireFromString("12.50"), "extra basil")
	suite.Require().NoError(err)

	soda, err := order.NewItem(102, "Sparkling Water", 1, decimal.RequireFromString("3.00"), "")
	suite.Require().NoError(err)

	return []order.Item{pizza, soda}
}

// createTestOrder creates a basic test order with default values.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(
		order.NewOrderNumber(),
		1001,
		2001,
		order.CreditCard,
		"221B Baker Street, London",
		"ring the bell twice",
		suite.createTestItems(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of order items in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
