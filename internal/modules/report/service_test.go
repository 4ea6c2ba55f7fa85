package report

import (
	"context"
	"testing"

	"bengkel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) List(ctx context.Context) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderReader) ListRecent(ctx context.Context, limit int) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

type MockPaymentReader struct {
	mock.Mock
}

func (m *MockPaymentReader) List(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockPartReader struct {
	mock.Mock
}

func (m *MockPartReader) ListBelowStock(ctx context.Context, threshold int) ([]domain.Part, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]domain.Part), args.Error(1)
}

type MockCustomerReader struct {
	mock.Mock
}

func (m *MockCustomerReader) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func TestService_Dashboard(t *testing.T) {
	orders := new(MockOrderReader)
	payments := new(MockPaymentReader)
	parts := new(MockPartReader)
	customers := new(MockCustomerReader)

	payments.On("List", mock.Anything).Return([]domain.Payment{
		{ID: 1, Amount: 580000},
		{ID: 2, Amount: 200000},
	}, nil)
	orderList := []domain.ServiceOrder{
		{ID: 1, Status: domain.ServiceDone},
		{ID: 2, Status: domain.ServiceInProgress},
		{ID: 3, Status: domain.ServiceQueued},
	}
	orders.On("List", mock.Anything).Return(orderList, nil)
	orders.On("ListRecent", mock.Anything, 5).Return(orderList, nil)
	parts.On("ListBelowStock", mock.Anything, 5).Return([]domain.Part{
		{ID: 3, Name: "Kampas Rem Depan", Stock: 4},
	}, nil)
	customers.On("List", mock.Anything).Return([]domain.Customer{{ID: 1}, {ID: 2}}, nil)

	svc := NewService(orders, payments, parts, customers)
	dash, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, float64(780000), dash.TotalRevenue)
	assert.Equal(t, 2, dash.ActiveOrders)
	assert.Equal(t, 1, dash.LowStockCount)
	assert.Equal(t, 2, dash.CustomerCount)
	assert.Equal(t, 1, dash.StatusCounts[domain.ServiceDone])
	assert.Len(t, dash.RecentOrders, 3)
}

func TestService_Report_GroupsRevenueByDate(t *testing.T) {
	orders := new(MockOrderReader)
	payments := new(MockPaymentReader)
	parts := new(MockPartReader)
	customers := new(MockCustomerReader)

	payments.On("List", mock.Anything).Return([]domain.Payment{
		{ID: 1, Amount: 100000, Date: "2023-10-28"},
		{ID: 2, Amount: 580000, Date: "2023-10-27"},
		{ID: 3, Amount: 50000, Date: "2023-10-28"},
	}, nil)
	orders.On("List", mock.Anything).Return([]domain.ServiceOrder{
		{ID: 1, Status: domain.ServiceQueued},
	}, nil)
	parts.On("ListBelowStock", mock.Anything, 10).Return([]domain.Part{
		{ID: 3, Stock: 4},
	}, nil)

	svc := NewService(orders, payments, parts, customers)
	rep, err := svc.Report(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []DailyRevenue{
		{Date: "2023-10-27", Total: 580000},
		{Date: "2023-10-28", Total: 150000},
	}, rep.DailyRevenue)
	assert.Equal(t, 1, rep.StatusCounts[domain.ServiceQueued])
	assert.Len(t, rep.LowStockParts, 1)
}
