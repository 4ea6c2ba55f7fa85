package payment

import (
	"context"
	"testing"

	"bengkel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) List(ctx context.Context) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderReader) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

type MockCustomerReader struct {
	mock.Mock
}

func (m *MockCustomerReader) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockEmployeeReader struct {
	mock.Mock
}

func (m *MockEmployeeReader) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

type MockPartReader struct {
	mock.Mock
}

func (m *MockPartReader) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func TestService_List_MarksOrphans(t *testing.T) {
	payments := new(MockPaymentRepository)
	orders := new(MockOrderReader)

	payments.On("List", mock.Anything).Return([]domain.Payment{
		{ID: 1, OrderID: 1, Amount: 580000, Method: "Cash"},
		{ID: 2, OrderID: 99, Amount: 100000, Method: "Transfer"},
	}, nil)
	orders.On("List", mock.Anything).Return([]domain.ServiceOrder{
		{ID: 1, Customer: domain.OrderCustomer{Name: "Andi Setiawan"}},
	}, nil)

	svc := NewService(payments, orders, new(MockCustomerReader), new(MockEmployeeReader), new(MockPartReader))
	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Andi Setiawan", got[0].CustomerName)
	assert.Equal(t, "N/A", got[1].CustomerName)
}

func TestService_Invoice(t *testing.T) {
	payments := new(MockPaymentRepository)
	orders := new(MockOrderReader)
	customers := new(MockCustomerReader)
	employees := new(MockEmployeeReader)
	parts := new(MockPartReader)

	orders.On("GetByID", mock.Anything, int64(1)).Return(&domain.ServiceOrder{
		ID:         1,
		Customer:   domain.OrderCustomer{ID: 1, Name: "Andi Setiawan", Vehicle: "B 1234 ABC"},
		Complaint:  "Ganti oli dan cek rem",
		MechanicID: 3,
		Date:       "2023-10-27",
		PartsUsed: []domain.OrderPart{
			{PartID: 1, Quantity: 4, UnitPrice: 100000},
			{PartID: 77, Quantity: 1, UnitPrice: 30000},
		},
		ServiceFee:    150000,
		TotalCost:     580000,
		PaymentStatus: domain.PaymentPaid,
	}, nil)
	customers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Customer{
		ID: 1, Name: "Andi Setiawan", Phone: "081234567890", Address: "Jl. Merdeka 1",
		Vehicles: []domain.Vehicle{{PlateNumber: "B 1234 ABC", Model: "Toyota Avanza"}},
	}, nil)
	employees.On("GetByID", mock.Anything, int64(3)).Return(&domain.Employee{
		ID: 3, Name: "Charlie Mekanik",
	}, nil)
	parts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Part{ID: 1, Name: "Oli Mesin Super"}, nil)
	parts.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(payments, orders, customers, employees, parts)
	inv, err := svc.Invoice(context.Background(), 1)
	assert.NoError(t, err)

	assert.Equal(t, domain.DefaultProfile.Name, inv.Workshop.Name)
	assert.Equal(t, "Jl. Merdeka 1", inv.CustomerAddress)
	assert.Equal(t, "Toyota Avanza", inv.VehicleModel)
	assert.Equal(t, "Charlie Mekanik", inv.MechanicName)
	assert.Equal(t, float64(430000), inv.PartsSubtotal)
	assert.Equal(t, float64(580000), inv.TotalCost)

	assert.Equal(t, "Oli Mesin Super", inv.Lines[0].Name)
	assert.Equal(t, float64(400000), inv.Lines[0].LineTotal)
	assert.Equal(t, "Suku Cadang Dihapus", inv.Lines[1].Name)
}

func TestService_Invoice_UnknownOrder(t *testing.T) {
	orders := new(MockOrderReader)
	orders.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(new(MockPaymentRepository), orders, new(MockCustomerReader), new(MockEmployeeReader), new(MockPartReader))
	_, err := svc.Invoice(context.Background(), 42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestService_Invoice_DeletedCustomer(t *testing.T) {
	orders := new(MockOrderReader)
	customers := new(MockCustomerReader)
	employees := new(MockEmployeeReader)

	orders.On("GetByID", mock.Anything, int64(1)).Return(&domain.ServiceOrder{
		ID:       1,
		Customer: domain.OrderCustomer{ID: 9, Name: "Andi Setiawan", Vehicle: "B 1234 ABC"},
	}, nil)
	customers.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)
	employees.On("GetByID", mock.Anything, int64(0)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(new(MockPaymentRepository), orders, customers, employees, new(MockPartReader))
	inv, err := svc.Invoice(context.Background(), 1)
	assert.NoError(t, err)

	// The snapshot keeps the name; everything else degrades to placeholders.
	assert.Equal(t, "Andi Setiawan", inv.CustomerName)
	assert.Equal(t, "N/A", inv.CustomerAddress)
	assert.Equal(t, "N/A", inv.VehicleModel)
	assert.Equal(t, "N/A", inv.MechanicName)
}
