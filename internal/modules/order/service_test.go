package order

import (
	"context"
	"testing"
	"time"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/gemini"
	"bengkel/internal/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.ServiceOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *domain.ServiceOrder) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
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

func (m *MockEmployeeReader) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

type MockPaymentWriter struct {
	mock.Mock
}

func (m *MockPaymentWriter) Create(ctx context.Context, p *domain.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentWriter) ListByOrders(ctx context.Context, orderIDs []int64) ([]domain.Payment, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockMethodReader struct {
	mock.Mock
}

func (m *MockMethodReader) ListActive(ctx context.Context) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) SuggestPaymentMethod(ctx context.Context, prompt string, allowed []string) (*gemini.Suggestion, error) {
	args := m.Called(ctx, prompt, allowed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gemini.Suggestion), args.Error(1)
}

type fixture struct {
	orders    *MockOrderRepository
	parts     *MockPartReader
	customers *MockCustomerReader
	employees *MockEmployeeReader
	payments  *MockPaymentWriter
	methods   *MockMethodReader
	ai        *MockRecommender
	svc       *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ids, err := idgen.New(1)
	assert.NoError(t, err)

	f := &fixture{
		orders:    new(MockOrderRepository),
		parts:     new(MockPartReader),
		customers: new(MockCustomerReader),
		employees: new(MockEmployeeReader),
		payments:  new(MockPaymentWriter),
		methods:   new(MockMethodReader),
		ai:        new(MockRecommender),
	}
	f.svc = NewService(f.orders, f.parts, f.customers, f.employees, f.payments, f.methods, f.ai, ids)
	return f
}

func activeMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{ID: 1, Name: "Cash", Status: domain.StatusActive},
		{ID: 2, Name: "Transfer", Status: domain.StatusActive},
	}
}

func TestService_Create_SnapshotsCustomer(t *testing.T) {
	f := newFixture(t)
	f.customers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Customer{
		ID: 1, Name: "Andi Setiawan",
		Vehicles: []domain.Vehicle{{PlateNumber: "B 1234 ABC", Model: "Toyota Avanza"}},
	}, nil)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(nil)

	o, err := f.svc.Create(context.Background(), CreatePayload{
		CustomerID: 1,
		Vehicle:    "B 1234 ABC",
		Complaint:  "Ganti oli",
		MechanicID: 3,
		ServiceFee: 50000,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Andi Setiawan", o.Customer.Name)
	assert.Equal(t, "B 1234 ABC", o.Customer.Vehicle)
	assert.Equal(t, domain.ServiceQueued, o.Status)
	assert.Equal(t, domain.PaymentUnpaid, o.PaymentStatus)
	assert.Equal(t, float64(50000), o.TotalCost)
	assert.NotZero(t, o.ID)
}

func TestService_Create_UnknownCustomer(t *testing.T) {
	f := newFixture(t)
	f.customers.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Create(context.Background(), CreatePayload{
		CustomerID: 99, Vehicle: "X", Complaint: "x", MechanicID: 1,
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_AddPart_SnapshotsPriceAndRecalculates(t *testing.T) {
	f := newFixture(t)
	stored := &domain.ServiceOrder{
		ID:         10,
		PartsUsed:  []domain.OrderPart{},
		ServiceFee: 150000,
	}
	f.orders.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.parts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Part{
		ID: 1, Name: "Oli Mesin Super", SellPrice: 100000,
	}, nil)
	f.orders.On("Update", mock.Anything, mock.Anything).Return(nil)

	o, err := f.svc.AddPart(context.Background(), 10, AddPartPayload{PartID: 1, Quantity: 4})
	assert.NoError(t, err)
	assert.Len(t, o.PartsUsed, 1)
	assert.Equal(t, float64(100000), o.PartsUsed[0].UnitPrice)
	assert.Equal(t, float64(550000), o.TotalCost)
}

func TestService_AddPart_MergesSamePart(t *testing.T) {
	f := newFixture(t)
	stored := &domain.ServiceOrder{
		ID: 10,
		PartsUsed: []domain.OrderPart{
			{PartID: 1, Quantity: 2, UnitPrice: 100000},
		},
	}
	f.orders.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.parts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Part{
		ID: 1, SellPrice: 120000,
	}, nil)
	f.orders.On("Update", mock.Anything, mock.Anything).Return(nil)

	o, err := f.svc.AddPart(context.Background(), 10, AddPartPayload{PartID: 1, Quantity: 2})
	assert.NoError(t, err)
	assert.Len(t, o.PartsUsed, 1)
	assert.Equal(t, 4, o.PartsUsed[0].Quantity)
	// The merged line keeps the price snapshotted when it was first added.
	assert.Equal(t, float64(100000), o.PartsUsed[0].UnitPrice)
	assert.Equal(t, float64(400000), o.TotalCost)
}

func TestService_RemovePart_Recalculates(t *testing.T) {
	f := newFixture(t)
	stored := &domain.ServiceOrder{
		ID: 10,
		PartsUsed: []domain.OrderPart{
			{PartID: 1, Quantity: 4, UnitPrice: 100000},
			{PartID: 2, Quantity: 1, UnitPrice: 30000},
		},
		ServiceFee: 150000,
	}
	f.orders.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.orders.On("Update", mock.Anything, mock.Anything).Return(nil)

	o, err := f.svc.RemovePart(context.Background(), 10, 2)
	assert.NoError(t, err)
	assert.Len(t, o.PartsUsed, 1)
	assert.Equal(t, float64(550000), o.TotalCost)
}

func TestService_RecordPayment_FlipsOrderToPaid(t *testing.T) {
	f := newFixture(t)
	stored := &domain.ServiceOrder{
		ID: 10,
		PartsUsed: []domain.OrderPart{
			{PartID: 1, Quantity: 4, UnitPrice: 100000},
			{PartID: 2, Quantity: 1, UnitPrice: 30000},
		},
		ServiceFee:    150000,
		PaymentStatus: domain.PaymentUnpaid,
	}
	f.methods.On("ListActive", mock.Anything).Return(activeMethods(), nil)
	f.orders.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.orders.On("Update", mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.RecordPayment(context.Background(), 10, PaymentRequest{Method: "Cash"})
	assert.NoError(t, err)
	assert.Equal(t, float64(580000), res.Payment.Amount)
	assert.Equal(t, "Cash", res.Payment.Method)
	assert.Equal(t, int64(10), res.Payment.OrderID)
	assert.Equal(t, time.Now().Format("2006-01-02"), res.Payment.Date)
	assert.Equal(t, domain.PaymentPaid, res.Order.PaymentStatus)
}

func TestService_RecordPayment_KeepsSessionEdits(t *testing.T) {
	f := newFixture(t)
	stored := &domain.ServiceOrder{
		ID:            10,
		Complaint:     "Ganti oli",
		Status:        domain.ServiceInProgress,
		ServiceFee:    100000,
		PaymentStatus: domain.PaymentUnpaid,
	}
	f.methods.On("ListActive", mock.Anything).Return(activeMethods(), nil)
	f.orders.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.orders.On("Update", mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.RecordPayment(context.Background(), 10, PaymentRequest{
		Method: "Transfer",
		Order: &SessionEdit{
			Status:     "done",
			ServiceFee: 250000,
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.ServiceDone, res.Order.Status)
	assert.Equal(t, float64(250000), res.Order.ServiceFee)
	assert.Equal(t, float64(250000), res.Payment.Amount)
}

func TestService_RecordPayment_OrderDeletedMeanwhile(t *testing.T) {
	f := newFixture(t)
	f.methods.On("ListActive", mock.Anything).Return(activeMethods(), nil)
	f.orders.On("GetByID", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)
	f.payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.RecordPayment(context.Background(), 10, PaymentRequest{
		Method: "Cash",
		Order:  &SessionEdit{ServiceFee: 75000},
	})
	assert.NoError(t, err)
	assert.Nil(t, res.Order)
	assert.Equal(t, int64(10), res.Payment.OrderID)
	assert.Equal(t, float64(75000), res.Payment.Amount)
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_RecordPayment_InactiveMethod(t *testing.T) {
	f := newFixture(t)
	f.methods.On("ListActive", mock.Anything).Return(activeMethods(), nil)

	_, err := f.svc.RecordPayment(context.Background(), 10, PaymentRequest{Method: "Kartu Kredit"})
	assert.ErrorIs(t, err, ErrMethodNotAllowed)
	f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Recommend(t *testing.T) {
	f := newFixture(t)
	stored := &domain.ServiceOrder{
		ID:        10,
		Customer:  domain.OrderCustomer{ID: 1, Name: "Andi Setiawan"},
		TotalCost: 580000,
	}
	f.orders.On("GetByID", mock.Anything, int64(10)).Return(stored, nil)
	f.methods.On("ListActive", mock.Anything).Return(activeMethods(), nil)
	f.orders.On("ListByCustomer", mock.Anything, int64(1)).Return([]domain.ServiceOrder{*stored}, nil)
	f.payments.On("ListByOrders", mock.Anything, []int64{10}).Return([]domain.Payment{
		{ID: 1, OrderID: 10, Method: "Cash"},
	}, nil)
	f.ai.On("SuggestPaymentMethod", mock.Anything, mock.Anything, []string{"Cash", "Transfer"}).
		Return(&gemini.Suggestion{RecommendedMethod: "Cash", Reason: "Pelanggan terbiasa membayar tunai."}, nil)

	rec, err := f.svc.Recommend(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, "Cash", rec.RecommendedMethod)
	assert.NotEmpty(t, rec.Reason)

	prompt := f.ai.Calls[0].Arguments.String(1)
	assert.Contains(t, prompt, "Andi Setiawan")
	assert.Contains(t, prompt, "Cash 1 kali")
}

func TestService_Recommend_NoActiveMethods(t *testing.T) {
	f := newFixture(t)
	f.orders.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceOrder{ID: 10}, nil)
	f.methods.On("ListActive", mock.Anything).Return([]domain.PaymentMethod{}, nil)

	_, err := f.svc.Recommend(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNoActiveMethods)
}
