package supplier

import (
	"context"
	"testing"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupplierRepository) Update(ctx context.Context, s *domain.Supplier) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupplierRepository) AppendPurchase(ctx context.Context, id int64, p domain.Purchase) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockStockAdjuster struct {
	mock.Mock
}

func (m *MockStockAdjuster) AdjustStock(ctx context.Context, id int64, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func newService(t *testing.T, suppliers SupplierRepository, parts StockAdjuster) *Service {
	t.Helper()
	ids, err := idgen.New(1)
	require.NoError(t, err)
	return NewService(suppliers, parts, ids)
}

func TestService_RecordPurchase(t *testing.T) {
	suppliers := new(MockSupplierRepository)
	parts := new(MockStockAdjuster)

	purchase := domain.Purchase{Date: "2023-11-01", PartID: 3, Quantity: 10, BuyPrice: 150000}
	parts.On("AdjustStock", mock.Anything, int64(3), 10).Return(nil)
	suppliers.On("AppendPurchase", mock.Anything, int64(1), purchase).Return(nil)
	suppliers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Supplier{
		ID: 1, Name: "PT Suku Cadang Jaya", PurchaseHistory: []domain.Purchase{purchase},
	}, nil)

	svc := newService(t, suppliers, parts)
	got, err := svc.RecordPurchase(context.Background(), 1, PurchasePayload{
		PartID: 3, Quantity: 10, BuyPrice: 150000, Date: "2023-11-01",
	})
	assert.NoError(t, err)
	require.Len(t, got.PurchaseHistory, 1)
	assert.Equal(t, 10, got.PurchaseHistory[0].Quantity)
	parts.AssertExpectations(t)
	suppliers.AssertExpectations(t)
}

func TestService_RecordPurchase_UnknownPart(t *testing.T) {
	suppliers := new(MockSupplierRepository)
	parts := new(MockStockAdjuster)
	parts.On("AdjustStock", mock.Anything, int64(99), 5).Return(gorm.ErrRecordNotFound)

	svc := newService(t, suppliers, parts)
	_, err := svc.RecordPurchase(context.Background(), 1, PurchasePayload{PartID: 99, Quantity: 5})
	assert.ErrorIs(t, err, ErrPartNotFound)
	suppliers.AssertNotCalled(t, "AppendPurchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_CarriesPurchaseHistory(t *testing.T) {
	suppliers := new(MockSupplierRepository)
	history := []domain.Purchase{{Date: "2023-11-01", PartID: 1, Quantity: 2, BuyPrice: 75000}}
	suppliers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Supplier{
		ID: 1, Name: "PT Suku Cadang Jaya", Status: domain.StatusActive, PurchaseHistory: history,
	}, nil)
	suppliers.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := newService(t, suppliers, new(MockStockAdjuster))
	got, err := svc.Update(context.Background(), 1, SupplierPayload{
		Name: "PT Suku Cadang Makmur", Contact: "021-1", Address: "Jakarta", Status: "inactive",
	})
	assert.NoError(t, err)
	assert.Equal(t, "PT Suku Cadang Makmur", got.Name)
	assert.Equal(t, domain.StatusInactive, got.Status)
	assert.Equal(t, history, got.PurchaseHistory)
}

func TestService_Update_UnknownIDIsNoOp(t *testing.T) {
	suppliers := new(MockSupplierRepository)
	suppliers.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := newService(t, suppliers, new(MockStockAdjuster))
	got, err := svc.Update(context.Background(), 99, SupplierPayload{Name: "X", Contact: "1", Address: "Y"})
	assert.NoError(t, err)
	assert.Nil(t, got)
	suppliers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
