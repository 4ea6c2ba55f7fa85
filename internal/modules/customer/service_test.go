package customer

import (
	"context"
	"testing"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_Create_AssignsID(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	ids, err := idgen.New(1)
	require.NoError(t, err)

	svc := NewService(repo, ids)
	c, err := svc.Create(context.Background(), CustomerPayload{
		Name: "Andi Setiawan", Phone: "081234567890", Address: "Jl. Merdeka 1",
		Vehicles: []VehiclePayload{{PlateNumber: "B 1234 ABC", Model: "Toyota Avanza"}},
	})
	assert.NoError(t, err)
	assert.NotZero(t, c.ID)
	require.Len(t, c.Vehicles, 1)
	assert.Equal(t, "Toyota Avanza", c.Vehicles[0].Model)
}

func TestService_ExportRows_RendersVehicles(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("List", mock.Anything).Return([]domain.Customer{
		{
			ID: 1, Name: "Andi Setiawan", Phone: "081234567890", Address: "Jl. Merdeka 1",
			Vehicles: []domain.Vehicle{
				{PlateNumber: "B 1234 ABC", Model: "Toyota Avanza"},
				{PlateNumber: "B 99 ZZ", Model: "Daihatsu Sigra"},
			},
		},
		{ID: 2, Name: "Siti Aminah", Phone: "081234567891", Address: "Jl. Sudirman 2"},
	}, nil)

	ids, err := idgen.New(1)
	require.NoError(t, err)

	svc := NewService(repo, ids)
	rows, err := svc.ExportRows(context.Background())
	assert.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Toyota Avanza (B 1234 ABC); Daihatsu Sigra (B 99 ZZ)", rows[0].Vehicles)
	assert.Empty(t, rows[1].Vehicles)
}
