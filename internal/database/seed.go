package database

import (
	"context"
	"fmt"

	"bengkel/internal/domain"
	"bengkel/internal/repository"

	"gorm.io/gorm"
)

// Seed fills every empty collection with the built-in starter dataset, so a
// fresh install (or a wiped database) always comes up with the same records.
// Collections that already hold data are left alone.
func Seed(ctx context.Context, db *gorm.DB) error {
	users := repository.NewUserRepository(db)
	existing, err := users.List(ctx)
	if err != nil {
		return fmt.Errorf("seed precheck failed: %w", err)
	}
	if len(existing) == 0 {
		for _, u := range seedUsers() {
			u := u
			if err := users.Create(ctx, &u); err != nil {
				return fmt.Errorf("seed users: %w", err)
			}
		}
	}

	customers := repository.NewCustomerRepository(db)
	if cs, err := customers.List(ctx); err != nil {
		return err
	} else if len(cs) == 0 {
		for _, c := range seedCustomers() {
			c := c
			if err := customers.Create(ctx, &c); err != nil {
				return fmt.Errorf("seed customers: %w", err)
			}
		}
	}

	employees := repository.NewEmployeeRepository(db)
	if es, err := employees.List(ctx); err != nil {
		return err
	} else if len(es) == 0 {
		for _, e := range seedEmployees() {
			e := e
			if err := employees.Create(ctx, &e); err != nil {
				return fmt.Errorf("seed employees: %w", err)
			}
		}
	}

	parts := repository.NewPartRepository(db)
	if ps, err := parts.List(ctx); err != nil {
		return err
	} else if len(ps) == 0 {
		for _, p := range seedParts() {
			p := p
			if err := parts.Create(ctx, &p); err != nil {
				return fmt.Errorf("seed parts: %w", err)
			}
		}
	}

	suppliers := repository.NewSupplierRepository(db)
	if ss, err := suppliers.List(ctx); err != nil {
		return err
	} else if len(ss) == 0 {
		for _, s := range seedSuppliers() {
			s := s
			if err := suppliers.Create(ctx, &s); err != nil {
				return fmt.Errorf("seed suppliers: %w", err)
			}
		}
	}

	orders := repository.NewOrderRepository(db)
	if os, err := orders.List(ctx); err != nil {
		return err
	} else if len(os) == 0 {
		for _, o := range seedOrders() {
			o := o
			if err := orders.Create(ctx, &o); err != nil {
				return fmt.Errorf("seed orders: %w", err)
			}
		}
	}

	methods := repository.NewPaymentMethodRepository(db)
	if ms, err := methods.List(ctx); err != nil {
		return err
	} else if len(ms) == 0 {
		for _, m := range seedPaymentMethods() {
			m := m
			if err := methods.Create(ctx, &m); err != nil {
				return fmt.Errorf("seed payment methods: %w", err)
			}
		}
	}

	payments := repository.NewPaymentRepository(db)
	if ps, err := payments.List(ctx); err != nil {
		return err
	} else if len(ps) == 0 {
		for _, p := range seedPayments() {
			p := p
			if err := payments.Create(ctx, &p); err != nil {
				return fmt.Errorf("seed payments: %w", err)
			}
		}
	}

	return nil
}

// Reset wipes every collection and reseeds from scratch. This is the
// "reset data to default" danger-zone action of the settings screen.
func Reset(ctx context.Context, db *gorm.DB) error {
	for _, table := range repository.Tables() {
		if err := db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return Seed(ctx, db)
}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Admin Utama", Username: "admin", Role: domain.RoleAdmin},
		{ID: 2, Name: "Budi Kasir", Username: "kasir", Role: domain.RoleCashier},
		{ID: 3, Name: "Charlie Mekanik", Username: "mekanik", Role: domain.RoleMechanic},
	}
}

func seedCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID: 1, Name: "Andi Setiawan", Phone: "081234567890", Address: "Jl. Merdeka 1",
			Email:    "andi@email.com",
			Vehicles: []domain.Vehicle{{PlateNumber: "B 1234 ABC", Model: "Toyota Avanza"}},
		},
		{
			ID: 2, Name: "Siti Aminah", Phone: "081234567891", Address: "Jl. Sudirman 2",
			Vehicles: []domain.Vehicle{{PlateNumber: "D 5678 DEF", Model: "Honda Brio"}},
		},
	}
}

func seedEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: 1, Name: "Admin Utama", Role: domain.RoleAdmin, Phone: "08111", Status: domain.StatusActive},
		{ID: 2, Name: "Budi Kasir", Role: domain.RoleCashier, Phone: "08222", Status: domain.StatusActive},
		{ID: 3, Name: "Charlie Mekanik", Role: domain.RoleMechanic, Phone: "08333", Status: domain.StatusActive, Specialization: "Mesin & Transmisi"},
		{ID: 4, Name: "Doni Mekanik", Role: domain.RoleMechanic, Phone: "08444", Status: domain.StatusActive, Specialization: "Kelistrikan & AC"},
	}
}

func seedParts() []domain.Part {
	return []domain.Part{
		{ID: 1, Name: "Oli Mesin Super", Category: "Oli", Stock: 50, BuyPrice: 75000, SellPrice: 100000, Unit: "Liter"},
		{ID: 2, Name: "Filter Oli DX", Category: "Filter", Stock: 100, BuyPrice: 20000, SellPrice: 30000, Unit: "Pcs"},
		{ID: 3, Name: "Kampas Rem Depan", Category: "Rem", Stock: 4, BuyPrice: 150000, SellPrice: 200000, Unit: "Set"},
		{ID: 4, Name: "Busi Iridium", Category: "Pengapian", Stock: 80, BuyPrice: 25000, SellPrice: 40000, Unit: "Pcs"},
	}
}

func seedSuppliers() []domain.Supplier {
	return []domain.Supplier{
		{ID: 1, Name: "PT Suku Cadang Jaya", Contact: "021-555-1234", Address: "Jakarta", Status: domain.StatusActive, PurchaseHistory: []domain.Purchase{}},
		{ID: 2, Name: "CV Oli Mantap", Contact: "022-555-5678", Address: "Bandung", Status: domain.StatusActive, PurchaseHistory: []domain.Purchase{}},
	}
}

func seedOrders() []domain.ServiceOrder {
	return []domain.ServiceOrder{
		{
			ID:         1,
			Customer:   domain.OrderCustomer{ID: 1, Name: "Andi Setiawan", Vehicle: "B 1234 ABC"},
			Complaint:  "Ganti oli dan cek rem",
			MechanicID: 3,
			Date:       "2023-10-27",
			Status:     domain.ServiceDone,
			PartsUsed: []domain.OrderPart{
				{PartID: 1, Quantity: 4, UnitPrice: 100000},
				{PartID: 2, Quantity: 1, UnitPrice: 30000},
			},
			ServiceFee:    150000,
			TotalCost:     580000,
			PaymentStatus: domain.PaymentPaid,
		},
		{
			ID:            2,
			Customer:      domain.OrderCustomer{ID: 2, Name: "Siti Aminah", Vehicle: "D 5678 DEF"},
			Complaint:     "Mesin brebet saat RPM rendah",
			MechanicID:    4,
			Date:          "2023-10-28",
			Status:        domain.ServiceInProgress,
			PartsUsed:     []domain.OrderPart{},
			ServiceFee:    200000,
			TotalCost:     200000,
			PaymentStatus: domain.PaymentUnpaid,
		},
		{
			ID:            3,
			Customer:      domain.OrderCustomer{ID: 1, Name: "Andi Setiawan", Vehicle: "B 1234 ABC"},
			Complaint:     "AC tidak dingin",
			MechanicID:    3,
			Date:          "2023-10-29",
			Status:        domain.ServiceQueued,
			PartsUsed:     []domain.OrderPart{},
			ServiceFee:    0,
			TotalCost:     0,
			PaymentStatus: domain.PaymentUnpaid,
		},
	}
}

func seedPaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{ID: 1, Name: "Cash", Status: domain.StatusActive},
		{ID: 2, Name: "Transfer", Status: domain.StatusActive},
		{ID: 3, Name: "E-Wallet", Status: domain.StatusActive},
		{ID: 4, Name: "Kartu Kredit", Status: domain.StatusInactive},
	}
}

func seedPayments() []domain.Payment {
	return []domain.Payment{
		{ID: 1, OrderID: 1, Amount: 580000, Method: "Cash", Date: "2023-10-27"},
	}
}
