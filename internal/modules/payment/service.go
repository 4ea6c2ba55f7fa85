package payment

import (
	"context"

	"bengkel/internal/domain"
	"bengkel/internal/repository"
)

type Service struct {
	payments  PaymentRepository
	orders    OrderReader
	customers CustomerReader
	employees EmployeeReader
	parts     PartReader
}

func NewService(payments PaymentRepository, orders OrderReader, customers CustomerReader, employees EmployeeReader, parts PartReader) *Service {
	return &Service{
		payments:  payments,
		orders:    orders,
		customers: customers,
		employees: employees,
		parts:     parts,
	}
}

// List returns all payments with the customer name of each payment's order.
// Payments whose order has been deleted stay in the list under "N/A".
func (s *Service) List(ctx context.Context) ([]ListedPayment, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.customerNamesByOrder(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ListedPayment, 0, len(payments))
	for _, p := range payments {
		name, ok := names[p.OrderID]
		if !ok {
			name = orphanLabel
		}
		out = append(out, ListedPayment{Payment: p, CustomerName: name})
	}
	return out, nil
}

func (s *Service) customerNamesByOrder(ctx context.Context) (map[int64]string, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(orders))
	for _, o := range orders {
		names[o.ID] = o.Customer.Name
	}
	return names, nil
}

// Invoice assembles the printable document for an order. Every reference is
// resolved against the live collections; anything deleted since the order
// was written gets a placeholder instead of breaking the document.
func (s *Service) Invoice(ctx context.Context, orderID int64) (*Invoice, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	inv := &Invoice{
		Workshop:      domain.DefaultProfile,
		OrderID:       o.ID,
		Date:          o.Date,
		CustomerName:  o.Customer.Name,
		VehiclePlate:  o.Customer.Vehicle,
		Complaint:     o.Complaint,
		PartsSubtotal: o.PartsSubtotal(),
		ServiceFee:    o.ServiceFee,
		TotalCost:     o.TotalCost,
		PaymentStatus: o.PaymentStatus,
	}

	s.fillCustomer(ctx, inv, o)
	s.fillMechanic(ctx, inv, o)
	inv.Lines = s.buildLines(ctx, o)

	return inv, nil
}

func (s *Service) fillCustomer(ctx context.Context, inv *Invoice, o *domain.ServiceOrder) {
	cust, err := s.customers.GetByID(ctx, o.Customer.ID)
	if err != nil {
		inv.CustomerAddress = orphanLabel
		inv.CustomerPhone = orphanLabel
		inv.VehicleModel = orphanLabel
		return
	}

	inv.CustomerAddress = cust.Address
	inv.CustomerPhone = cust.Phone
	inv.VehicleModel = orphanLabel
	for _, v := range cust.Vehicles {
		if v.PlateNumber == o.Customer.Vehicle {
			inv.VehicleModel = v.Model
			break
		}
	}
}

func (s *Service) fillMechanic(ctx context.Context, inv *Invoice, o *domain.ServiceOrder) {
	mech, err := s.employees.GetByID(ctx, o.MechanicID)
	if err != nil {
		inv.MechanicName = orphanLabel
		return
	}
	inv.MechanicName = mech.Name
}

func (s *Service) buildLines(ctx context.Context, o *domain.ServiceOrder) []InvoiceLine {
	lines := make([]InvoiceLine, 0, len(o.PartsUsed))
	for _, line := range o.PartsUsed {
		name := deletedPartLabel
		if p, err := s.parts.GetByID(ctx, line.PartID); err == nil {
			name = p.Name
		}
		lines = append(lines, InvoiceLine{
			Name:      name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: float64(line.Quantity) * line.UnitPrice,
		})
	}
	return lines
}

func (s *Service) ExportRows(ctx context.Context) ([]exportRow, error) {
	listed, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]exportRow, 0, len(listed))
	for _, p := range listed {
		rows = append(rows, exportRow{
			ID:       p.ID,
			OrderID:  p.OrderID,
			Customer: p.CustomerName,
			Date:     p.Date,
			Amount:   p.Amount,
			Method:   p.Method,
		})
	}
	return rows, nil
}
