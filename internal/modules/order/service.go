package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"bengkel/internal/domain"
	"bengkel/internal/pkg/idgen"
	"bengkel/internal/repository"
)

type Service struct {
	orders    OrderRepository
	parts     PartReader
	customers CustomerReader
	employees EmployeeReader
	payments  PaymentWriter
	methods   MethodReader
	ai        Recommender
	ids       *idgen.Generator
}

func NewService(
	orders OrderRepository,
	parts PartReader,
	customers CustomerReader,
	employees EmployeeReader,
	payments PaymentWriter,
	methods MethodReader,
	ai Recommender,
	ids *idgen.Generator,
) *Service {
	return &Service{
		orders:    orders,
		parts:     parts,
		customers: customers,
		employees: employees,
		payments:  payments,
		methods:   methods,
		ai:        ai,
		ids:       ids,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.ServiceOrder, error) {
	return s.orders.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

// Create opens a new order. The customer name and the chosen vehicle are
// snapshotted so the order keeps displaying them even after the customer
// record changes or disappears.
func (s *Service) Create(ctx context.Context, req CreatePayload) (*domain.ServiceOrder, error) {
	cust, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	o := &domain.ServiceOrder{
		ID: s.ids.Next(),
		Customer: domain.OrderCustomer{
			ID:      cust.ID,
			Name:    cust.Name,
			Vehicle: req.Vehicle,
		},
		Complaint:     req.Complaint,
		MechanicID:    req.MechanicID,
		Date:          date,
		Status:        domain.ServiceQueued,
		PartsUsed:     []domain.OrderPart{},
		ServiceFee:    req.ServiceFee,
		PaymentStatus: domain.PaymentUnpaid,
	}
	o.RecalcTotal()

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePayload) (*domain.ServiceOrder, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	o.Complaint = req.Complaint
	o.MechanicID = req.MechanicID
	if req.Date != "" {
		o.Date = req.Date
	}
	if req.Status != "" {
		o.Status = domain.ServiceStatus(req.Status)
	}
	o.ServiceFee = req.ServiceFee
	o.RecalcTotal()

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

// AddPart puts a part line on the order, snapshotting the current sell price.
// Adding a part that is already on the order raises the line's quantity
// instead of creating a duplicate line.
func (s *Service) AddPart(ctx context.Context, id int64, req AddPartPayload) (*domain.ServiceOrder, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.parts.GetByID(ctx, req.PartID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrPartNotFound
		}
		return nil, err
	}

	merged := false
	for i := range o.PartsUsed {
		if o.PartsUsed[i].PartID == p.ID {
			o.PartsUsed[i].Quantity += req.Quantity
			merged = true
			break
		}
	}
	if !merged {
		o.PartsUsed = append(o.PartsUsed, domain.OrderPart{
			PartID:    p.ID,
			Quantity:  req.Quantity,
			UnitPrice: p.SellPrice,
		})
	}
	o.RecalcTotal()

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) RemovePart(ctx context.Context, id, partID int64) (*domain.ServiceOrder, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := o.PartsUsed[:0]
	for _, line := range o.PartsUsed {
		if line.PartID != partID {
			kept = append(kept, line)
		}
	}
	o.PartsUsed = kept
	o.RecalcTotal()

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// RecordPayment closes the payment dialog: it books a payment for the order's
// recomputed total and flips the order to paid, keeping any edits made while
// the dialog was open. If the order was deleted in the meantime the payment
// is still recorded; it simply no longer has an order to point at.
func (s *Service) RecordPayment(ctx context.Context, id int64, req PaymentRequest) (*PaymentResult, error) {
	if err := s.checkMethodActive(ctx, req.Method); err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")

	o, err := s.orders.GetByID(ctx, id)
	if err != nil && !repository.IsNotFound(err) {
		return nil, err
	}

	var amount float64
	if o != nil {
		if req.Order != nil {
			applySessionEdit(o, req.Order)
		}
		o.RecalcTotal()
		amount = o.TotalCost
	} else if req.Order != nil {
		// Order gone: the dialog's fee is all that is left to bill.
		amount = req.Order.ServiceFee
	}

	payment := &domain.Payment{
		ID:      s.ids.Next(),
		OrderID: id,
		Amount:  amount,
		Method:  req.Method,
		Date:    today,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	if o == nil {
		return &PaymentResult{Payment: payment}, nil
	}

	o.PaymentStatus = domain.PaymentPaid
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return &PaymentResult{Payment: payment, Order: o}, nil
}

func applySessionEdit(o *domain.ServiceOrder, edit *SessionEdit) {
	if edit.Complaint != "" {
		o.Complaint = edit.Complaint
	}
	if edit.MechanicID != 0 {
		o.MechanicID = edit.MechanicID
	}
	if edit.Date != "" {
		o.Date = edit.Date
	}
	if edit.Status != "" {
		o.Status = domain.ServiceStatus(edit.Status)
	}
	if edit.ServiceFee > 0 {
		o.ServiceFee = edit.ServiceFee
	}
}

func (s *Service) checkMethodActive(ctx context.Context, name string) error {
	methods, err := s.methods.ListActive(ctx)
	if err != nil {
		return err
	}
	for _, m := range methods {
		if m.Name == name {
			return nil
		}
	}
	return ErrMethodNotAllowed
}

// Recommend asks the model for a payment method suited to this customer,
// grounded on their payment history and the currently active methods.
func (s *Service) Recommend(ctx context.Context, id int64) (*Recommendation, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	methods, err := s.methods.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, ErrNoActiveMethods
	}
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name)
	}

	history, err := s.paymentHistory(ctx, o.Customer.ID)
	if err != nil {
		return nil, err
	}

	prompt := buildPrompt(o, names, history)
	suggestion, err := s.ai.SuggestPaymentMethod(ctx, prompt, names)
	if err != nil {
		return nil, err
	}
	return &Recommendation{
		RecommendedMethod: suggestion.RecommendedMethod,
		Reason:            suggestion.Reason,
	}, nil
}

// paymentHistory summarizes how often the customer paid with each method,
// e.g. ["Cash 2 kali", "QRIS 1 kali"].
func (s *Service) paymentHistory(ctx context.Context, customerID int64) ([]string, error) {
	orders, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	payments, err := s.payments.ListByOrders(ctx, ids)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, p := range payments {
		counts[p.Method]++
	}
	methods := make([]string, 0, len(counts))
	for m := range counts {
		methods = append(methods, m)
	}
	sort.Strings(methods)

	out := make([]string, 0, len(methods))
	for _, m := range methods {
		out = append(out, fmt.Sprintf("%s %d kali", m, counts[m]))
	}
	return out, nil
}

func buildPrompt(o *domain.ServiceOrder, methods, history []string) string {
	historyText := "belum ada riwayat pembayaran"
	if len(history) > 0 {
		historyText = strings.Join(history, ", ")
	}

	return fmt.Sprintf(
		"Anda adalah asisten kasir sebuah bengkel mobil. Pelanggan %q akan membayar order servis sebesar Rp %.0f. "+
			"Riwayat pembayaran pelanggan: %s. Metode pembayaran yang tersedia: %s. "+
			"Sarankan satu metode pembayaran terbaik dan berikan alasan singkat dalam bahasa Indonesia.",
		o.Customer.Name, o.TotalCost, historyText, strings.Join(methods, ", "),
	)
}

// ExportRows flattens orders for the CSV download, resolving the mechanic's
// name against the current employee list.
func (s *Service) ExportRows(ctx context.Context) ([]exportRow, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}

	rows := make([]exportRow, 0, len(orders))
	for _, o := range orders {
		mechanic, ok := names[o.MechanicID]
		if !ok {
			mechanic = "N/A"
		}
		rows = append(rows, exportRow{
			ID:            o.ID,
			Customer:      o.Customer.Name,
			Vehicle:       o.Customer.Vehicle,
			Complaint:     o.Complaint,
			Mechanic:      mechanic,
			Date:          o.Date,
			Status:        string(o.Status),
			TotalCost:     o.TotalCost,
			PaymentStatus: string(o.PaymentStatus),
		})
	}
	return rows, nil
}
