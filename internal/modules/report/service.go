package report

import (
	"context"
	"sort"

	"bengkel/internal/domain"
)

// Dashboard card cutoffs. The dashboard warns earlier than the reports
// screen restocks.
const (
	dashboardLowStock = 5
	reportLowStock    = 10
	recentOrderCount  = 5
)

type Service struct {
	orders    OrderReader
	payments  PaymentReader
	parts     PartReader
	customers CustomerReader
}

func NewService(orders OrderReader, payments PaymentReader, parts PartReader, customers CustomerReader) *Service {
	return &Service{orders: orders, payments: payments, parts: parts, customers: customers}
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.parts.ListBelowStock(ctx, dashboardLowStock)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.orders.ListRecent(ctx, recentOrderCount)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, p := range payments {
		revenue += p.Amount
	}

	active := 0
	statusCounts := map[domain.ServiceStatus]int{
		domain.ServiceQueued:     0,
		domain.ServiceInProgress: 0,
		domain.ServiceDone:       0,
	}
	for _, o := range orders {
		statusCounts[o.Status]++
		if o.Status != domain.ServiceDone {
			active++
		}
	}

	return &Dashboard{
		TotalRevenue:  revenue,
		ActiveOrders:  active,
		LowStockCount: len(lowStock),
		CustomerCount: len(customers),
		StatusCounts:  statusCounts,
		RecentOrders:  recent,
	}, nil
}

func (s *Service) Report(ctx context.Context) (*Report, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.parts.ListBelowStock(ctx, reportLowStock)
	if err != nil {
		return nil, err
	}

	byDate := map[string]float64{}
	for _, p := range payments {
		byDate[p.Date] += p.Amount
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// Dates are YYYY-MM-DD strings, so a lexical sort is chronological.
	sort.Strings(dates)

	daily := make([]DailyRevenue, 0, len(dates))
	for _, d := range dates {
		daily = append(daily, DailyRevenue{Date: d, Total: byDate[d]})
	}

	statusCounts := map[domain.ServiceStatus]int{
		domain.ServiceQueued:     0,
		domain.ServiceInProgress: 0,
		domain.ServiceDone:       0,
	}
	for _, o := range orders {
		statusCounts[o.Status]++
	}

	return &Report{
		DailyRevenue:  daily,
		StatusCounts:  statusCounts,
		LowStockParts: lowStock,
	}, nil
}
