package report

import "bengkel/internal/domain"

// Dashboard is the landing-screen summary. Everything is recomputed from the
// collections on every request; nothing is cached.
type Dashboard struct {
	TotalRevenue  float64                      `json:"total_revenue"`
	ActiveOrders  int                          `json:"active_orders"`
	LowStockCount int                          `json:"low_stock_count"`
	CustomerCount int                          `json:"customer_count"`
	StatusCounts  map[domain.ServiceStatus]int `json:"status_counts"`
	RecentOrders  []domain.ServiceOrder        `json:"recent_orders"`
}

type DailyRevenue struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type Report struct {
	DailyRevenue  []DailyRevenue               `json:"daily_revenue"`
	StatusCounts  map[domain.ServiceStatus]int `json:"status_counts"`
	LowStockParts []domain.Part                `json:"low_stock_parts"`
}
