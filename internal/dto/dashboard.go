package dto

// RevenueResponse represents the trailing twelve month revenue series together
// with the Y-axis labels a chart should render
type RevenueResponse struct {
	Revenue  []MonthlyRevenuePoint `json:"revenue"`
	YAxis    []string              `json:"y_axis"`
	TopLabel int                   `json:"top_label"`
}

// MonthlyRevenuePoint is a single month in the revenue series
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	UserID  string  `json:"user_id"`
}

// CardsResponse represents the dashboard summary cards
type CardsResponse struct {
	NumberOfCustomers int64  `json:"number_of_customers"`
	NumberOfInvoices  int64  `json:"number_of_invoices"`
	TotalPaid         string `json:"total_paid"`
	TotalPending      string `json:"total_pending"`
}
