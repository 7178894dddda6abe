package charts

// RevenueRow is a raw monthly revenue aggregate as returned by the invoice
// repository: a "2006-01" month key and the summed amount in cents.
type RevenueRow struct {
	Month        string
	RevenueCents int64
}

// MonthlyRevenue is one display-ready point of the 12-month revenue series:
// a 3-letter month label and the revenue in dollars, scoped to an owner.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	UserID  string  `json:"user_id"`
}
