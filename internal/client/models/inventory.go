package models

// Product is a catalog item.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// StockEntry is one row of the stock ledger.
type StockEntry struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int64  `json:"quantity"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// SaleEntry is one row of the sales ledger.
type SaleEntry struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	Notes       string  `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// Notification is a short broadcast message shown in the header area.
type Notification struct {
	ID              int64  `json:"id"`
	Message         string `json:"message"`
	TargetComponent string `json:"targetComponent,omitempty"`
	Seen            bool   `json:"seen"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// DailySale is one point of the dashboard sales series.
type DailySale struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// DashboardStats is the aggregate view returned by dashboard/stats.
type DashboardStats struct {
	TotalProducts     int64       `json:"total_products"`
	TotalSales        int64       `json:"total_sales"`
	TotalStockEntries int64       `json:"total_stock_entries"`
	TotalSalesAmount  float64     `json:"total_sales_amount"`
	DailySales        []DailySale `json:"daily_sales"`
}

// StockLevel buckets the total stock entry count the way the dashboard
// presents it.
func (s *DashboardStats) StockLevel() string {
	switch {
	case s.TotalStockEntries >= 300:
		return "High"
	case s.TotalStockEntries >= 100:
		return "Medium"
	default:
		return "Low"
	}
}
