package models

// Stats витринные показатели, которые администратор может переопределить вручную.
type Stats struct {
	Unlocks     int64   `json:"unlocks"`
	Clients     int64   `json:"clients"`
	SuccessRate float64 `json:"success_rate"`
}

// DefaultStats значения до первого ручного изменения.
func DefaultStats() Stats {
	return Stats{Unlocks: 1000, Clients: 500, SuccessRate: 99.5}
}

// Dashboard сводка для шапки админ-панели.
type Dashboard struct {
	Stats          Stats `json:"stats"`
	NewOrders      int   `json:"new_orders"`
	PendingReviews int   `json:"pending_reviews"`
}
