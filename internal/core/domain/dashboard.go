package domain

// DashboardSummary is the flat set of counters shown on the dashboard.
type DashboardSummary struct {
	TotalProperties     int64   `json:"totalProperties"`
	TotalUnits          int64   `json:"totalUnits"`
	AvailableUnits      int64   `json:"availableUnits"`
	OccupiedUnits       int64   `json:"occupiedUnits"`
	ActiveLeases        int64   `json:"activeLeases"`
	PendingApplications int64   `json:"pendingApplications"`
	OpenMaintenance     int64   `json:"openMaintenance"`
	PendingPayments     int64   `json:"pendingPayments"`
	TotalRevenue        float64 `json:"totalRevenue"`
}
