package dto

// HomeSummaryDTO — счётчики главной панели.
type HomeSummaryDTO struct {
	OpenOrders    uint64 `json:"open_orders"`
	OpenIncidents uint64 `json:"open_incidents"`
	KPICount      uint64 `json:"kpi_count"`
}
