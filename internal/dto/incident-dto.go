package dto

type IncidentDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Criticality string `json:"criticality"`
	DetectedAt  string `json:"detected_at"`
	ClosedAt    string `json:"closed_at,omitempty"`
	OrderID     uint64 `json:"order_id,omitempty"`
}
