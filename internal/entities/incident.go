package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

const (
	IncidentCriticalityLow    = "low"
	IncidentCriticalityMedium = "medium"
	IncidentCriticalityHigh   = "high"
)

type Incident struct {
	ID          uint64
	Title       string
	Description string
	// Статус инцидента — свободный текст, не перечисление.
	Status      string
	Criticality string
	DetectedAt  time.Time
	ClosedAt    null.Time
	OrderID     null.Uint64
}
