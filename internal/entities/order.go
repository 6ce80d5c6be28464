package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Статусы заявки.
const (
	OrderStatusNew        = "new"
	OrderStatusInProgress = "in_progress"
	OrderStatusDone       = "done"
)

// Приоритеты заявки.
const (
	OrderPriorityLow    = "low"
	OrderPriorityMedium = "medium"
	OrderPriorityHigh   = "high"
)

// Order — заявка в очереди обращений. Инициатор всегда тот, кто подал
// заявку, и не меняется последующими правками.
type Order struct {
	ID          uint64
	Title       string
	Description string
	InitiatorID uint64
	ExecutorID  null.Uint64
	Status      string
	Priority    string
	SLADeadline null.Time
	CreatedAt   time.Time
}
