package entities

import "time"

// KPIRecord — точка метрики. Запись только добавляется, пути обновления нет.
type KPIRecord struct {
	ID          uint64
	Metric      string
	Value       float64
	Timestamp   time.Time
	ServiceName string
}
