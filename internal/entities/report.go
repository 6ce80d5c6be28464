package entities

import "time"

// Типы отчётов.
const (
	ReportTypeDaily   = "daily"
	ReportTypeWeekly  = "weekly"
	ReportTypeMonthly = "monthly"
)

// ReportTypeDisplay — человекочитаемые названия типов для содержимого файла.
var ReportTypeDisplay = map[string]string{
	ReportTypeDaily:   "Ежедневный",
	ReportTypeWeekly:  "Еженедельный",
	ReportTypeMonthly: "Ежемесячный",
}

type Report struct {
	ID         uint64
	ReportType string
	PeriodFrom time.Time
	PeriodTo   time.Time
	AuthorID   uint64
	// Путь к сгенерированному файлу относительно медиа-хранилища.
	File      string
	CreatedAt time.Time
}
