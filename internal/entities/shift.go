package entities

import "time"

const (
	ShiftDay   = "day"
	ShiftNight = "night"
)

type Shift struct {
	ID         uint64
	EmployeeID uint64
	Date       time.Time
	Shift      string
	Comment    string
	Phone      string
}
