package dto

type ShiftDTO struct {
	ID       uint64       `json:"id"`
	Employee ShortUserDTO `json:"employee"`
	Date     string       `json:"date"`
	Shift    string       `json:"shift"`
	Comment  string       `json:"comment"`
	Phone    string       `json:"phone"`
}
