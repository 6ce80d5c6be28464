package dto

type ReportDTO struct {
	ID         uint64       `json:"id"`
	ReportType string       `json:"report_type"`
	PeriodFrom string       `json:"period_from"`
	PeriodTo   string       `json:"period_to"`
	Author     ShortUserDTO `json:"author"`
	File       string       `json:"file"`
	CreatedAt  string       `json:"created_at"`
}

type CreateReportDTO struct {
	ReportType string `json:"report_type" validate:"required,oneof=daily weekly monthly"`
	PeriodFrom string `json:"period_from" validate:"required,datetime=2006-01-02"`
	PeriodTo   string `json:"period_to" validate:"required,datetime=2006-01-02"`
}
