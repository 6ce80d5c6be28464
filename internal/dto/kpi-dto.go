package dto

type KPIRecordDTO struct {
	Metric      string  `json:"metric"`
	Value       float64 `json:"value"`
	Timestamp   string  `json:"timestamp"`
	ServiceName string  `json:"service_name"`
}

type KPIPointDTO struct {
	Timestamp string  `json:"timestamp"`
	Value     float64 `json:"value"`
}

// KPIDashboardDTO — записи за последние 30 дней плюс ряды по метрикам.
type KPIDashboardDTO struct {
	Records []KPIRecordDTO           `json:"records"`
	Series  map[string][]KPIPointDTO `json:"series"`
}
