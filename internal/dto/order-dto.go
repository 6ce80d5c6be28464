package dto

type ShortUserDTO struct {
	ID  uint64 `json:"id"`
	Fio string `json:"fio"`
}

type OrderDTO struct {
	ID          uint64        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	Priority    string        `json:"priority"`
	Initiator   ShortUserDTO  `json:"initiator"`
	Executor    *ShortUserDTO `json:"executor,omitempty"`
	SLADeadline string        `json:"sla_deadline,omitempty"`
	CreatedAt   string        `json:"created_at"`
}

// CreateOrderDTO — поля формы заявки. Инициатора здесь нет намеренно:
// он всегда проставляется сервером из текущего принципала.
type CreateOrderDTO struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string `json:"status" validate:"omitempty,oneof=new in_progress done"`
	ExecutorID  uint64 `json:"executor_id"`
}

// UpdateOrderDTO — полная замена того же набора полей, что и при создании.
type UpdateOrderDTO struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
	Status      string `json:"status" validate:"required,oneof=new in_progress done"`
	ExecutorID  uint64 `json:"executor_id"`
}

type OrderFilter struct {
	Status   string
	Priority string
	Page     uint64
}

// OrderChoicesDTO — наборы значений для формы создания/редактирования.
type OrderChoicesDTO struct {
	Statuses   []string       `json:"statuses"`
	Priorities []string       `json:"priorities"`
	Executors  []ShortUserDTO `json:"executors"`
}

// OrderAPIItemDTO — плоская проекция для /api/queue.
type OrderAPIItemDTO struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
}
