package entities

import "time"

// User — принципал системы. Флаги is_staff/is_superuser участвуют в
// цепочке вычисления роли, когда профиль отсутствует.
type User struct {
	ID          uint64
	Login       string
	Password    string
	Fio         string
	IsStaff     bool
	IsSuperuser bool
	CreatedAt   time.Time

	Profile *Profile
}

// Profile — расширение принципала с ролью, один к одному.
type Profile struct {
	ID     uint64
	UserID uint64
	Role   string
}
