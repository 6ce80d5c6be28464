package authz

// Allowed — единственная точка принятия решения о доступе по роли.
// Разрешает операцию тогда и только тогда, когда роль входит в допустимый
// набор; никакой частичной обработки при отказе не происходит — вызывающая
// сторона обязана прервать операцию.
func Allowed(role Role, allowed ...Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// OwnsOrder — строковая проверка поверх ролевой: клиент видит карточку
// заявки только если он её инициатор. Выполняется после ролевой проверки.
func OwnsOrder(role Role, actorID, initiatorID uint64) bool {
	if role != RoleClient {
		return true
	}
	return actorID == initiatorID
}
