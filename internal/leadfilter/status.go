package leadfilter

// Status — статус обработки лида в том виде, в котором им оперирует консоль.
// Значение StatusAll означает отсутствие фильтра по статусу.
type Status string

const (
	StatusAll           Status = "all"
	StatusInWork        Status = "in_work"
	StatusAssigned      Status = "assigned"
	StatusConfirmed     Status = "confirmed"
	StatusClientRefusal Status = "client_refusal"
	StatusLowQuality    Status = "low_quality"
)

// Таблица соответствия статусов консоли числовым идентификаторам бэкенда.
// Таблица фиксированная и двунаправленная, StatusAll в неё не входит.
var statusIDs = map[Status]int{
	StatusInWork:        1,
	StatusAssigned:      2,
	StatusConfirmed:     3,
	StatusClientRefusal: 4,
	StatusLowQuality:    5,
}

var statusByID = func() map[int]Status {
	m := make(map[int]Status, len(statusIDs))
	for s, id := range statusIDs {
		m[id] = s
	}
	return m
}()

// Valid сообщает, входит ли значение в перечисление статусов консоли.
func (s Status) Valid() bool {
	if s == StatusAll {
		return true
	}
	_, ok := statusIDs[s]
	return ok
}

// BackendID возвращает числовой идентификатор статуса для бэкенда.
// Для StatusAll и неизвестных значений второй результат false —
// параметр статуса в запрос не включается.
func (s Status) BackendID() (int, bool) {
	id, ok := statusIDs[s]
	return id, ok
}

// StatusByID возвращает статус консоли по числовому идентификатору бэкенда.
func StatusByID(id int) (Status, bool) {
	s, ok := statusByID[id]
	return s, ok
}

// Realized сообщает, что комиссия лида подтверждена и подлежит выплате.
func (s Status) Realized() bool {
	return s == StatusConfirmed
}

// Burned сообщает, что комиссия лида аннулирована безвозвратно.
func (s Status) Burned() bool {
	return s == StatusClientRefusal || s == StatusLowQuality
}

// Paid — фильтр по признаку выплаченной комиссии.
type Paid string

const (
	PaidAll    Paid = "all"
	PaidOnly   Paid = "paid"
	PaidUnpaid Paid = "unpaid"
)

// Valid сообщает, входит ли значение в перечисление фильтра по выплате.
func (p Paid) Valid() bool {
	return p == PaidAll || p == PaidOnly || p == PaidUnpaid
}
