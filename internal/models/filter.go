// Package models содержит структуры для приёма данных консоли из
// JSON-запросов до их валидации и преобразования во внутренние типы.
// Даты приходят строками, чтобы их можно было валидировать и парсить
// вручную.
package models

// FilterUpdate — полное состояние фильтра страницы из запроса консоли.
// Пустые значения означают отсутствие соответствующего фильтра.
type FilterUpdate struct {
	PeriodFrom string   `json:"period_from,omitempty" validate:"omitempty,datetime=2006-01-02"` // Начало периода
	PeriodTo   string   `json:"period_to,omitempty" validate:"omitempty,datetime=2006-01-02"`   // Конец периода
	Cities     []string `json:"cities,omitempty"`                                               // Города
	Flows      []string `json:"flows,omitempty"`                                                // Потоки
	Webmasters []string `json:"webmasters,omitempty"`                                           // Вебмастера
	Status     string   `json:"status" validate:"required"`                                     // Статус из перечисления консоли
	Paid       string   `json:"paid" validate:"required"`                                       // all, paid или unpaid
	Offer      string   `json:"offer,omitempty"`                                                // Идентификатор или название оффера
	Query      string   `json:"query,omitempty"`                                                // Строка поиска
}

// SelectionUpdate — изменение выбора строк для массового действия.
// Заполняется либо SelectAll, либо RowID со снимком строки.
type SelectionUpdate struct {
	SelectAll  *bool   `json:"select_all,omitempty"`
	RowID      string  `json:"row_id,omitempty"`
	Commission float64 `json:"commission,omitempty"`
	Realized   bool    `json:"is_realized,omitempty"`
	Paid       bool    `json:"is_paid,omitempty"`
	Burned     bool    `json:"is_burned,omitempty"`
}

// PageUpdate — изменение пагинации таблицы.
type PageUpdate struct {
	Page     int `json:"page,omitempty" validate:"omitempty,gte=1"`
	PageSize int `json:"page_size,omitempty"`
}

// RateRequest — создание или обновление ставки комиссии.
type RateRequest struct {
	City       string  `json:"city,omitempty"`
	Region     string  `json:"region,omitempty"`
	UserID     string  `json:"user_id,omitempty"`
	Commission float64 `json:"commission" validate:"required,gt=0"`
}

// ProfileFieldUpdate — обновление одного поля профиля.
type ProfileFieldUpdate struct {
	Field string `json:"field" validate:"required,oneof=name email phone telegram"`
	Value string `json:"value" validate:"required"`
}
