package marketplace

import "time"

// LeadRow — строка таблицы лидов в том виде, в котором её отдаёт бэкенд.
type LeadRow struct {
	ID              string    `json:"id"`
	Phone           string    `json:"phone"`
	Name            string    `json:"name"`
	City            string    `json:"city"`
	ThreadID        string    `json:"thread_id"`
	UserID          string    `json:"user_id"`
	ServiceStatusID int       `json:"service_status_id"`
	Commission      float64   `json:"commission"`
	PaidCommission  bool      `json:"paid_commission"`
	CreatedAt       time.Time `json:"created_at"`
}

// LeadPage — страница списка лидов с общим числом строк в выборке.
type LeadPage struct {
	Items      []LeadRow `json:"items"`
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

// DynamicsPoint — точка графика динамики лидов.
type DynamicsPoint struct {
	Bucket   time.Time `json:"bucket"`
	Total    float64   `json:"total"`
	Realized float64   `json:"realized"`
}

// CommissionPoint — точка графика разбивки комиссии по состояниям.
type CommissionPoint struct {
	Bucket                   time.Time `json:"bucket"`
	HoldCommission           float64   `json:"hold_commission"`
	RealizedUnpaidCommission float64   `json:"realized_unpaid_commission"`
	RealizedPaidCommission   float64   `json:"realized_paid_commission"`
}

// CityCount — строка распределения лидов по городам.
type CityCount struct {
	City  string `json:"city"`
	Total int    `json:"total"`
}

// ThreadCount — строка распределения лидов по потокам.
type ThreadCount struct {
	ThreadID string `json:"thread_id"`
	Total    int    `json:"total"`
}

// Rate — ставка комиссии для города или региона, опционально
// привязанная к конкретному вебмастеру.
type Rate struct {
	ID         int     `json:"id"`
	City       string  `json:"city"`
	Region     string  `json:"region"`
	UserID     string  `json:"user_id,omitempty"`
	Commission float64 `json:"commission"`
}

// Profile — профиль пользователя консоли.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Telegram string `json:"telegram"`
}
