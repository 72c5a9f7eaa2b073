// Package leadfilter реализует модель фильтров консоли лидов и её проекцию
// в параметры запросов к REST-бэкенду маркетплейса.
//
// Все функции пакета чистые: они не выполняют ввод-вывод и не хранят
// состояние между вызовами. Страница консоли владеет структурами Filter,
// Pagination и Selection и передаёт их сюда для получения производных
// значений.
package leadfilter

import "time"

// Granularity определяет шаг бакетов для графиков динамики.
type Granularity string

const (
	// GranularityHourly — почасовые бакеты, когда период укладывается в один день.
	GranularityHourly Granularity = "hourly"
	// GranularityDaily — подневные бакеты для всех остальных периодов.
	GranularityDaily Granularity = "daily"
)

// Период по умолчанию, применяется при частично заданных границах.
const defaultPeriodDays = 30

// Period задаёт границы периода, выбранные пользователем.
// Нулевое значение time.Time означает, что граница не задана.
// Если заданы обе границы, From не должна быть позже To —
// за это отвечает вызывающая сторона.
type Period struct {
	From time.Time
	To   time.Time
}

// IsZero сообщает, что пользователь не задал ни одной границы периода.
func (p Period) IsZero() bool {
	return p.From.IsZero() && p.To.IsZero()
}

// ResolvedPeriod — конкретный интервал [Start, Finish), полученный из Period.
// Используется всеми эндпоинтами статистики, чтобы графики и сводки,
// отображаемые рядом, описывали одно и то же окно.
type ResolvedPeriod struct {
	Start       time.Time
	Finish      time.Time
	Granularity Granularity
}

// NormalizePeriod превращает частично заданный период в конкретный интервал.
//
// Правила подстановки:
//   - заданы обе границы — Start и Finish берутся как есть, на начало суток;
//   - задана только From — Finish = From + 30 дней;
//   - задана только To — Start = To - 30 дней;
//   - не задано ничего — Finish = начало текущих суток, Start = Finish - 30 дней.
//
// Гранулярность почасовая только когда Start и Finish совпадают,
// то есть период умещается в одни календарные сутки.
func NormalizePeriod(p Period, now time.Time) ResolvedPeriod {
	var start, finish time.Time
	switch {
	case !p.From.IsZero() && !p.To.IsZero():
		start = startOfDay(p.From)
		finish = startOfDay(p.To)
	case !p.From.IsZero():
		start = startOfDay(p.From)
		finish = start.AddDate(0, 0, defaultPeriodDays)
	case !p.To.IsZero():
		finish = startOfDay(p.To)
		start = finish.AddDate(0, 0, -defaultPeriodDays)
	default:
		finish = startOfDay(now)
		start = finish.AddDate(0, 0, -defaultPeriodDays)
	}

	granularity := GranularityDaily
	if start.Equal(finish) {
		granularity = GranularityHourly
	}
	return ResolvedPeriod{Start: start, Finish: finish, Granularity: granularity}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
