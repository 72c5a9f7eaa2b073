package leadfilter

import "strings"

// Filter — единый источник истины о том, что сейчас просматривается
// на странице. Страница создаёт фильтр со значениями по умолчанию при
// открытии, меняет его только через свои действия и никуда не сохраняет:
// при уходе со страницы фильтр сбрасывается.
type Filter struct {
	Period     Period
	Cities     []string // названия городов, порядок сохраняется для чипов
	Flows      []string // идентификаторы потоков (рекламных каналов)
	Webmasters []string // идентификаторы вебмастеров
	Status     Status
	Paid       Paid
	OfferID    int // 0 — оффер не выбран
	Query      string
}

// NewFilter возвращает фильтр по умолчанию: все статусы, любые выплаты,
// период не задан (нормализация подставит последние 30 дней).
func NewFilter() Filter {
	return Filter{
		Status: StatusAll,
		Paid:   PaidAll,
	}
}

// Equal сравнивает два фильтра по значению. Используется, чтобы понять,
// изменился ли фильтр и нужно ли сбрасывать пагинацию и пересчитывать
// сводку выборки.
func (f Filter) Equal(other Filter) bool {
	return f.Period == other.Period &&
		equalStrings(f.Cities, other.Cities) &&
		equalStrings(f.Flows, other.Flows) &&
		equalStrings(f.Webmasters, other.Webmasters) &&
		f.Status == other.Status &&
		f.Paid == other.Paid &&
		f.OfferID == other.OfferID &&
		strings.TrimSpace(f.Query) == strings.TrimSpace(other.Query)
}

// Clone возвращает глубокую копию фильтра. Копия нужна, когда фильтр
// уходит в фоновую операцию, а оригинал продолжает меняться.
func (f Filter) Clone() Filter {
	c := f
	c.Cities = append([]string(nil), f.Cities...)
	c.Flows = append([]string(nil), f.Flows...)
	c.Webmasters = append([]string(nil), f.Webmasters...)
	return c
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
