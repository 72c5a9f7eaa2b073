package leadfilter

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Форматы сериализации дат в параметрах запросов.
// Ключи created_from/created_to несут календарные даты,
// ключи start/finish — полные локальные метки времени.
const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05"
)

// ListParams строит параметры запроса списка лидов: пагинация плюс фильтры.
// Границы периода передаются календарными датами и только если заданы
// пользователем — эндпоинт списка сам подставляет окно по умолчанию.
func ListParams(f Filter, pag Pagination) url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(pag.PageSize))
	v.Set("offset", strconv.Itoa(pag.Offset()))
	if !f.Period.From.IsZero() {
		v.Set("created_from", f.Period.From.Format(dateLayout))
	}
	if !f.Period.To.IsZero() {
		v.Set("created_to", f.Period.To.Format(dateLayout))
	}
	applyFilter(v, f)
	return v
}

// SeriesParams строит параметры эндпоинтов временных рядов
// (динамика лидов и разбивка комиссии): нормализованный период
// полными метками времени, без пагинации.
func SeriesParams(f Filter, now time.Time) url.Values {
	r := NormalizePeriod(f.Period, now)
	v := url.Values{}
	v.Set("start", r.Start.Format(timestampLayout))
	v.Set("finish", r.Finish.Format(timestampLayout))
	applyFilter(v, f)
	return v
}

// CityParams строит параметры распределения по городам: тот же
// нормализованный период, что и у временных рядов, но под именами
// created_from/created_to, плюс фиксированный with_detail=false.
func CityParams(f Filter, now time.Time) url.Values {
	r := NormalizePeriod(f.Period, now)
	v := url.Values{}
	v.Set("created_from", r.Start.Format(dateLayout))
	v.Set("created_to", r.Finish.Format(dateLayout))
	v.Set("with_detail", "false")
	applyFilter(v, f)
	return v
}

// ThreadParams строит параметры распределения по потокам: как у городов,
// но без флага детализации.
func ThreadParams(f Filter, now time.Time) url.Values {
	r := NormalizePeriod(f.Period, now)
	v := url.Values{}
	v.Set("created_from", r.Start.Format(dateLayout))
	v.Set("created_to", r.Finish.Format(dateLayout))
	applyFilter(v, f)
	return v
}

// SummaryParams строит параметры сводки по фильтру. Этот же набор
// уходит в массовую выплату по фильтру, поэтому сводка и выплата
// всегда описывают одну и ту же выборку.
func SummaryParams(f Filter, now time.Time) url.Values {
	r := NormalizePeriod(f.Period, now)
	v := url.Values{}
	v.Set("created_from", r.Start.Format(dateLayout))
	v.Set("created_to", r.Finish.Format(dateLayout))
	applyFilter(v, f)
	return v
}

// RatesParams строит параметры поиска на странице настроек ставок.
// Страница использует тот же словарь фильтров, но без периода и пагинации:
// ставки не привязаны ко времени.
func RatesParams(f Filter) url.Values {
	v := url.Values{}
	applyFilter(v, f)
	return v
}

// applyFilter добавляет общие для всех эндпоинтов параметры фильтра.
// Пустой мультивыбор опускается целиком, пустая строка никогда не
// отправляется.
func applyFilter(v url.Values, f Filter) {
	if len(f.Cities) > 0 {
		v.Set("cities", strings.Join(f.Cities, ","))
	}
	if len(f.Flows) > 0 {
		v.Set("threads", strings.Join(f.Flows, ","))
	}
	if len(f.Webmasters) > 0 {
		v.Set("users", strings.Join(f.Webmasters, ","))
	}
	if id, ok := f.Status.BackendID(); ok {
		v.Set("service_status_id", strconv.Itoa(id))
	}
	switch f.Paid {
	case PaidOnly:
		v.Set("paid_commission", "true")
	case PaidUnpaid:
		v.Set("paid_commission", "false")
	}
	if f.OfferID != 0 {
		v.Set("offer_id", strconv.Itoa(f.OfferID))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		v.Set("query", q)
	}
}
