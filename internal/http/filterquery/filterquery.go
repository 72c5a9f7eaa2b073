// Package filterquery разбирает параметры фильтра из запросов консоли
// в модель leadfilter.Filter. Один и тот же словарь параметров принимают
// все страницы: список лидов, статистика и настройки ставок.
package filterquery

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/leadhub-crm/admin-console/internal/leadfilter"
	"github.com/leadhub-crm/admin-console/internal/models"
)

const dateLayout = "2006-01-02"

// Parse разбирает параметры запроса консоли в фильтр. Вторым результатом
// возвращается сырой ввод фильтра по офферу — его разрешает в
// идентификатор вызывающая сторона, у которой есть каталог офферов.
func Parse(q url.Values) (leadfilter.Filter, string, error) {
	const op = "filterquery.Parse"
	f := leadfilter.NewFilter()

	if raw := q.Get("period_from"); raw != "" {
		from, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return f, "", fmt.Errorf("%s: invalid period_from: %w", op, err)
		}
		f.Period.From = from
	}
	if raw := q.Get("period_to"); raw != "" {
		to, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return f, "", fmt.Errorf("%s: invalid period_to: %w", op, err)
		}
		f.Period.To = to
	}
	if !f.Period.From.IsZero() && !f.Period.To.IsZero() && f.Period.From.After(f.Period.To) {
		return f, "", fmt.Errorf("%s: period_from is after period_to", op)
	}

	f.Cities = splitList(q.Get("cities"))
	f.Flows = splitList(q.Get("flows"))
	f.Webmasters = splitList(q.Get("webmasters"))

	if raw := q.Get("status"); raw != "" {
		status := leadfilter.Status(raw)
		if !status.Valid() {
			return f, "", fmt.Errorf("%s: unknown status %q", op, raw)
		}
		f.Status = status
	}
	if raw := q.Get("paid"); raw != "" {
		paid := leadfilter.Paid(raw)
		if !paid.Valid() {
			return f, "", fmt.Errorf("%s: unknown paid value %q", op, raw)
		}
		f.Paid = paid
	}

	f.Query = q.Get("query")
	return f, q.Get("offer"), nil
}

// FromUpdate преобразует тело запроса консоли в фильтр. Как и Parse,
// вторым результатом возвращает сырой ввод фильтра по офферу.
func FromUpdate(u models.FilterUpdate) (leadfilter.Filter, string, error) {
	const op = "filterquery.FromUpdate"
	f := leadfilter.NewFilter()

	if u.PeriodFrom != "" {
		from, err := time.ParseInLocation(dateLayout, u.PeriodFrom, time.Local)
		if err != nil {
			return f, "", fmt.Errorf("%s: invalid period_from: %w", op, err)
		}
		f.Period.From = from
	}
	if u.PeriodTo != "" {
		to, err := time.ParseInLocation(dateLayout, u.PeriodTo, time.Local)
		if err != nil {
			return f, "", fmt.Errorf("%s: invalid period_to: %w", op, err)
		}
		f.Period.To = to
	}
	if !f.Period.From.IsZero() && !f.Period.To.IsZero() && f.Period.From.After(f.Period.To) {
		return f, "", fmt.Errorf("%s: period_from is after period_to", op)
	}

	f.Cities = cleanList(u.Cities)
	f.Flows = cleanList(u.Flows)
	f.Webmasters = cleanList(u.Webmasters)

	if u.Status != "" {
		status := leadfilter.Status(u.Status)
		if !status.Valid() {
			return f, "", fmt.Errorf("%s: unknown status %q", op, u.Status)
		}
		f.Status = status
	}
	if u.Paid != "" {
		paid := leadfilter.Paid(u.Paid)
		if !paid.Valid() {
			return f, "", fmt.Errorf("%s: unknown paid value %q", op, u.Paid)
		}
		f.Paid = paid
	}

	f.Query = u.Query
	return f, u.Offer, nil
}

// ParsePagination разбирает параметры пагинации запроса списка.
func ParsePagination(q url.Values) leadfilter.Pagination {
	pag := leadfilter.NewPagination()
	if raw := q.Get("page"); raw != "" {
		if page, err := parsePositive(raw); err == nil {
			pag.Page = page
		}
	}
	if raw := q.Get("page_size"); raw != "" {
		if size, err := parsePositive(raw); err == nil && leadfilter.ValidPageSize(size) {
			pag.PageSize = size
		}
	}
	return pag
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cleanList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePositive(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("not positive: %d", n)
	}
	return n, nil
}
