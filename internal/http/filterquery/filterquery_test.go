package filterquery_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadhub-crm/admin-console/internal/http/filterquery"
	"github.com/leadhub-crm/admin-console/internal/leadfilter"
	"github.com/leadhub-crm/admin-console/internal/models"
)

func TestParse_Defaults(t *testing.T) {
	f, offer, err := filterquery.Parse(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, leadfilter.StatusAll, f.Status)
	assert.Equal(t, leadfilter.PaidAll, f.Paid)
	assert.True(t, f.Period.IsZero())
	assert.Empty(t, f.Cities)
	assert.Empty(t, offer)
}

func TestParse_FullSet(t *testing.T) {
	q := url.Values{}
	q.Set("period_from", "2024-01-01")
	q.Set("period_to", "2024-02-01")
	q.Set("cities", "Москва, Казань")
	q.Set("flows", "fl-1,fl-2")
	q.Set("webmasters", "7")
	q.Set("status", "confirmed")
	q.Set("paid", "unpaid")
	q.Set("offer", "Ремонт квартир")
	q.Set("query", "иванов")

	f, offer, err := filterquery.Parse(q)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), f.Period.From)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local), f.Period.To)
	assert.Equal(t, []string{"Москва", "Казань"}, f.Cities)
	assert.Equal(t, []string{"fl-1", "fl-2"}, f.Flows)
	assert.Equal(t, []string{"7"}, f.Webmasters)
	assert.Equal(t, leadfilter.StatusConfirmed, f.Status)
	assert.Equal(t, leadfilter.PaidUnpaid, f.Paid)
	assert.Equal(t, "Ремонт квартир", offer)
	assert.Equal(t, "иванов", f.Query)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]string
	}{
		{"кривая дата", map[string]string{"period_from": "01-01-2024"}},
		{"начало позже конца", map[string]string{"period_from": "2024-02-01", "period_to": "2024-01-01"}},
		{"неизвестный статус", map[string]string{"status": "pending"}},
		{"неизвестный признак выплаты", map[string]string{"paid": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := url.Values{}
			for k, v := range tt.set {
				q.Set(k, v)
			}
			_, _, err := filterquery.Parse(q)
			assert.Error(t, err)
		})
	}
}

func TestFromUpdate(t *testing.T) {
	f, offer, err := filterquery.FromUpdate(models.FilterUpdate{
		PeriodFrom: "2024-01-01",
		PeriodTo:   "2024-02-01",
		Cities:     []string{" Москва ", "", "Казань"},
		Status:     "confirmed",
		Paid:       "unpaid",
		Offer:      "Ремонт квартир",
		Query:      "иванов",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), f.Period.From)
	assert.Equal(t, []string{"Москва", "Казань"}, f.Cities)
	assert.Equal(t, leadfilter.StatusConfirmed, f.Status)
	assert.Equal(t, leadfilter.PaidUnpaid, f.Paid)
	assert.Equal(t, "Ремонт квартир", offer)
	assert.Equal(t, "иванов", f.Query)
}

func TestFromUpdate_PeriodOrder(t *testing.T) {
	_, _, err := filterquery.FromUpdate(models.FilterUpdate{
		PeriodFrom: "2024-02-01",
		PeriodTo:   "2024-01-01",
		Status:     "all",
		Paid:       "all",
	})
	assert.Error(t, err)
}

func TestParsePagination(t *testing.T) {
	q := url.Values{}
	q.Set("page", "4")
	q.Set("page_size", "50")

	pag := filterquery.ParsePagination(q)

	assert.Equal(t, 4, pag.Page)
	assert.Equal(t, 50, pag.PageSize)
}

func TestParsePagination_InvalidFallsBack(t *testing.T) {
	q := url.Values{}
	q.Set("page", "-2")
	q.Set("page_size", "33")

	pag := filterquery.ParsePagination(q)

	assert.Equal(t, 1, pag.Page)
	assert.Equal(t, leadfilter.DefaultPageSize, pag.PageSize)
}
