package leadfilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParams_FullScenario(t *testing.T) {
	f := NewFilter()
	f.Period = Period{From: date(2024, time.January, 1), To: date(2024, time.January, 1)}
	f.Cities = []string{"Москва"}
	f.Status = StatusConfirmed
	f.Paid = PaidUnpaid

	pag := Pagination{Page: 3, PageSize: 25}

	v := ListParams(f, pag)

	assert.Equal(t, "2024-01-01", v.Get("created_from"))
	assert.Equal(t, "2024-01-01", v.Get("created_to"))
	assert.Equal(t, "Москва", v.Get("cities"))
	assert.Equal(t, "3", v.Get("service_status_id"))
	assert.Equal(t, "false", v.Get("paid_commission"))
	assert.Equal(t, "25", v.Get("limit"))
	assert.Equal(t, "50", v.Get("offset"))
	assert.NotContains(t, v, "threads")
	assert.NotContains(t, v, "users")
	assert.NotContains(t, v, "offer_id")
	assert.NotContains(t, v, "query")
}

func TestSeriesParams_FullScenario(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

	f := NewFilter()
	f.Period = Period{From: date(2024, time.January, 1), To: date(2024, time.January, 1)}
	f.Cities = []string{"Москва"}
	f.Status = StatusConfirmed
	f.Paid = PaidUnpaid

	v := SeriesParams(f, now)

	assert.Equal(t, "2024-01-01T00:00:00", v.Get("start"))
	assert.Equal(t, "2024-01-01T00:00:00", v.Get("finish"))
	assert.Equal(t, "Москва", v.Get("cities"))
	assert.Equal(t, "3", v.Get("service_status_id"))
	assert.Equal(t, "false", v.Get("paid_commission"))
	assert.NotContains(t, v, "limit")
	assert.NotContains(t, v, "offset")

	r := NormalizePeriod(f.Period, now)
	assert.Equal(t, GranularityHourly, r.Granularity)
}

func TestParams_EmptyMultiSelectOmitted(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	f := NewFilter()

	families := []struct {
		name   string
		params map[string][]string
	}{
		{"список", ListParams(f, NewPagination())},
		{"временные ряды", SeriesParams(f, now)},
		{"распределение по городам", CityParams(f, now)},
		{"сводка по фильтру", SummaryParams(f, now)},
	}

	for _, fam := range families {
		t.Run(fam.name, func(t *testing.T) {
			assert.NotContains(t, fam.params, "cities")
			assert.NotContains(t, fam.params, "threads")
			assert.NotContains(t, fam.params, "users")
			assert.NotContains(t, fam.params, "service_status_id")
			assert.NotContains(t, fam.params, "paid_commission")
			assert.NotContains(t, fam.params, "query")
		})
	}
}

func TestParams_MultiSelectJoined(t *testing.T) {
	f := NewFilter()
	f.Cities = []string{"Москва", "Казань"}
	f.Flows = []string{"fl-1", "fl-2"}
	f.Webmasters = []string{"42"}

	v := ListParams(f, NewPagination())

	assert.Equal(t, "Москва,Казань", v.Get("cities"))
	assert.Equal(t, "fl-1,fl-2", v.Get("threads"))
	assert.Equal(t, "42", v.Get("users"))
}

func TestParams_QueryTrimmed(t *testing.T) {
	f := NewFilter()
	f.Query = "   "
	assert.NotContains(t, ListParams(f, NewPagination()), "query")

	f.Query = "  +7900 "
	assert.Equal(t, "+7900", ListParams(f, NewPagination()).Get("query"))
}

func TestCityParams_WithDetail(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	f := NewFilter()
	f.Period = Period{From: date(2024, time.February, 1), To: date(2024, time.February, 10)}

	v := CityParams(f, now)

	assert.Equal(t, "2024-02-01", v.Get("created_from"))
	assert.Equal(t, "2024-02-10", v.Get("created_to"))
	assert.Equal(t, "false", v.Get("with_detail"))
}

func TestSummaryParams_DefaultPeriodResolved(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	f := NewFilter()

	v := SummaryParams(f, now)

	assert.Equal(t, "2024-02-14", v.Get("created_from"))
	assert.Equal(t, "2024-03-15", v.Get("created_to"))
}

func TestParams_Idempotent(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)
	f := NewFilter()
	f.Period = Period{From: date(2024, time.January, 1), To: date(2024, time.February, 1)}
	f.Cities = []string{"Сочи"}
	f.Status = StatusInWork
	f.Paid = PaidOnly
	f.OfferID = 7
	f.Query = "иванов"
	pag := Pagination{Page: 2, PageSize: 50}

	require.Equal(t, ListParams(f, pag).Encode(), ListParams(f, pag).Encode())
	require.Equal(t, SeriesParams(f, now).Encode(), SeriesParams(f, now).Encode())
	require.Equal(t, CityParams(f, now).Encode(), CityParams(f, now).Encode())
	require.Equal(t, SummaryParams(f, now).Encode(), SummaryParams(f, now).Encode())
}

func TestStatusTable_Bijection(t *testing.T) {
	want := map[Status]int{
		StatusInWork:        1,
		StatusAssigned:      2,
		StatusConfirmed:     3,
		StatusClientRefusal: 4,
		StatusLowQuality:    5,
	}

	for status, id := range want {
		gotID, ok := status.BackendID()
		require.True(t, ok, status)
		assert.Equal(t, id, gotID)

		back, ok := StatusByID(gotID)
		require.True(t, ok, gotID)
		assert.Equal(t, status, back)
	}

	_, ok := StatusAll.BackendID()
	assert.False(t, ok, "StatusAll не имеет числового идентификатора")
}

func TestResolveOffer(t *testing.T) {
	catalog := []Offer{
		{ID: 1, Title: "Ремонт квартир"},
		{ID: 2, Title: "Натяжные потолки"},
	}

	tests := []struct {
		name   string
		raw    string
		wantID int
		wantOK bool
	}{
		{"числовой идентификатор", "17", 17, true},
		{"точное название", "Натяжные потолки", 2, true},
		{"неизвестное название", "Окна", 0, false},
		{"пустой ввод", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ResolveOffer(catalog, tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
