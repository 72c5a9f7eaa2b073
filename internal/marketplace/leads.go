package marketplace

import (
	"context"
	"net/http"
	"net/url"

	"github.com/leadhub-crm/admin-console/internal/leadfilter"
)

// Leads возвращает страницу списка лидов по готовым параметрам запроса.
func (c *Client) Leads(ctx context.Context, query url.Values) (*LeadPage, error) {
	var page LeadPage
	if err := c.get(ctx, "/leads", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Dynamics возвращает временной ряд динамики лидов.
func (c *Client) Dynamics(ctx context.Context, query url.Values) ([]DynamicsPoint, error) {
	var points []DynamicsPoint
	if err := c.get(ctx, "/leads/stats/dynamics", query, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// DynamicsCommission возвращает временной ряд разбивки комиссии.
func (c *Client) DynamicsCommission(ctx context.Context, query url.Values) ([]CommissionPoint, error) {
	var points []CommissionPoint
	if err := c.get(ctx, "/leads/stats/dynamics_commission", query, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// ByCities возвращает распределение лидов по городам.
func (c *Client) ByCities(ctx context.Context, query url.Values) ([]CityCount, error) {
	var rows []CityCount
	if err := c.get(ctx, "/leads/stats/by-cities", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByThreads возвращает распределение лидов по потокам.
func (c *Client) ByThreads(ctx context.Context, query url.Values) ([]ThreadCount, error) {
	var rows []ThreadCount
	if err := c.get(ctx, "/leads/stats/by-threads", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FilterSummary возвращает серверную сводку по всем лидам, подходящим
// под фильтр.
func (c *Client) FilterSummary(ctx context.Context, query url.Values) (*leadfilter.FilterSummary, error) {
	var summary leadfilter.FilterSummary
	if err := c.get(ctx, "/leads/stats/filter_summary", query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// PayByIDs отмечает выплаченной комиссию явно перечисленных лидов.
// Параметры фильтра бэкендом в этом режиме игнорируются, поэтому не
// отправляются вовсе.
func (c *Client) PayByIDs(ctx context.Context, ids []string) error {
	return c.do(ctx, http.MethodPatch, "/leads/stats/pay_lids", nil, ids, nil)
}

// PayByFilter отмечает выплаченной комиссию всех лидов, подходящих под
// фильтр. Набор параметров идентичен сводке по фильтру: выплачивается
// ровно та выборка, которую видел пользователь.
func (c *Client) PayByFilter(ctx context.Context, query url.Values) error {
	return c.do(ctx, http.MethodPatch, "/leads/stats/pay_lids", query, nil, nil)
}
