package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/leadhub-crm/admin-console/internal/leadfilter"
)

// Offers возвращает каталог офферов. Каталог нужен консоли для
// разрешения фильтра по офферу из названия в идентификатор.
func (c *Client) Offers(ctx context.Context) ([]leadfilter.Offer, error) {
	var offers []leadfilter.Offer
	if err := c.get(ctx, "/offers", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// Cities возвращает справочник городов для мультивыбора фильтра.
func (c *Client) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	if err := c.get(ctx, "/cities", nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// Regions возвращает справочник регионов для страницы настроек ставок.
func (c *Client) Regions(ctx context.Context) ([]string, error) {
	var regions []string
	if err := c.get(ctx, "/regions", nil, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

// Rates возвращает ставки комиссии, подходящие под переданные фильтры.
func (c *Client) Rates(ctx context.Context, query url.Values) ([]Rate, error) {
	var rates []Rate
	if err := c.get(ctx, "/rates", query, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// CreateRate создаёт ставку комиссии и возвращает её с присвоенным
// идентификатором.
func (c *Client) CreateRate(ctx context.Context, rate Rate) (*Rate, error) {
	var created Rate
	if err := c.do(ctx, http.MethodPost, "/rates", nil, rate, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRate обновляет ставку комиссии по идентификатору.
func (c *Client) UpdateRate(ctx context.Context, rate Rate) error {
	return c.do(ctx, http.MethodPut, "/rates/"+strconv.Itoa(rate.ID), nil, rate, nil)
}

// DeleteRate удаляет ставку комиссии по идентификатору.
func (c *Client) DeleteRate(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/rates/"+strconv.Itoa(id), nil, nil, nil)
}

// UpdateProfileField обновляет одно поле профиля пользователя.
// Консоль редактирует профиль по одному полю за раз.
func (c *Client) UpdateProfileField(ctx context.Context, userID, field, value string) error {
	body := map[string]string{field: value}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%s", userID), nil, body, nil)
}
