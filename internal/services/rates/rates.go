// Package rates содержит логику страницы настроек ставок комиссии:
// поиск по тому же словарю фильтров, что и у лидов, и CRUD ставок,
// проксируемый на бэкенд.
package rates

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/leadhub-crm/admin-console/internal/leadfilter"
	"github.com/leadhub-crm/admin-console/internal/marketplace"
)

// Backend определяет методы клиента бэкенда, которые использует сервис.
type Backend interface {
	Rates(ctx context.Context, query url.Values) ([]marketplace.Rate, error)
	CreateRate(ctx context.Context, rate marketplace.Rate) (*marketplace.Rate, error)
	UpdateRate(ctx context.Context, rate marketplace.Rate) error
	DeleteRate(ctx context.Context, id int) error
	Regions(ctx context.Context) ([]string, error)
}

// Service реализует логику страницы настроек ставок.
type Service struct {
	backend Backend
	log     *slog.Logger
}

// New создает новый экземпляр Service.
func New(backend Backend, log *slog.Logger) *Service {
	return &Service{backend: backend, log: log}
}

// Search возвращает ставки, подходящие под фильтр по городам,
// вебмастерам и строке поиска.
func (s *Service) Search(ctx context.Context, f leadfilter.Filter) ([]marketplace.Rate, error) {
	const op = "services.rates.Search"
	rates, err := s.backend.Rates(ctx, leadfilter.RatesParams(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rates, nil
}

// Create создаёт ставку комиссии.
func (s *Service) Create(ctx context.Context, rate marketplace.Rate) (*marketplace.Rate, error) {
	const op = "services.rates.Create"
	created, err := s.backend.CreateRate(ctx, rate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("rate created", slog.Int("id", created.ID))
	return created, nil
}

// Update обновляет ставку комиссии.
func (s *Service) Update(ctx context.Context, rate marketplace.Rate) error {
	const op = "services.rates.Update"
	if rate.ID == 0 {
		return fmt.Errorf("%s: missing rate id", op)
	}
	if err := s.backend.UpdateRate(ctx, rate); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет ставку комиссии.
func (s *Service) Delete(ctx context.Context, id int) error {
	const op = "services.rates.Delete"
	if err := s.backend.DeleteRate(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Regions возвращает справочник регионов для формы ставки.
func (s *Service) Regions(ctx context.Context) ([]string, error) {
	const op = "services.rates.Regions"
	regions, err := s.backend.Regions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return regions, nil
}
