// Package leads содержит логику страниц списка лидов и статистики:
// композицию фильтров в параметры запросов бэкенда и кеширование
// справочников.
package leads

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/leadhub-crm/admin-console/internal/leadfilter"
	"github.com/leadhub-crm/admin-console/internal/lib/sl"
	"github.com/leadhub-crm/admin-console/internal/marketplace"
)

// RoleWebmaster — роль, для которой выборка всегда ограничивается
// собственными лидами пользователя.
const RoleWebmaster = "webmaster"

// Backend определяет методы клиента бэкенда, которые использует сервис.
type Backend interface {
	Leads(ctx context.Context, query url.Values) (*marketplace.LeadPage, error)
	Dynamics(ctx context.Context, query url.Values) ([]marketplace.DynamicsPoint, error)
	DynamicsCommission(ctx context.Context, query url.Values) ([]marketplace.CommissionPoint, error)
	ByCities(ctx context.Context, query url.Values) ([]marketplace.CityCount, error)
	ByThreads(ctx context.Context, query url.Values) ([]marketplace.ThreadCount, error)
	FilterSummary(ctx context.Context, query url.Values) (*leadfilter.FilterSummary, error)
	PayByIDs(ctx context.Context, ids []string) error
	PayByFilter(ctx context.Context, query url.Values) error
	Offers(ctx context.Context) ([]leadfilter.Offer, error)
	Cities(ctx context.Context) ([]string, error)
}

// Cache описывает методы кеширования справочников.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Service реализует логику страниц лидов и статистики.
type Service struct {
	backend Backend
	cache   Cache
	log     *slog.Logger
}

// New создает новый экземпляр Service.
func New(backend Backend, cache Cache, log *slog.Logger) *Service {
	return &Service{
		backend: backend,
		cache:   cache,
		log:     log,
	}
}

// scope ограничивает фильтр собственными лидами вебмастера. Идентификатор
// пользователя передаётся явным аргументом, а не берётся из окружения.
func scope(f leadfilter.Filter, role, userID string) leadfilter.Filter {
	if role == RoleWebmaster {
		f = f.Clone()
		f.Webmasters = []string{userID}
	}
	return f
}

// List возвращает страницу таблицы лидов по фильтру и пагинации.
func (s *Service) List(ctx context.Context, f leadfilter.Filter, pag leadfilter.Pagination, role, userID string) (*marketplace.LeadPage, error) {
	const op = "services.leads.List"
	page, err := s.backend.Leads(ctx, leadfilter.ListParams(scope(f, role, userID), pag))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return page, nil
}

// Dynamics возвращает временной ряд динамики лидов и гранулярность
// бакетов для подписей оси.
func (s *Service) Dynamics(ctx context.Context, f leadfilter.Filter, role, userID string) ([]marketplace.DynamicsPoint, leadfilter.Granularity, error) {
	const op = "services.leads.Dynamics"
	now := time.Now()
	points, err := s.backend.Dynamics(ctx, leadfilter.SeriesParams(scope(f, role, userID), now))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return points, leadfilter.NormalizePeriod(f.Period, now).Granularity, nil
}

// CommissionDynamics возвращает временной ряд разбивки комиссии.
func (s *Service) CommissionDynamics(ctx context.Context, f leadfilter.Filter, role, userID string) ([]marketplace.CommissionPoint, leadfilter.Granularity, error) {
	const op = "services.leads.CommissionDynamics"
	now := time.Now()
	points, err := s.backend.DynamicsCommission(ctx, leadfilter.SeriesParams(scope(f, role, userID), now))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return points, leadfilter.NormalizePeriod(f.Period, now).Granularity, nil
}

// CityDistribution возвращает распределение лидов по городам.
func (s *Service) CityDistribution(ctx context.Context, f leadfilter.Filter, role, userID string) ([]marketplace.CityCount, error) {
	const op = "services.leads.CityDistribution"
	rows, err := s.backend.ByCities(ctx, leadfilter.CityParams(scope(f, role, userID), time.Now()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rows, nil
}

// ThreadDistribution возвращает распределение лидов по потокам.
func (s *Service) ThreadDistribution(ctx context.Context, f leadfilter.Filter, role, userID string) ([]marketplace.ThreadCount, error) {
	const op = "services.leads.ThreadDistribution"
	rows, err := s.backend.ByThreads(ctx, leadfilter.ThreadParams(scope(f, role, userID), time.Now()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rows, nil
}

// FilterSummary возвращает серверную сводку по всем лидам выборки.
func (s *Service) FilterSummary(ctx context.Context, f leadfilter.Filter, role, userID string) (*leadfilter.FilterSummary, error) {
	const op = "services.leads.FilterSummary"
	summary, err := s.backend.FilterSummary(ctx, leadfilter.SummaryParams(scope(f, role, userID), time.Now()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return summary, nil
}

// PayByFilter отмечает выплаченной комиссию всех лидов выборки.
// Параметры те же, что у сводки: выплачивается ровно то, что показано.
func (s *Service) PayByFilter(ctx context.Context, f leadfilter.Filter, role, userID string) error {
	const op = "services.leads.PayByFilter"
	if err := s.backend.PayByFilter(ctx, leadfilter.SummaryParams(scope(f, role, userID), time.Now())); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// PayByIDs отмечает выплаченной комиссию явно перечисленных лидов.
func (s *Service) PayByIDs(ctx context.Context, ids []string) error {
	const op = "services.leads.PayByIDs"
	if len(ids) == 0 {
		return fmt.Errorf("%s: empty id list", op)
	}
	if err := s.backend.PayByIDs(ctx, ids); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

const (
	offersCacheKey = "catalog:offers"
	citiesCacheKey = "catalog:cities"
	catalogTTL     = time.Hour
)

// Offers возвращает каталог офферов, подставляя закешированный, если он
// ещё жив. Ошибка кеша не фатальна — каталог перечитывается с бэкенда.
func (s *Service) Offers(ctx context.Context) ([]leadfilter.Offer, error) {
	const op = "services.leads.Offers"

	var cached []leadfilter.Offer
	found, err := s.cache.Get(ctx, offersCacheKey, &cached)
	if err != nil {
		s.log.Warn("offers cache unavailable", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	offers, err := s.backend.Offers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, offersCacheKey, offers, catalogTTL); err != nil {
		s.log.Warn("failed to cache offers", sl.Err(err))
	}
	return offers, nil
}

// Cities возвращает справочник городов с тем же кешированием, что и офферы.
func (s *Service) Cities(ctx context.Context) ([]string, error) {
	const op = "services.leads.Cities"

	var cached []string
	found, err := s.cache.Get(ctx, citiesCacheKey, &cached)
	if err != nil {
		s.log.Warn("cities cache unavailable", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	cities, err := s.backend.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, citiesCacheKey, cities, catalogTTL); err != nil {
		s.log.Warn("failed to cache cities", sl.Err(err))
	}
	return cities, nil
}

// ResolveOffer превращает пользовательский ввод фильтра по офферу
// в идентификатор, используя каталог офферов.
func (s *Service) ResolveOffer(ctx context.Context, raw string) (int, error) {
	const op = "services.leads.ResolveOffer"
	if raw == "" {
		return 0, nil
	}
	catalog, err := s.Offers(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, ok := leadfilter.ResolveOffer(catalog, raw)
	if !ok {
		return 0, fmt.Errorf("%s: unknown offer %q", op, raw)
	}
	return id, nil
}
