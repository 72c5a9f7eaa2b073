// Package session хранит состояние консоли одной открытой страницы:
// фильтр, пагинацию и выбор строк для массовых действий.
//
// Состояние живёт только в памяти и умирает вместе с сессией — фильтры
// не переживают уход со страницы. Каждую сессию защищает собственный
// мьютекс: все мутации приходят из обработчиков HTTP и из колбэков
// завершения фоновых запросов, как события одного цикла.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/leadhub-crm/admin-console/internal/leadfilter"
	"github.com/leadhub-crm/admin-console/internal/lib/debounce"
	"github.com/leadhub-crm/admin-console/internal/lib/sl"
)

// QueryQuietInterval — пауза набора текста, после которой строка поиска
// применяется к фильтру.
const QueryQuietInterval = 400 * time.Millisecond

// SummaryFetcher запрашивает серверную сводку по фильтру. Реализуется
// сервисом лидов.
type SummaryFetcher interface {
	FilterSummary(ctx context.Context, f leadfilter.Filter, role, userID string) (*leadfilter.FilterSummary, error)
}

// Console — состояние одной сессии консоли.
type Console struct {
	mu sync.Mutex

	id     string
	userID string
	role   string

	filter     leadfilter.Filter
	pagination leadfilter.Pagination
	selection  leadfilter.Selection

	// summaryGen растёт при каждом изменении фильтра в режиме «все по
	// фильтру»; ответ сводки применяется только если его поколение всё
	// ещё текущее — побеждает последний запрос.
	summaryGen uint64

	queryDebouncer *debounce.Debouncer
	fetcher        SummaryFetcher
	log            *slog.Logger

	lastSeen time.Time
}

func newConsole(id, userID, role string, fetcher SummaryFetcher, log *slog.Logger) *Console {
	c := &Console{
		id:         id,
		userID:     userID,
		role:       role,
		filter:     leadfilter.NewFilter(),
		pagination: leadfilter.NewPagination(),
		selection:  leadfilter.NewSelection(),
		fetcher:    fetcher,
		log:        log,
		lastSeen:   time.Now(),
	}
	c.queryDebouncer = debounce.New(QueryQuietInterval, c.applyQuery)
	return c
}

// ID возвращает идентификатор сессии.
func (c *Console) ID() string { return c.id }

// State — снимок состояния сессии для ответа консоли.
type State struct {
	Filter      leadfilter.Filter         `json:"filter"`
	Pagination  leadfilter.Pagination     `json:"pagination"`
	Mode        leadfilter.SelectionMode  `json:"selection_mode"`
	SelectedIDs []string                  `json:"selected_ids"`
	RowsSummary leadfilter.RowsSummary    `json:"rows_summary"`
	Summary     *leadfilter.FilterSummary `json:"filter_summary,omitempty"`
	SummarySt   leadfilter.SummaryState   `json:"summary_state,omitempty"`
}

// Snapshot возвращает копию текущего состояния сессии.
func (c *Console) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Filter:      c.filter.Clone(),
		Pagination:  c.pagination,
		Mode:        c.selection.Mode,
		SelectedIDs: c.selection.SelectedIDs(),
		RowsSummary: c.selection.SummarizeRows(),
		Summary:     c.selection.Summary,
		SummarySt:   c.selection.SummaryState,
	}
}

// Filter возвращает копию текущего фильтра сессии.
func (c *Console) Filter() leadfilter.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter.Clone()
}

// Pagination возвращает текущую пагинацию сессии.
func (c *Console) Pagination() leadfilter.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

// UpdateFilter применяет новое значение фильтра целиком. Любое изменение
// возвращает пагинацию на первую страницу; в режиме «все по фильтру»
// сводка становится устаревшей и перезапрашивается.
func (c *Console) UpdateFilter(f leadfilter.Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filter.Equal(f) {
		return
	}
	c.filter = f.Clone()
	c.afterFilterChange()
}

// SetQuery принимает очередное значение строки поиска. К фильтру оно
// применится только после паузы набора, промежуточные значения исчезают.
func (c *Console) SetQuery(q string) {
	c.queryDebouncer.Push(q)
}

// applyQuery — приёмник дебаунсера строки поиска.
func (c *Console) applyQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.filter.Query == q {
		return
	}
	c.filter.Query = q
	c.afterFilterChange()
}

// afterFilterChange выполняет пересогласование после изменения фильтра.
// Вызывается под мьютексом.
func (c *Console) afterFilterChange() {
	c.pagination.Reset()
	if c.selection.Mode != leadfilter.ModeAllMatching {
		return
	}
	c.selection.InvalidateSummary()
	c.refreshSummaryLocked()
}

// refreshSummaryLocked запускает фоновый запрос сводки для текущего
// фильтра. Поколение фиксируется до запуска: ответ устаревшего запроса
// не перезапишет состояние, начатое более новым.
func (c *Console) refreshSummaryLocked() {
	c.summaryGen++
	gen := c.summaryGen
	f := c.filter.Clone()

	go func() {
		summary, err := c.fetcher.FilterSummary(context.Background(), f, c.role, c.userID)

		c.mu.Lock()
		defer c.mu.Unlock()
		if gen != c.summaryGen {
			// Запрос устарел, его результат отбрасывается.
			return
		}
		if err != nil {
			c.log.Error("filter summary refresh failed", slog.String("session", c.id), sl.Err(err))
			c.selection.SetSummaryError()
			return
		}
		c.selection.SetSummary(summary)
	}()
}

// SetSelectAll включает или выключает режим «все по фильтру».
func (c *Console) SetSelectAll(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on {
		if c.selection.Mode == leadfilter.ModeAllMatching {
			return
		}
		c.selection.EnterAllMatching()
		c.refreshSummaryLocked()
		return
	}
	c.selection.ExitAllMatching()
}

// ToggleRow переключает выбор одной строки. Клик в режиме «все по
// фильтру» выводит из него, строка остаётся единственной выбранной.
func (c *Console) ToggleRow(id string, snap leadfilter.RowSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.ToggleRow(id, snap)
}

// SetPage устанавливает номер страницы с поджатием к доступным пределам.
func (c *Console) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pagination.Page = page
	c.pagination.Clamp()
}

// SetPageSize меняет размер страницы и возвращает на первую страницу.
func (c *Console) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pagination.SetPageSize(size)
}

// ApplyTotal запоминает общее число строк из последнего ответа списка.
func (c *Console) ApplyTotal(total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pagination.SetTotal(total)
}

// PayPlan описывает, как выполнять массовую выплату для текущего выбора.
type PayPlan struct {
	ByFilter bool
	Filter   leadfilter.Filter
	IDs      []string
}

// PayPlan возвращает план массовой выплаты. В режиме «все по фильтру»
// выплата доступна только при готовой сводке: без неё неизвестны ни
// сумма, ни количество подходящих лидов.
func (c *Console) PayPlan() (PayPlan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection.Mode == leadfilter.ModeAllMatching {
		if c.selection.SummaryState != leadfilter.SummaryReady {
			return PayPlan{}, false
		}
		return PayPlan{ByFilter: true, Filter: c.filter.Clone()}, true
	}
	ids := c.selection.EligibleIDs()
	if len(ids) == 0 {
		return PayPlan{}, false
	}
	return PayPlan{IDs: ids}, true
}

// UserID возвращает владельца сессии.
func (c *Console) UserID() string { return c.userID }

// Role возвращает роль владельца сессии.
func (c *Console) Role() string { return c.role }

// close останавливает дебаунсер; ожидающее значение строки поиска
// отбрасывается.
func (c *Console) close() {
	c.queryDebouncer.Stop()
}

func (c *Console) touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastSeen = time.Now()
}

func (c *Console) expired(ttl time.Duration, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastSeen) > ttl
}
