package leadfilter

import "sort"

// SelectionMode — режим выбора строк для массового действия.
type SelectionMode string

const (
	// ModeRows — выбраны явно перечисленные строки.
	ModeRows SelectionMode = "rows"
	// ModeAllMatching — выбраны все строки, подходящие под текущий фильтр,
	// независимо от пагинации.
	ModeAllMatching SelectionMode = "all_matching_filter"
)

// SummaryState — состояние серверной сводки в режиме ModeAllMatching.
type SummaryState string

const (
	// SummaryNone — сводка не нужна (режим ModeRows).
	SummaryNone SummaryState = ""
	// SummaryPending — сводка запрошена и ещё не получена.
	SummaryPending SummaryState = "pending"
	// SummaryReady — сводка получена и актуальна для текущего фильтра.
	SummaryReady SummaryState = "ready"
	// SummaryFailed — запрос сводки завершился ошибкой; массовая выплата
	// по фильтру в этом состоянии недоступна.
	SummaryFailed SummaryState = "failed"
)

// RowSnapshot — снимок строки на момент выбора. Хранится, чтобы считать
// сводку по выбранным строкам без повторных запросов.
type RowSnapshot struct {
	Commission float64 `json:"commission"`
	Realized   bool    `json:"is_realized"`
	Paid       bool    `json:"is_paid"`
	Burned     bool    `json:"is_burned"`
}

// SummaryBucket — счётчик и сумма комиссии одной категории сводки.
type SummaryBucket struct {
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// FilterSummary — серверная сводка по всем строкам, подходящим под фильтр.
type FilterSummary struct {
	RealizedUnpaid SummaryBucket `json:"realized_unpaid"`
	RealizedPaid   SummaryBucket `json:"realized_paid"`
	Hold           SummaryBucket `json:"hold"`
}

// Selection отслеживает выбор строк для массового действия. Режимы
// взаимоисключающие: явный список строк и «все по фильтру» никогда не
// активны одновременно, переход в один очищает другой.
type Selection struct {
	Mode         SelectionMode
	Rows         map[string]RowSnapshot
	Summary      *FilterSummary
	SummaryState SummaryState
}

// NewSelection возвращает пустой выбор в режиме явных строк.
func NewSelection() Selection {
	return Selection{
		Mode: ModeRows,
		Rows: make(map[string]RowSnapshot),
	}
}

// EnterAllMatching включает режим «все по фильтру»: явный выбор строк
// очищается, сводка помечается ожидающей загрузки.
func (s *Selection) EnterAllMatching() {
	s.Mode = ModeAllMatching
	s.Rows = make(map[string]RowSnapshot)
	s.Summary = nil
	s.SummaryState = SummaryPending
}

// ExitAllMatching возвращает режим явных строк: сводка и её флаги
// сбрасываются.
func (s *Selection) ExitAllMatching() {
	s.Mode = ModeRows
	if s.Rows == nil {
		s.Rows = make(map[string]RowSnapshot)
	}
	s.Summary = nil
	s.SummaryState = SummaryNone
}

// ToggleRow переключает выбор одной строки. Клик по строке в режиме
// «все по фильтру» сначала выводит из него, затем делает строку
// единственной выбранной.
func (s *Selection) ToggleRow(id string, snap RowSnapshot) {
	if s.Mode == ModeAllMatching {
		s.ExitAllMatching()
		s.Rows[id] = snap
		return
	}
	if _, ok := s.Rows[id]; ok {
		delete(s.Rows, id)
		return
	}
	s.Rows[id] = snap
}

// InvalidateSummary помечает сводку устаревшей после изменения фильтра.
// Вне режима «все по фильтру» ничего не делает.
func (s *Selection) InvalidateSummary() {
	if s.Mode != ModeAllMatching {
		return
	}
	s.Summary = nil
	s.SummaryState = SummaryPending
}

// SetSummary сохраняет полученную сводку. Вызывающая сторона обязана
// убедиться, что ответ не устарел (см. services/session).
func (s *Selection) SetSummary(summary *FilterSummary) {
	if s.Mode != ModeAllMatching {
		return
	}
	s.Summary = summary
	s.SummaryState = SummaryReady
}

// SetSummaryError помечает, что запрос сводки завершился ошибкой.
func (s *Selection) SetSummaryError() {
	if s.Mode != ModeAllMatching {
		return
	}
	s.Summary = nil
	s.SummaryState = SummaryFailed
}

// RowsSummary — сводка, посчитанная на клиенте по снимкам выбранных строк.
type RowsSummary struct {
	Hold           float64 `json:"hold"`
	RealizedUnpaid float64 `json:"realized_unpaid"`
	RealizedPaid   float64 `json:"realized_paid"`
	EligibleCount  int     `json:"eligible_count"`
}

// SummarizeRows считает сводку по выбранным строкам в режиме ModeRows.
// Сгоревшая комиссия не попадает никуда; неподтверждённая идёт в холд;
// подтверждённая и невыплаченная — в сумму к выплате со счётчиком
// подходящих строк; подтверждённая и выплаченная — в выплаченное.
func (s *Selection) SummarizeRows() RowsSummary {
	var sum RowsSummary
	for _, snap := range s.Rows {
		switch {
		case snap.Burned:
		case !snap.Realized:
			sum.Hold += snap.Commission
		case !snap.Paid:
			sum.RealizedUnpaid += snap.Commission
			sum.EligibleCount++
		default:
			sum.RealizedPaid += snap.Commission
		}
	}
	return sum
}

// EligibleIDs возвращает отсортированный список строк, подходящих для
// массовой отметки «выплачено»: подтверждённые, невыплаченные и не
// сгоревшие. Это клиентская предпроверка, финальное слово за бэкендом.
func (s *Selection) EligibleIDs() []string {
	ids := make([]string, 0, len(s.Rows))
	for id, snap := range s.Rows {
		if snap.Realized && !snap.Paid && !snap.Burned {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// SelectedIDs возвращает отсортированный список всех выбранных строк.
func (s *Selection) SelectedIDs() []string {
	ids := make([]string, 0, len(s.Rows))
	for id := range s.Rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
