package leadfilter

// Допустимые размеры страницы таблицы лидов.
var pageSizes = map[int]bool{10: true, 25: true, 50: true, 100: true}

// DefaultPageSize используется при создании пагинации и при попытке
// установить размер вне допустимого перечня.
const DefaultPageSize = 25

// Pagination описывает состояние пагинации таблицы. Total известен
// только после успешного запроса списка и до этого равен нулю.
type Pagination struct {
	Page     int
	PageSize int
	Total    int
}

// NewPagination возвращает пагинацию на первой странице со стандартным
// размером страницы.
func NewPagination() Pagination {
	return Pagination{Page: 1, PageSize: DefaultPageSize}
}

// Offset возвращает смещение для эндпоинта списка.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Pages возвращает количество доступных страниц, не меньше одной.
func (p Pagination) Pages() int {
	if p.Total <= 0 || p.PageSize <= 0 {
		return 1
	}
	pages := (p.Total + p.PageSize - 1) / p.PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp приводит номер страницы в диапазон [1, Pages]. Вызывается после
// каждого изменения Total или PageSize: страница не должна указывать
// за пределы доступных данных.
func (p *Pagination) Clamp() {
	if p.Page < 1 {
		p.Page = 1
	}
	if last := p.Pages(); p.Page > last {
		p.Page = last
	}
}

// SetTotal запоминает общее число строк из ответа списка и поджимает
// номер страницы, если выборка сузилась.
func (p *Pagination) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.Total = total
	p.Clamp()
}

// SetPageSize меняет размер страницы и возвращает пагинацию на первую
// страницу. Размер вне допустимого перечня заменяется стандартным.
func (p *Pagination) SetPageSize(size int) {
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}
	p.PageSize = size
	p.Page = 1
}

// Reset возвращает пагинацию на первую страницу. Вызывается при любом
// изменении фильтра: номер страницы без фильтра смысла не имеет.
func (p *Pagination) Reset() {
	p.Page = 1
}

// ValidPageSize сообщает, входит ли размер страницы в допустимый перечень.
func ValidPageSize(size int) bool {
	return pageSizes[size]
}
