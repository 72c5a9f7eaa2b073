package leadfilter

import "strconv"

// Offer — запись каталога офферов, загруженного с бэкенда.
type Offer struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ResolveOffer превращает пользовательский ввод в идентификатор оффера.
// Число трактуется как готовый идентификатор, любая другая строка ищется
// в каталоге по точному совпадению названия, берётся первое совпадение.
func ResolveOffer(catalog []Offer, raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	if id, err := strconv.Atoi(raw); err == nil {
		return id, true
	}
	for _, o := range catalog {
		if o.Title == raw {
			return o.ID, true
		}
	}
	return 0, false
}
