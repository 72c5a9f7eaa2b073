// Package debounce реализует подавление дребезга быстро меняющегося
// значения: наружу отдаётся только последнее значение после паузы ввода.
//
// Это не очередь — промежуточные значения теряются без следа. Используется
// для строки поиска: запрос к бэкенду уходит не чаще одного раза за паузу
// в наборе текста.
package debounce

import (
	"sync"
	"time"
)

// Debouncer передаёт в emit последнее значение, полученное перед паузой
// длиной quiet. Новое значение, пришедшее до истечения паузы, отменяет
// предыдущее.
type Debouncer struct {
	mu      sync.Mutex
	quiet   time.Duration
	emit    func(string)
	timer   *time.Timer
	stopped bool
}

// New создаёт дебаунсер с заданной паузой и функцией-приёмником.
// Приёмник вызывается в отдельной горутине таймера.
func New(quiet time.Duration, emit func(string)) *Debouncer {
	return &Debouncer{
		quiet: quiet,
		emit:  emit,
	}
}

// Push принимает очередное значение. Ранее запланированное значение,
// ещё не отданное наружу, отбрасывается.
func (d *Debouncer) Push(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			d.emit(value)
		}
	})
}

// Stop отменяет ожидающее значение и запрещает дальнейшие вызовы emit.
// Вызывается при завершении работы владельца.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
