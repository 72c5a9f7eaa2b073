package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store хранит открытые сессии консоли и выметает брошенные по TTL.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Console

	ttl     time.Duration
	fetcher SummaryFetcher
	log     *slog.Logger
}

// NewStore создаёт хранилище сессий.
func NewStore(ttl time.Duration, fetcher SummaryFetcher, log *slog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Console),
		ttl:      ttl,
		fetcher:  fetcher,
		log:      log,
	}
}

// Open создаёт сессию для пользователя и возвращает её.
func (s *Store) Open(userID, role string) *Console {
	c := newConsole(uuid.NewString(), userID, role, s.fetcher, s.log)
	s.mu.Lock()
	s.sessions[c.ID()] = c
	s.mu.Unlock()
	s.log.Info("console session opened",
		slog.String("session", c.ID()), slog.String("user_id", userID))
	return c
}

// Get возвращает сессию по идентификатору и продлевает её жизнь.
func (s *Store) Get(id string) (*Console, bool) {
	s.mu.Lock()
	c, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		c.touch()
	}
	return c, ok
}

// Close закрывает сессию и освобождает её ресурсы.
func (s *Store) Close(id string) {
	s.mu.Lock()
	c, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		c.close()
	}
}

// RunSweeper выметает просроченные сессии, пока контекст жив.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	var stale []*Console
	for id, c := range s.sessions {
		if c.expired(s.ttl, now) {
			delete(s.sessions, id)
			stale = append(stale, c)
		}
	}
	s.mu.Unlock()

	for _, c := range stale {
		c.close()
		s.log.Info("console session expired", slog.String("session", c.ID()))
	}
}
