// Package profile содержит логику редактирования профиля пользователя.
// Консоль меняет профиль по одному полю за раз; допустимые поля
// ограничены фиксированным перечнем.
package profile

import (
	"context"
	"fmt"
	"log/slog"
)

// Backend определяет метод клиента бэкенда для обновления профиля.
type Backend interface {
	UpdateProfileField(ctx context.Context, userID, field, value string) error
}

var allowedFields = map[string]bool{
	"name":     true,
	"email":    true,
	"phone":    true,
	"telegram": true,
}

// Service реализует обновление полей профиля.
type Service struct {
	backend Backend
	log     *slog.Logger
}

// New создает новый экземпляр Service.
func New(backend Backend, log *slog.Logger) *Service {
	return &Service{backend: backend, log: log}
}

// UpdateField обновляет одно поле профиля пользователя.
func (s *Service) UpdateField(ctx context.Context, userID, field, value string) error {
	const op = "services.profile.UpdateField"
	if !allowedFields[field] {
		return fmt.Errorf("%s: field %q is not editable", op, field)
	}
	if err := s.backend.UpdateProfileField(ctx, userID, field, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("profile field updated", slog.String("user_id", userID), slog.String("field", field))
	return nil
}
