// Package filterupdate реализует обработчик изменения фильтра сессии.
//
// Строка поиска обрабатывается отдельно от остальных полей: она
// применяется к фильтру только после паузы набора, поэтому уходит в
// дебаунсер сессии, а не напрямую в фильтр.
package filterupdate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/leadhub-crm/admin-console/internal/http/filterquery"
	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	"github.com/leadhub-crm/admin-console/internal/http/response"
	"github.com/leadhub-crm/admin-console/internal/lib/sl"
	"github.com/leadhub-crm/admin-console/internal/models"
	"github.com/leadhub-crm/admin-console/internal/services/session"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	sessions Sessions
}

type Service interface {
	ResolveOffer(ctx context.Context, raw string) (int, error)
}

type Sessions interface {
	Get(id string) (*session.Console, bool)
}

func New(log *slog.Logger, service Service, sessions Sessions) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
	}
}

// ServeHTTP применяет новое состояние фильтра к сессии. Изменение любого
// поля кроме строки поиска сбрасывает пагинацию сразу, строка поиска
// применяется после паузы набора.
//
// @Summary Изменение фильтра сессии
// @Tags session
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор сессии"
// @Param input body models.FilterUpdate true "Новое состояние фильтра"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /session/{id}/filter [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.filterupdate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, _, ok := middlewarectx.Identity(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	var req models.FilterUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			log.Error("request body is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("empty request"))
			return
		}
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}

	if err := validator.New().Struct(req); err != nil {
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			log.Error("invalid request", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}
		log.Error("failed to validate request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request"))
		return
	}

	f, rawOffer, err := filterquery.FromUpdate(req)
	if err != nil {
		log.Error("failed to parse filter", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid filter parameters"))
		return
	}
	if rawOffer != "" {
		offerID, err := h.service.ResolveOffer(r.Context(), rawOffer)
		if err != nil {
			log.Error("failed to resolve offer", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown offer"))
			return
		}
		f.OfferID = offerID
	}

	id := chi.URLParam(r, "id")
	console, ok := h.sessions.Get(id)
	if !ok {
		log.Error("session not found", slog.String("session", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("session not found"))
		return
	}
	if console.UserID() != userID {
		log.Error("session belongs to another user", slog.String("session", id))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden"))
		return
	}

	// Строка поиска идёт через дебаунсер, остальные поля применяются
	// с текущим значением строки.
	current := console.Filter()
	query := f.Query
	f.Query = current.Query
	console.UpdateFilter(f)
	if query != current.Query {
		console.SetQuery(query)
	}

	log.Info("session filter updated", slog.String("session", id))
	render.JSON(w, r, response.StatusOKWithData(console.Snapshot()))
}
