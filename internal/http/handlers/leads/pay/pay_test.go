package pay

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	"github.com/leadhub-crm/admin-console/internal/leadfilter"
	"github.com/leadhub-crm/admin-console/internal/services/session"
)

// MockService реализует интерфейс pay.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) PayByFilter(ctx context.Context, f leadfilter.Filter, role, userID string) error {
	args := m.Called(ctx, f, role, userID)
	return args.Error(0)
}

func (m *MockService) PayByIDs(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type stubFetcher struct {
	summary *leadfilter.FilterSummary
	err     error
}

func (s *stubFetcher) FilterSummary(_ context.Context, _ leadfilter.Filter, _, _ string) (*leadfilter.FilterSummary, error) {
	return s.summary, s.err
}

func authContext(r *http.Request, userID, role string) *http.Request {
	ctx := context.WithValue(r.Context(), middlewarectx.UserID, userID)
	ctx = context.WithValue(ctx, middlewarectx.Role, role)
	return r.WithContext(ctx)
}

func TestPayHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	newStore := func(f session.SummaryFetcher) *session.Store {
		return session.NewStore(time.Hour, f, logger)
	}

	t.Run("выплата по выбранным строкам", func(t *testing.T) {
		store := newStore(&stubFetcher{})
		console := store.Open("user-1", "admin")
		console.ToggleRow("a", leadfilter.RowSnapshot{Commission: 100, Realized: true})
		console.ToggleRow("b", leadfilter.RowSnapshot{Commission: 200, Realized: true, Paid: true})

		mockService := new(MockService)
		mockService.On("PayByIDs", mock.Anything, []string{"a"}).Return(nil)

		handler := New(logger, mockService, store)
		req := httptest.NewRequest(http.MethodPatch, "/leads/pay",
			strings.NewReader(`{"session_id":"`+console.ID()+`"}`))
		req = authContext(req, "user-1", "admin")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"by_filter":false`)
		mockService.AssertExpectations(t)
	})

	t.Run("выплата по всем лидам фильтра", func(t *testing.T) {
		store := newStore(&stubFetcher{summary: &leadfilter.FilterSummary{
			RealizedUnpaid: leadfilter.SummaryBucket{Count: 5, Sum: 500},
		}})
		console := store.Open("user-1", "admin")
		console.SetSelectAll(true)
		require.Eventually(t, func() bool {
			return console.Snapshot().SummarySt == leadfilter.SummaryReady
		}, time.Second, 10*time.Millisecond)

		mockService := new(MockService)
		mockService.On("PayByFilter", mock.Anything, mock.Anything, "admin", "user-1").Return(nil)

		handler := New(logger, mockService, store)
		req := httptest.NewRequest(http.MethodPatch, "/leads/pay",
			strings.NewReader(`{"session_id":"`+console.ID()+`"}`))
		req = authContext(req, "user-1", "admin")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"by_filter":true`)
		mockService.AssertExpectations(t)
	})

	t.Run("пустой выбор отклоняется", func(t *testing.T) {
		store := newStore(&stubFetcher{})
		console := store.Open("user-1", "admin")

		handler := New(logger, new(MockService), store)
		req := httptest.NewRequest(http.MethodPatch, "/leads/pay",
			strings.NewReader(`{"session_id":"`+console.ID()+`"}`))
		req = authContext(req, "user-1", "admin")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"error":"nothing to pay"`)
	})

	t.Run("чужая сессия запрещена", func(t *testing.T) {
		store := newStore(&stubFetcher{})
		console := store.Open("user-2", "webmaster")

		handler := New(logger, new(MockService), store)
		req := httptest.NewRequest(http.MethodPatch, "/leads/pay",
			strings.NewReader(`{"session_id":"`+console.ID()+`"}`))
		req = authContext(req, "user-1", "admin")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("неизвестная сессия", func(t *testing.T) {
		store := newStore(&stubFetcher{})

		handler := New(logger, new(MockService), store)
		req := httptest.NewRequest(http.MethodPatch, "/leads/pay",
			strings.NewReader(`{"session_id":"missing"}`))
		req = authContext(req, "user-1", "admin")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ошибка бэкенда при выплате", func(t *testing.T) {
		store := newStore(&stubFetcher{})
		console := store.Open("user-1", "admin")
		console.ToggleRow("a", leadfilter.RowSnapshot{Commission: 100, Realized: true})

		mockService := new(MockService)
		mockService.On("PayByIDs", mock.Anything, []string{"a"}).Return(errors.New("backend down"))

		handler := New(logger, mockService, store)
		req := httptest.NewRequest(http.MethodPatch, "/leads/pay",
			strings.NewReader(`{"session_id":"`+console.ID()+`"}`))
		req = authContext(req, "user-1", "admin")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"error":"failed to pay leads"`)
		mockService.AssertExpectations(t)
	})
}
