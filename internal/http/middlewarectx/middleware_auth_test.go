package middlewarectx_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadhub-crm/admin-console/internal/http/middlewarectx"
	"github.com/leadhub-crm/admin-console/internal/lib/jwt"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewJWTMaker("secret", time.Hour)
	validToken, err := maker.GenerateToken("user-7", "webmaster")
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		wantStatus   int
		wantIdentity bool
	}{
		{"валидный токен", "Bearer " + validToken, http.StatusOK, true},
		{"нет заголовка", "", http.StatusUnauthorized, false},
		{"не bearer", "Basic abc", http.StatusUnauthorized, false},
		{"мусорный токен", "Bearer not-a-token", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser, gotRole string
			var gotOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, gotRole, gotOK = middlewarectx.Identity(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewarectx.JWTMiddleware(maker, testLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/leads", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantIdentity {
				require.True(t, gotOK)
				assert.Equal(t, "user-7", gotUser)
				assert.Equal(t, "webmaster", gotRole)
			}
		})
	}
}
