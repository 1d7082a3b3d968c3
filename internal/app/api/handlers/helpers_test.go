package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fatflowers/coursehub/internal/app/api/middleware"
	"github.com/fatflowers/coursehub/internal/app/service/account"
	"github.com/fatflowers/coursehub/internal/app/service/course"
	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/internal/app/store/storetest"
	"github.com/fatflowers/coursehub/internal/platform/auth"
	"github.com/fatflowers/coursehub/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testApp struct {
	r        *gin.Engine
	db       *gorm.DB
	accounts *account.Service
	courses  *course.Service
	authn    gin.HandlerFunc
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := storetest.NewDB(t)
	log := zap.NewNop().Sugar()
	accountStore, courseStore := store.NewAccountStore(db), store.NewCourseStore(db)
	app := &testApp{
		r:        gin.New(),
		db:       db,
		accounts: account.NewService(accountStore, courseStore, auth.NewJWTService("test-secret", time.Hour), log),
		courses:  course.NewService(courseStore, log),
	}
	app.authn = middleware.Authenticate(app.accounts)
	app.r.Use(middleware.ErrorHandler(log))
	return app
}

// register creates an account with the given role and returns its session token.
func (a *testApp) register(t *testing.T, email string, role types.Role) (string, string) {
	t.Helper()
	ctx := context.Background()
	acc, sess, err := a.accounts.Register(ctx, account.RegisterRequest{Name: "n", Email: email, Password: "secret123"})
	require.NoError(t, err)
	if role == types.RoleAdmin {
		_, err = a.accounts.ToggleRole(ctx, acc.ID)
		require.NoError(t, err)
	}
	return acc.ID, sess.Token
}

func (a *testApp) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

// data decodes the data member of a response envelope.
func data[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}
