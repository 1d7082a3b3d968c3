package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/internal/platform/auth"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/logctx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const accountKey = "account"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Account, error)
}

// Authenticate resolves the session from the token cookie, or a Bearer
// Authorization header, and stores the account on the context.
func Authenticate(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(auth.CookieName)
		if token == "" {
			token, _ = strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		account, err := a.Authenticate(c.Request.Context(), token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Set(accountKey, account)
		c.Set(logctx.AccountIDKey, account.ID)
		ctx := context.WithValue(c.Request.Context(), logctx.ContextKey(logctx.AccountIDKey), account.ID)
		if l, ok := c.Get(logctx.LoggerKey); ok {
			if reqLogger, ok := l.(*zap.SugaredLogger); ok && reqLogger != nil {
				reqLogger = reqLogger.With("account_id", account.ID)
				c.Set(logctx.LoggerKey, reqLogger)
				ctx = logctx.WithLogger(ctx, reqLogger)
			}
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CurrentAccount returns the account stored by Authenticate.
func CurrentAccount(c *gin.Context) *models.Account {
	if v, ok := c.Get(accountKey); ok {
		if a, ok := v.(*models.Account); ok {
			return a
		}
	}
	return nil
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		a := CurrentAccount(c)
		if a == nil {
			_ = c.Error(apperr.Unauthorized("Not Logged In"))
			c.Abort()
			return
		}
		if !a.IsAdmin() {
			_ = c.Error(apperr.Forbidden(fmt.Sprintf("%s is not allowed to access this resource", a.Role)))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSubscriber lets through admins and accounts with an active
// subscription. Must run after Authenticate.
func RequireSubscriber() gin.HandlerFunc {
	return func(c *gin.Context) {
		a := CurrentAccount(c)
		if a == nil {
			_ = c.Error(apperr.Unauthorized("Not Logged In"))
			c.Abort()
			return
		}
		if !a.IsAdmin() && !a.IsSubscriber() {
			_ = c.Error(apperr.Forbidden("Only Subscribers can acces this resource"))
			c.Abort()
			return
		}
		c.Next()
	}
}
