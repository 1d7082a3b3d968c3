package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fatflowers/coursehub/internal/app/api/middleware"
	"github.com/fatflowers/coursehub/internal/app/service/account"
	"github.com/fatflowers/coursehub/internal/models"
	"github.com/fatflowers/coursehub/internal/platform/auth"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/response"
	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type AuthResponse struct {
	Message string          `json:"message"`
	User    *models.Account `json:"user"`
}

type PlaylistRequest struct {
	ID string `json:"id" form:"id"`
}

// CookieOptions controls the session cookie attributes.
type CookieOptions struct {
	Secure bool
}

func (o CookieOptions) set(c *gin.Context, value string, maxAge int) {
	if o.Secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(auth.CookieName, value, maxAge, "/", "", o.Secure, true)
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		_ = c.Error(apperr.Validation(err.Error()))
		return false
	}
	return true
}

// @Summary      Register
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body account.RegisterRequest true "New account"
// @Success      201  {object}  handlers.RespAuth
// @Failure      409  {object}  handlers.RespOK
// @Router       /api/v1/register [post]
func ApiRegister(svc *account.Service, cookie CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.RegisterRequest
		if !bindJSON(c, &req) {
			return
		}
		a, sess, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		cookie.set(c, sess.Token, int(time.Until(sess.ExpiresAt).Seconds()))
		c.JSON(http.StatusCreated, response.OKT(AuthResponse{Message: "Registered Successfully", User: a}))
	}
}

// @Summary      Login
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body account.LoginRequest true "Credentials"
// @Success      200  {object}  handlers.RespAuth
// @Failure      401  {object}  handlers.RespOK
// @Router       /api/v1/login [post]
func ApiLogin(svc *account.Service, cookie CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.LoginRequest
		if !bindJSON(c, &req) {
			return
		}
		a, sess, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		cookie.set(c, sess.Token, int(time.Until(sess.ExpiresAt).Seconds()))
		c.JSON(http.StatusOK, response.OKT(AuthResponse{Message: fmt.Sprintf("Welcome back, %s", a.Name), User: a}))
	}
}

// @Summary      Logout
// @Tags         User
// @Produce      json
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/logout [get]
func ApiLogout(cookie CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie.set(c, "", -1)
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "Logged Out Successfully"}))
	}
}

// @Summary      My Profile
// @Tags         User
// @Produce      json
// @Success      200  {object}  handlers.RespAccount
// @Failure      401  {object}  handlers.RespOK
// @Router       /api/v1/me [get]
func ApiMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(middleware.CurrentAccount(c)))
	}
}

// @Summary      Delete My Profile
// @Tags         User
// @Produce      json
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/me [delete]
func ApiDeleteMe(svc *account.Service, cookie CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), middleware.CurrentAccount(c).ID); err != nil {
			_ = c.Error(err)
			return
		}
		cookie.set(c, "", -1)
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "User Deleted Successfully"}))
	}
}

// @Summary      Change Password
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body account.ChangePasswordRequest true "Old and new password"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/changepassword [put]
func ApiChangePassword(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.ChangePasswordRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := svc.ChangePassword(c.Request.Context(), middleware.CurrentAccount(c).ID, req); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "Password Changed Successfully"}))
	}
}

// @Summary      Update Profile
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body account.UpdateProfileRequest true "Fields to change"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/updateprofile [put]
func ApiUpdateProfile(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.UpdateProfileRequest
		if !bindJSON(c, &req) {
			return
		}
		if _, err := svc.UpdateProfile(c.Request.Context(), middleware.CurrentAccount(c).ID, req); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "Profile Updated Successfully"}))
	}
}

// @Summary      Add To Playlist
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handlers.PlaylistRequest true "Course id"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/addtoplaylist [post]
func ApiAddToPlaylist(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaylistRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := svc.AddToPlaylist(c.Request.Context(), middleware.CurrentAccount(c).ID, req.ID); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "Added to playlist"}))
	}
}

// @Summary      Remove From Playlist
// @Tags         User
// @Produce      json
// @Param        id query string true "Course id"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/removefromplaylist [delete]
func ApiRemoveFromPlaylist(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.RemoveFromPlaylist(c.Request.Context(), middleware.CurrentAccount(c).ID, c.Query("id")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "Removed From Playlist"}))
	}
}

// RegisterUserRoutes mounts the account routes. limit guards the
// credential routes.
func RegisterUserRoutes(r gin.IRouter, authn, limit gin.HandlerFunc, svc *account.Service, cookie CookieOptions) {
	r.POST("/register", limit, ApiRegister(svc, cookie))
	r.POST("/login", limit, ApiLogin(svc, cookie))
	r.GET("/logout", ApiLogout(cookie))
	r.GET("/me", authn, ApiMe())
	r.DELETE("/me", authn, ApiDeleteMe(svc, cookie))
	r.PUT("/changepassword", authn, ApiChangePassword(svc))
	r.PUT("/updateprofile", authn, ApiUpdateProfile(svc))
	r.POST("/addtoplaylist", authn, ApiAddToPlaylist(svc))
	r.DELETE("/removefromplaylist", authn, ApiRemoveFromPlaylist(svc))
}
