package handlers

import (
	"context"
	"net/http"

	"github.com/fatflowers/coursehub/internal/app/api/middleware"
	"github.com/fatflowers/coursehub/internal/app/service/account"
	"github.com/fatflowers/coursehub/internal/app/service/statistics"
	"github.com/fatflowers/coursehub/internal/app/store"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/fatflowers/coursehub/pkg/response"
	"github.com/fatflowers/coursehub/pkg/types"
	"github.com/gin-gonic/gin"
)

type DashboardReader interface {
	DashboardStats(ctx context.Context) (*statistics.DashboardStats, error)
}

// ListUsersRequest is bound from the query string.
type ListUsersRequest struct {
	Role      string `form:"role"`
	Keyword   string `form:"keyword"`
	From      int    `form:"from"`
	Size      int    `form:"size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

func (r *ListUsersRequest) toStore() *store.ListRequest {
	req := &store.ListRequest{From: r.From, Size: r.Size, SortBy: r.SortBy, SortOrder: r.SortOrder}
	if r.Role != "" {
		req.Filters = append(req.Filters, &types.CommonFilter{Field: "role", Operator: types.CommonFilterOperatorEq, Values: []any{r.Role}})
	}
	if r.Keyword != "" {
		req.Filters = append(req.Filters, &types.CommonFilter{Field: "name", Operator: types.CommonFilterOperatorContains, Values: []any{r.Keyword}})
	}
	return req
}

// @Summary      Dashboard Statistics (Admin)
// @Description  Returns the last snapshots window with month-over-month percentages.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  handlers.RespDashboard
// @Router       /api/v1/admin/stats [get]
func ApiDashboardStats(svc DashboardReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.DashboardStats(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      List Users (Admin)
// @Tags         Admin
// @Produce      json
// @Param        role     query string false "Exact role"
// @Param        keyword  query string false "Name substring"
// @Param        from     query int    false "Offset"
// @Param        size     query int    false "Page size"
// @Success      200  {object}  handlers.RespUsers
// @Router       /api/v1/admin/users [get]
func ApiListUsers(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ListUsersRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			_ = c.Error(apperr.Validation(err.Error()))
			return
		}
		res, err := svc.List(c.Request.Context(), req.toStore())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Toggle User Role (Admin)
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Account id"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/admin/user/{id} [put]
func ApiToggleRole(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := svc.ToggleRole(c.Request.Context(), c.Param("id")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "Role Updated"}))
	}
}

// @Summary      Delete User (Admin)
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Account id"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/admin/user/{id} [delete]
func ApiDeleteUser(svc *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(MessageResponse{Message: "User Deleted Successfully"}))
	}
}

// RegisterAdminRoutes mounts the admin routes under r, guarded by authn
// followed by the admin role check.
func RegisterAdminRoutes(r gin.IRouter, authn gin.HandlerFunc, stats DashboardReader, accounts *account.Service) {
	g := r.Group("/admin", authn, middleware.RequireAdmin())
	g.GET("/stats", ApiDashboardStats(stats))
	g.GET("/users", ApiListUsers(accounts))
	g.PUT("/user/:id", ApiToggleRole(accounts))
	g.DELETE("/user/:id", ApiDeleteUser(accounts))
}
