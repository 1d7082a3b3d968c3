package handlers

import (
	"context"
	"net/http"

	"github.com/fatflowers/coursehub/internal/app/api/middleware"
	"github.com/fatflowers/coursehub/internal/app/service/subscription"
	"github.com/fatflowers/coursehub/pkg/response"
	"github.com/gin-gonic/gin"
)

// SubscriptionManager is the part of the lifecycle manager the payment
// routes call directly.
type SubscriptionManager interface {
	CreateSubscription(ctx context.Context, accountID string) (string, error)
	CancelSubscription(ctx context.Context, accountID string) (*subscription.CancelResult, error)
	GatewayKey() string
}

type CreateSubscriptionResponse struct {
	SubscriptionID string `json:"subscriptionId"`
}

type GatewayKeyResponse struct {
	Key string `json:"key"`
}

// @Summary      Buy Subscription
// @Description  Opens a gateway subscription for the caller and returns its id for checkout.
// @Tags         Payment
// @Produce      json
// @Success      201  {object}  handlers.RespCreateSubscription
// @Failure      403  {object}  handlers.RespOK
// @Failure      502  {object}  handlers.RespOK
// @Router       /api/v1/subscribe [post]
func ApiCreateSubscription(sub SubscriptionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := sub.CreateSubscription(c.Request.Context(), middleware.CurrentAccount(c).ID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, response.OKT(CreateSubscriptionResponse{SubscriptionID: id}))
	}
}

// @Summary      Gateway Key
// @Description  Returns the public gateway key id used by the checkout widget.
// @Tags         Payment
// @Produce      json
// @Success      200  {object}  handlers.RespGatewayKey
// @Router       /api/v1/razorpaykey [get]
func ApiGetGatewayKey(sub SubscriptionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(GatewayKeyResponse{Key: sub.GatewayKey()}))
	}
}

// @Summary      Cancel Subscription
// @Description  Cancels the caller's subscription, refunding it when still inside the refund window.
// @Tags         Payment
// @Produce      json
// @Success      200  {object}  handlers.RespCancel
// @Failure      404  {object}  handlers.RespOK
// @Failure      502  {object}  handlers.RespOK
// @Router       /api/v1/subscribe/cancel [delete]
func ApiCancelSubscription(sub SubscriptionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := sub.CancelSubscription(c.Request.Context(), middleware.CurrentAccount(c).ID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// RegisterPaymentRoutes mounts the subscription routes. Every route requires authn.
func RegisterPaymentRoutes(r gin.IRouter, authn gin.HandlerFunc, sub SubscriptionManager, verifier PaymentVerifier) {
	r.POST("/subscribe", authn, ApiCreateSubscription(sub))
	r.POST("/paymentverification", authn, ApiPaymentVerification(verifier))
	r.GET("/razorpaykey", authn, ApiGetGatewayKey(sub))
	r.DELETE("/subscribe/cancel", authn, ApiCancelSubscription(sub))
}
