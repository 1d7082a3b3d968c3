package handlers

import (
	"context"
	"net/http"

	"github.com/fatflowers/coursehub/internal/app/api/middleware"
	"github.com/fatflowers/coursehub/internal/app/service/subscription"
	"github.com/fatflowers/coursehub/pkg/apperr"
	"github.com/gin-gonic/gin"
)

type PaymentVerifier interface {
	HandleVerification(ctx context.Context, accountID string, req subscription.VerifyPaymentRequest) (*subscription.VerifyPaymentResult, error)
}

// @Summary      Payment Verification
// @Description  Checkout callback. Verifies the payment signature and redirects to the frontend success or failure page.
// @Tags         Payment
// @Accept       json,x-www-form-urlencoded
// @Param        request body subscription.VerifyPaymentRequest true "Checkout callback fields"
// @Success      302
// @Failure      400  {object}  handlers.RespOK
// @Router       /api/v1/paymentverification [post]
func ApiPaymentVerification(h PaymentVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscription.VerifyPaymentRequest
		if err := c.ShouldBind(&req); err != nil {
			_ = c.Error(apperr.Validation(err.Error()))
			return
		}
		res, err := h.HandleVerification(c.Request.Context(), middleware.CurrentAccount(c).ID, req)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.Redirect(http.StatusFound, res.RedirectURL)
	}
}
