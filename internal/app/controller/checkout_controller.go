package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/arefin/procurehub-backend/internal/app/service"
	"github.com/arefin/procurehub-backend/internal/errors"
	"github.com/arefin/procurehub-backend/internal/middleware"
	"github.com/arefin/procurehub-backend/pkg/orders"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutService service.CheckoutService
}

func NewCheckoutController(checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

// Submit sends the staged draft upstream
// POST /api/v1/orders/submit
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return
	}

	result, err := ctrl.checkoutService.Submit(c.Request.Context(), userID)
	if err != nil {
		var remoteErr *orders.RemoteError
		switch {
		case stderrors.Is(err, service.ErrEmptyDraft):
			log.Warn("Submission rejected: draft is empty", map[string]interface{}{
				"user_id": userID,
			})
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   errors.DraftEmpty,
				"message": result.Message,
				"result":  result,
			})
		case stderrors.Is(err, service.ErrUpstreamRejected), stderrors.As(err, &remoteErr):
			log.Warn("Submission rejected upstream", map[string]interface{}{
				"user_id": userID,
				"message": result.Message,
			})
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   errors.OrderSubmissionFailed,
				"message": result.Message,
				"result":  result,
			})
		case stderrors.Is(err, service.ErrSubmissionAborted):
			// 499 has no stdlib constant; the client is gone anyway.
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   errors.OrderSubmissionFailed,
				"message": result.Message,
				"result":  result,
			})
		default:
			log.Error("Order submission failed", err, map[string]interface{}{
				"user_id": userID,
			})
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   errors.OrderSubmissionFailed,
				"message": result.Message,
				"result":  result,
			})
		}
		return
	}

	log.Info("Order submitted", map[string]interface{}{
		"user_id":  userID,
		"order_id": result.OrderID,
	})
	c.JSON(http.StatusCreated, gin.H{
		"result": result,
	})
}
