package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/arefin/procurehub-backend/internal/app/service"
	"github.com/arefin/procurehub-backend/internal/errors"
	"github.com/arefin/procurehub-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type DraftController struct {
	draftService service.DraftService
}

func NewDraftController(draftService service.DraftService) *DraftController {
	return &DraftController{
		draftService: draftService,
	}
}

type AddDraftItemRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	ProductID  uint   `json:"product_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Size       string `json:"size"`
}

type UpdateDraftItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type SetDraftInfoRequest struct {
	AdditionalInfo string `json:"additional_info"`
}

// GetDraft returns the staged draft together with its computed totals
// GET /api/v1/cart
func (ctrl *DraftController) GetDraft(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return
	}

	draft, summary, err := ctrl.draftService.GetDraft(c.Request.Context(), userID)
	if err != nil {
		log.Error("Failed to fetch draft", err, map[string]interface{}{
			"user_id": userID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":   draft,
		"summary": summary,
	})
}

// AddItem stages a product selection on the draft
// POST /api/v1/cart/items
func (ctrl *DraftController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return
	}

	var req AddDraftItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add item request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	draft, err := ctrl.draftService.AddItem(c.Request.Context(), userID, req.EmployeeID, req.ProductID, req.Quantity, req.Size)
	if err != nil {
		ctrl.respondDraftError(c, userID, err, "Failed to add item to draft")
		return
	}

	log.Info("Item added to draft", map[string]interface{}{
		"user_id":    userID,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	})
	c.JSON(http.StatusCreated, gin.H{
		"draft": draft,
	})
}

// UpdateItem replaces the quantity of the line item at the given index
// PATCH /api/v1/cart/items/:index
func (ctrl *DraftController) UpdateItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return
	}

	index, ok := parseIndex(c)
	if !ok {
		return
	}

	var req UpdateDraftItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update item request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	draft, err := ctrl.draftService.UpdateItem(c.Request.Context(), userID, index, req.Quantity)
	if err != nil {
		ctrl.respondDraftError(c, userID, err, "Failed to update draft item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft": draft,
	})
}

// RemoveItem drops the line item at the given index
// DELETE /api/v1/cart/items/:index
func (ctrl *DraftController) RemoveItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return
	}

	index, ok := parseIndex(c)
	if !ok {
		return
	}

	draft, err := ctrl.draftService.RemoveItem(c.Request.Context(), userID, index)
	if err != nil {
		ctrl.respondDraftError(c, userID, err, "Failed to remove draft item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft": draft,
	})
}

// SetInfo replaces the free-text note on the draft
// PUT /api/v1/cart/info
func (ctrl *DraftController) SetInfo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return
	}

	var req SetDraftInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid draft info request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	draft, err := ctrl.draftService.SetAdditionalInfo(c.Request.Context(), userID, req.AdditionalInfo)
	if err != nil {
		ctrl.respondDraftError(c, userID, err, "Failed to update draft")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"draft": draft,
	})
}

// ClearDraft discards the staged draft entirely
// DELETE /api/v1/cart
func (ctrl *DraftController) ClearDraft(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		errors.Unauthorized(c, "")
		return
	}

	if err := ctrl.draftService.ClearDraft(c.Request.Context(), userID); err != nil {
		log.Error("Failed to clear draft", err, map[string]interface{}{
			"user_id": userID,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Draft cleared successfully",
	})
}

func (ctrl *DraftController) respondDraftError(c *gin.Context, userID uint, err error, fallback string) {
	log := middleware.GetLoggerFromContext(c)

	var validationErr *service.ValidationError
	switch {
	case stderrors.As(err, &validationErr):
		log.Warn("Draft mutation rejected", map[string]interface{}{
			"user_id": userID,
			"field":   validationErr.Field,
			"error":   validationErr.Message,
		})
		errors.RespondWithFieldErrors(c, map[string]string{
			validationErr.Field: validationErr.Message,
		})
	case stderrors.Is(err, service.ErrDraftItemNotFound):
		errors.NotFound(c, errors.DraftItemNotFound, "Draft item not found")
	case stderrors.Is(err, service.ErrProductNotFound):
		errors.NotFound(c, errors.ProductNotFound, "Product not found")
	case stderrors.Is(err, service.ErrEmployeeNotFound):
		errors.NotFound(c, errors.EmployeeNotFound, "Employee not found")
	default:
		log.Error(fallback, err, map[string]interface{}{
			"user_id": userID,
		})
		errors.InternalError(c, "")
	}
}

func parseIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		errors.BadRequest(c, errors.ValidationInvalidID, "Invalid item index")
		return 0, false
	}
	return index, true
}
