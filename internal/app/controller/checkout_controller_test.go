package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"github.com/arefin/procurehub-backend/internal/app/service"
	"github.com/arefin/procurehub-backend/internal/db"
	"github.com/arefin/procurehub-backend/pkg/orders"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubmitter struct {
	response *orders.CreateOrderResponse
	err      error
	calls    int
}

func (s *stubSubmitter) CreateOrder(ctx context.Context, req orders.CreateOrderRequest) (*orders.CreateOrderResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func setupCheckoutControllerTest(t *testing.T, submitter service.OrderSubmitter) (*CheckoutController, *gin.Engine, repository.DraftRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	draftRepo := repository.NewMemoryDraftRepository()
	orderRepo := repository.NewOrderRepository(testDB)
	notificationRepo := repository.NewNotificationRepository(testDB)
	notifier := service.NewNotificationService(notificationRepo, nil, "order.created")
	checkoutService := service.NewCheckoutService(draftRepo, orderRepo, notifier, submitter)
	checkoutController := NewCheckoutController(checkoutService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/orders/submit", func(c *gin.Context) {
		setUserIDInContext(c, 1)
		checkoutController.Submit(c)
	})

	return checkoutController, router, draftRepo
}

func stageDraft(t *testing.T, draftRepo repository.DraftRepository) {
	require.NoError(t, draftRepo.Write(context.Background(), 1, &model.DraftOrder{
		CompanyID:  10,
		EmployeeID: 1,
		Name:       "Jane Doe",
		Items: []model.DraftItem{
			{ProductID: 1, Quantity: 2, Size: "S"},
		},
		UpdatedAt: time.Now().UTC(),
	}))
}

func TestCheckoutController_Submit_Success(t *testing.T) {
	submitter := &stubSubmitter{
		response: &orders.CreateOrderResponse{
			Success: true,
			Data:    &orders.CreateOrderData{Reference: "REF-42"},
		},
	}
	_, router, draftRepo := setupCheckoutControllerTest(t, submitter)
	stageDraft(t, draftRepo)

	req := httptest.NewRequest(http.MethodPost, "/orders/submit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, submitter.calls)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	result := response["result"].(map[string]interface{})
	assert.Equal(t, "succeeded", result["state"])
	assert.Equal(t, "REF-42", result["reference"])
}

func TestCheckoutController_Submit_EmptyDraft(t *testing.T) {
	submitter := &stubSubmitter{}
	_, router, _ := setupCheckoutControllerTest(t, submitter)

	req := httptest.NewRequest(http.MethodPost, "/orders/submit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, submitter.calls)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "DRAFT_EMPTY", response["error"])
}

func TestCheckoutController_Submit_UpstreamRejection(t *testing.T) {
	submitter := &stubSubmitter{
		response: &orders.CreateOrderResponse{
			Success: false,
			Message: "employee no longer active",
		},
	}
	_, router, draftRepo := setupCheckoutControllerTest(t, submitter)
	stageDraft(t, draftRepo)

	req := httptest.NewRequest(http.MethodPost, "/orders/submit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	// The staged draft survives the failed attempt.
	stored, err := draftRepo.Read(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestCheckoutController_Submit_TransportFailure(t *testing.T) {
	submitter := &stubSubmitter{
		err: &orders.RemoteError{StatusCode: 503, Message: "upstream unavailable"},
	}
	_, router, draftRepo := setupCheckoutControllerTest(t, submitter)
	stageDraft(t, draftRepo)

	req := httptest.NewRequest(http.MethodPost, "/orders/submit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "upstream unavailable", response["message"])
}
