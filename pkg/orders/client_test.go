package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestClient_CreateOrder_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody CreateOrderRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(CreateOrderResponse{
			Success: true,
			Message: "created",
			Data:    &CreateOrderData{Reference: "REF-7"},
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, APIKey: "secret"})
	require.NoError(t, err)

	resp, err := client.CreateOrder(context.Background(), CreateOrderRequest{
		CompanyID:  10,
		EmployeeID: 1,
		Name:       "Jane Doe",
		Items: []Item{
			{Product: 1, Quantity: 2, Size: "S"},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "REF-7", resp.Data.Reference)

	assert.Equal(t, "/order/admin-company", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, uint(10), gotBody.CompanyID)
	require.Len(t, gotBody.Items, 1)
	assert.Equal(t, Item{Product: 1, Quantity: 2, Size: "S"}, gotBody.Items[0])
}

func TestClient_CreateOrder_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(CreateOrderResponse{
			Success: false,
			Message: "employee no longer active",
		})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.CreateOrder(context.Background(), CreateOrderRequest{})
	require.Error(t, err)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnprocessableEntity, remoteErr.StatusCode)
	assert.Equal(t, "employee no longer active", remoteErr.Message)
}

func TestClient_CreateOrder_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(CreateOrderResponse{Success: true})
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.CreateOrder(ctx, CreateOrderRequest{})
	assert.Error(t, err)
}
