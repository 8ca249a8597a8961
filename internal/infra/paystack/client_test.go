package paystack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_Initialize_Success(t *testing.T) {
	var gotAuth string
	var gotBody InitializeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code":       "access_abc",
				"reference":         "ref_001",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 2*time.Second)
	data, err := client.Initialize(context.Background(), InitializeRequest{
		Amount:      25000,
		Email:       "jane@example.com",
		Reference:   "ref_001",
		CallbackURL: "http://localhost:4000/success.html?ref=1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, int64(25000), gotBody.Amount)
	assert.Equal(t, "https://checkout.paystack.com/abc123", data.AuthorizationURL)
	assert.Equal(t, "ref_001", data.Reference)
}

func TestClient_Initialize_GatewayRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "Invalid key",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_bad", 2*time.Second)
	data, err := client.Initialize(context.Background(), InitializeRequest{Amount: 100, Email: "a@b.c", Reference: "r"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "paystack initialize rejected")
	assert.Nil(t, data)
}

func TestClient_Verify_Success(t *testing.T) {
	body := `{"status":true,"message":"Verification successful","data":{"status":"success","amount":25000,"reference":"ref_001"}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref_001", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 2*time.Second)
	result, err := client.Verify(context.Background(), "ref_001")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.JSONEq(t, body, string(result.Raw))
}

func TestClient_Verify_FailedTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":true,"data":{"status":"failed"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 2*time.Second)
	result, err := client.Verify(context.Background(), "ref_002")

	assert.NoError(t, err)
	assert.False(t, result.Success)
}

func TestClient_Verify_EnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sk_test_secret", 2*time.Second)
	result, err := client.Verify(context.Background(), "missing")

	assert.NoError(t, err)
	assert.False(t, result.Success)
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "sk_test_secret", time.Second)

	_, err := client.Initialize(context.Background(), InitializeRequest{Amount: 100, Email: "a@b.c", Reference: "r"})
	assert.Error(t, err)

	_, err = client.Verify(context.Background(), "ref")
	assert.Error(t, err)
}
