package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sebuszqo/FinTrack/internal/finance/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload := map[string]interface{}{"status": "success", "message": message}
	if status >= 400 {
		payload["status"] = "error"
		payload["code"] = status
	}
	if data != nil {
		payload["data"] = data
	}
	json.NewEncoder(w).Encode(payload)
}

func TestClient_LoginStoresToken(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "alice@example.com", body["email"])
			writeEnvelope(w, http.StatusOK, "", map[string]string{"access_token": "tok-1"})
		case "/api/protected/accounts":
			authHeader = r.Header.Get("Authorization")
			writeEnvelope(w, http.StatusOK, "Accounts retrieved successfully.", []map[string]interface{}{
				{"account_id": 1, "account_name": "Visa", "account_type": "credit"},
			})
		default:
			writeEnvelope(w, http.StatusNotFound, "Path not found", nil)
		}
	}))
	defer server.Close()

	c := New(server.URL + "/")
	token, err := c.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	accounts, err := c.Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", authHeader)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Visa", accounts[0].AccountName)
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, "account with this name already exists", nil)
	}))
	defer server.Close()

	_, err := New(server.URL).CreateAccount(context.Background(), "Visa", "credit")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "account with this name already exists", apiErr.Message)
}

func TestClient_EscapesPathNames(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		writeEnvelope(w, http.StatusOK, "Successfully deleted", nil)
	}))
	defer server.Close()

	_, err := New(server.URL).DeleteCategory(context.Background(), "Eating Out")
	require.NoError(t, err)
	assert.Equal(t, "/api/protected/categories/Eating%20Out", path)
}

func TestClient_Reports(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/protected/reports/details":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"success","data":[{"nickname":"Food","budget":100,"budget_freq":"weekly",
				"overbudget":true,"total":110,"transaction_idz":[1,2],"cat_trans":["a, 40, lunch","b, 70, "]}]}`))
		case "/api/protected/reports/overview":
			writeEnvelope(w, http.StatusOK, "", []string{"Category Summary:", "Food : 110", "Account Summary:"})
		}
	}))
	defer server.Close()
	c := New(server.URL)

	report, err := c.ReportDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.True(t, report[0].Total.Equal(decimal.NewFromInt(110)))
	assert.Equal(t, domain.FrequencyWeekly, report[0].BudgetFreq)
	assert.Equal(t, []int{1, 2}, report[0].TransactionIDs)

	lines, err := c.ReportOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Category Summary:", "Food : 110", "Account Summary:"}, lines)
}

func TestClient_AddTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body domain.ClientTransaction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Food", body.CategoryName)
		assert.True(t, body.Amount.Equal(decimal.RequireFromString("12.34")))
		writeEnvelope(w, http.StatusCreated, "Transaction successfully created.", map[string]interface{}{"trans_id": 7})
	}))
	defer server.Close()

	transaction, err := New(server.URL).AddTransaction(context.Background(), domain.ClientTransaction{
		CategoryName: "Food", AccountName: "Visa", Amount: decimal.RequireFromString("12.34"),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, transaction.ID)
}
