package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/usecase/credential"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type client struct {
	t      *testing.T
	router http.Handler
	token  string
}

func newTestServer(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, log)
	db := testDB.Connect(t)
	tp := testDB.TimeProvider

	userRepo := repository.NewUserRepository(db, log)
	txRepo := repository.NewTransactionRepository(db, log)
	credentials := credential.NewCredentialUseCase(userRepo, security.NewBcryptHasher(bcrypt.MinCost), tp, log)
	ledgerUseCase := ledger.NewLedgerUseCase(txRepo, userRepo, tp, log)

	tokens, err := auth.NewTokenService("routes-test-secret", time.Hour, tp)
	require.NoError(t, err)

	router := NewRouter(log, tp, nil, Handlers{
		Auth:   handler.NewAuthHandler(credentials, tokens, log),
		Ledger: handler.NewLedgerHandler(ledgerUseCase, tp, log),
		Health: handler.NewHealthHandler(testDB.Manager, log),
	}, middleware.Auth(tokens, log))

	return &client{t: t, router: router}
}

func (c *client) do(method, path string, body any, out any) int {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func (c *client) login(username, password string) {
	c.t.Helper()

	var resp dto.LoginResponse
	code := c.do(http.MethodPost, "/api/login", dto.CredentialsRequest{Username: username, Password: password}, &resp)
	require.Equal(c.t, http.StatusOK, code)
	c.token = resp.Token
}

func TestHealth(t *testing.T) {
	c := newTestServer(t)
	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/health", nil, nil))
}

func TestRegisterAndLogin(t *testing.T) {
	c := newTestServer(t)
	alice := dto.CredentialsRequest{Username: "alice", Password: "s3cret"}

	assert.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/register", alice, nil))

	var dup dto.ErrorResponse
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/register",
		dto.CredentialsRequest{Username: "alice", Password: "different"}, &dup))
	assert.Equal(t, 4090, dup.Code)

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/login",
		dto.CredentialsRequest{Username: "alice", Password: "wrong"}, nil))
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/login",
		dto.CredentialsRequest{Username: "nobody", Password: "s3cret"}, nil))

	c.login("alice", "s3cret")
	assert.NotEmpty(t, c.token)
}

func TestLedgerRequiresSession(t *testing.T) {
	c := newTestServer(t)

	for _, path := range []string{"/api/transactions", "/api/dashboard", "/api/report"} {
		assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, path, nil, nil), path)
	}
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/income",
		dto.TransactionRequest{Amount: "1", Date: "2024-01-01"}, nil))
}

func TestAliceAndBob(t *testing.T) {
	c := newTestServer(t)

	for _, name := range []string{"alice", "bob"} {
		require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/register",
			dto.CredentialsRequest{Username: name, Password: name + "-pw"}, nil))
	}

	c.login("alice", "alice-pw")

	var income, expense dto.TransactionCreatedResponse
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/income",
		dto.TransactionRequest{Amount: "100", Description: "sale", Date: "2024-03-01"}, &income))
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/expense",
		dto.TransactionRequest{Amount: "30", Description: "rent", Date: "2024-03-02"}, &expense))
	assert.Less(t, income.ID, expense.ID)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/transactions",
		dto.TransactionRequest{Type: "Refund", Amount: "5", Date: "2024-03-03"}, nil))
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/expense",
		dto.TransactionRequest{Amount: "-5", Date: "2024-03-03"}, nil))

	var list dto.TransactionListResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/transactions", nil, &list))
	require.Len(t, list.Transactions, 2)
	assert.Equal(t, "Income", list.Transactions[0].Type)
	assert.Equal(t, "100.00", list.Transactions[0].Amount)
	assert.Equal(t, "2024-03-01", list.Transactions[0].Date)
	assert.Equal(t, "Expense", list.Transactions[1].Type)

	var dashboard dto.ReportResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/dashboard", nil, &dashboard))
	assert.Equal(t, dto.SummaryResponse{TotalIncome: "100.00", TotalExpense: "30.00", Balance: "70.00"}, dashboard.Summary)

	c.login("bob", "bob-pw")

	var report dto.ReportResponse
	require.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/report", nil, &report))
	assert.Equal(t, "bob", report.Username)
	assert.Empty(t, report.Transactions)
	assert.Equal(t, dto.SummaryResponse{TotalIncome: "0.00", TotalExpense: "0.00", Balance: "0.00"}, report.Summary)
}
