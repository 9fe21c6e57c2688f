package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/bookkeeper/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/bookkeeper/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newLedgerRouter mounts the ledger routes behind a stand-in for the auth middleware
func newLedgerRouter(ledger usecase.LedgerUseCase, clock *coremocks.MockTimeProvider, username string) *gin.Engine {
	h := NewLedgerHandler(ledger, clock, logger.NewNoopLogger())
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if username != "" {
			c.Set(middleware.UsernameKey, username)
		}
		c.Next()
	})
	router.POST("/api/transactions", h.CreateTransaction)
	router.GET("/api/transactions", h.ListTransactions)
	router.POST("/api/income", h.RecordIncome)
	router.POST("/api/expense", h.RecordExpense)
	router.GET("/api/report", h.GetReport)
	return router
}

func amountOf(value string) any {
	expected := decimal.RequireFromString(value)
	return mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.Equal(expected)
	})
}

func dateOf(y int, m time.Month, d int) any {
	expected := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return mock.MatchedBy(func(date time.Time) bool {
		return date.Equal(expected)
	})
}

func TestLedgerHandler_CreateTransaction(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)
		ledger.EXPECT().Record(mock.Anything, "alice", entity.TypeIncome, amountOf("100"), "invoice #1", dateOf(2024, 3, 1)).
			Return(uint64(7), nil).Once()

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodPost, "/api/transactions",
			dto.TransactionRequest{Type: "income", Amount: "100", Description: "invoice #1", Date: "2024-03-01"})

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.TransactionCreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint64(7), resp.ID)
	})

	t.Run("Unknown type", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodPost, "/api/transactions",
			dto.TransactionRequest{Type: "Refund", Amount: "10", Date: "2024-03-01"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidTransaction, decodeError(t, rec).Code)
	})

	t.Run("Negative amount", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodPost, "/api/transactions",
			dto.TransactionRequest{Type: "Expense", Amount: "-5", Date: "2024-03-01"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidTransaction, decodeError(t, rec).Code)
	})

	t.Run("Malformed date", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodPost, "/api/transactions",
			dto.TransactionRequest{Type: "Expense", Amount: "5", Date: "01/03/2024"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Missing amount", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodPost, "/api/transactions",
			dto.TransactionRequest{Type: "Expense", Date: "2024-03-01"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeInvalidTransaction, decodeError(t, rec).Code)
	})

	t.Run("Owner vanished", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)
		ledger.EXPECT().Record(mock.Anything, "ghost", entity.TypeExpense, amountOf("5"), "", dateOf(2024, 3, 1)).
			Return(uint64(0), errs.ErrUserNotFound).Once()

		rec := performJSON(t, newLedgerRouter(ledger, clock, "ghost"), http.MethodPost, "/api/transactions",
			dto.TransactionRequest{Type: "Expense", Amount: "5", Date: "2024-03-01"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeUserNotFound, decodeError(t, rec).Code)
	})

	t.Run("No session", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)

		rec := performJSON(t, newLedgerRouter(ledger, clock, ""), http.MethodPost, "/api/transactions",
			dto.TransactionRequest{Type: "Income", Amount: "5", Date: "2024-03-01"})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLedgerHandler_IncomeAndExpense(t *testing.T) {
	t.Run("Income ignores body type", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)
		ledger.EXPECT().Record(mock.Anything, "alice", entity.TypeIncome, amountOf("100"), "sale", dateOf(2024, 3, 1)).
			Return(uint64(1), nil).Once()

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodPost, "/api/income",
			dto.TransactionRequest{Type: "Expense", Amount: "100", Description: "sale", Date: "2024-03-01"})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Expense defaults date to today", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)
		clock.EXPECT().Today().Return(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)).Once()
		ledger.EXPECT().Record(mock.Anything, "alice", entity.TypeExpense, amountOf("30.5"), "rent", dateOf(2024, 5, 20)).
			Return(uint64(2), nil).Once()

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodPost, "/api/expense",
			dto.TransactionRequest{Amount: "30.5", Description: "rent"})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Too many decimals", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodPost, "/api/expense",
			dto.TransactionRequest{Amount: "1.005", Date: "2024-03-01"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLedgerHandler_ListTransactions(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("Lists session user's records", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)
		ledger.EXPECT().ListFor(mock.Anything, "alice").Return([]*entity.Transaction{
			{ID: 1, Username: "alice", Type: entity.TypeIncome, Amount: decimal.NewFromInt(100), Description: "sale",
				Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), CreatedAt: created},
			{ID: 2, Username: "alice", Type: entity.TypeExpense, Amount: decimal.RequireFromString("30.5"),
				Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), CreatedAt: created},
		}, nil).Once()

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodGet, "/api/transactions", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TransactionListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Transactions, 2)
		assert.Equal(t, uint64(1), resp.Transactions[0].ID)
		assert.Equal(t, "Income", resp.Transactions[0].Type)
		assert.Equal(t, "100.00", resp.Transactions[0].Amount)
		assert.Equal(t, "2024-03-01", resp.Transactions[0].Date)
		assert.Equal(t, "30.50", resp.Transactions[1].Amount)
	})

	t.Run("Empty ledger renders an empty array", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)
		ledger.EXPECT().ListFor(mock.Anything, "bob").Return([]*entity.Transaction{}, nil).Once()

		rec := performJSON(t, newLedgerRouter(ledger, clock, "bob"), http.MethodGet, "/api/transactions", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"transactions":[]}`, rec.Body.String())
	})

	t.Run("Storage unavailable", func(t *testing.T) {
		ledger := usecasemocks.NewMockLedgerUseCase(t)
		clock := coremocks.NewMockTimeProvider(t)
		ledger.EXPECT().ListFor(mock.Anything, "alice").
			Return(nil, errs.NewStorageError("select", "transactions", errors.New("unable to open database file"))).Once()

		rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodGet, "/api/transactions", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, errs.CodeStorageUnavailable, decodeError(t, rec).Code)
	})
}

func TestLedgerHandler_GetReport(t *testing.T) {
	ledger := usecasemocks.NewMockLedgerUseCase(t)
	clock := coremocks.NewMockTimeProvider(t)
	ledger.EXPECT().Report(mock.Anything, "alice").Return(&usecase.Report{
		Username: "alice",
		Transactions: []*entity.Transaction{
			{ID: 1, Type: entity.TypeIncome, Amount: decimal.NewFromInt(100), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Type: entity.TypeExpense, Amount: decimal.NewFromInt(30), Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		},
		Summary: entity.Summary{
			TotalIncome:  decimal.NewFromInt(100),
			TotalExpense: decimal.NewFromInt(30),
			Balance:      decimal.NewFromInt(70),
		},
	}, nil).Once()

	rec := performJSON(t, newLedgerRouter(ledger, clock, "alice"), http.MethodGet, "/api/report", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Len(t, resp.Transactions, 2)
	assert.Equal(t, dto.SummaryResponse{TotalIncome: "100.00", TotalExpense: "30.00", Balance: "70.00"}, resp.Summary)
}
