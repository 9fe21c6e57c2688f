package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles transaction and report requests for the session user
type LedgerHandler struct {
	ledger       usecase.LedgerUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(
	ledger usecase.LedgerUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerHandler {
	return &LedgerHandler{
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateTransaction handles the POST /api/transactions endpoint
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	h.record(c, "")
}

// RecordIncome handles the POST /api/income endpoint
func (h *LedgerHandler) RecordIncome(c *gin.Context) {
	h.record(c, entity.TypeIncome)
}

// RecordExpense handles the POST /api/expense endpoint
func (h *LedgerHandler) RecordExpense(c *gin.Context) {
	h.record(c, entity.TypeExpense)
}

// record reads the body and appends it to the session user's ledger.
// A non-empty fixed type overrides the type in the body.
func (h *LedgerHandler) record(c *gin.Context, fixed entity.TransactionType) {
	username, ok := h.sessionUser(c)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, errs.CodeInvalidTransaction, err)
		return
	}

	txType := fixed
	if txType == "" {
		parsed, err := entity.ParseTransactionType(req.Type)
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		txType = parsed
	}

	amount, err := entity.ParseAmount(req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	date, err := h.parseDate(req.Date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	id, err := h.ledger.Record(c.Request.Context(), username, txType, amount, req.Description, date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TransactionCreatedResponse{ID: id})
}

// ListTransactions handles the GET /api/transactions endpoint
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	username, ok := h.sessionUser(c)
	if !ok {
		return
	}

	transactions, err := h.ledger.ListFor(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: dto.NewTransactionResponses(transactions),
	})
}

// GetReport handles the GET /api/dashboard and GET /api/report endpoints
func (h *LedgerHandler) GetReport(c *gin.Context) {
	username, ok := h.sessionUser(c)
	if !ok {
		return
	}

	report, err := h.ledger.Report(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(report))
}

func (h *LedgerHandler) sessionUser(c *gin.Context) (string, bool) {
	username, ok := middleware.UsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrAuthenticationFailure),
			Message: "Authentication required",
		})
	}
	return username, ok
}

// parseDate defaults an empty date to today
func (h *LedgerHandler) parseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return h.timeProvider.Today(), nil
	}
	return entity.ParseDate(value)
}
