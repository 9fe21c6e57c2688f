package dto

import (
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/entity"
	"github.com/amirhossein-jamali/bookkeeper/internal/domain/port/usecase"
)

// SummaryResponse holds the aggregated totals as fixed two-decimal strings
type SummaryResponse struct {
	TotalIncome  string `json:"totalIncome"`
	TotalExpense string `json:"totalExpense"`
	Balance      string `json:"balance"`
}

// ReportResponse is the body of the dashboard and report endpoints
type ReportResponse struct {
	Username     string                `json:"username"`
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
}

// NewSummaryResponse formats a summary for the API
func NewSummaryResponse(summary entity.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:  entity.FormatAmount(summary.TotalIncome),
		TotalExpense: entity.FormatAmount(summary.TotalExpense),
		Balance:      entity.FormatAmount(summary.Balance),
	}
}

// NewReportResponse formats a ledger report for the API
func NewReportResponse(report *usecase.Report) ReportResponse {
	return ReportResponse{
		Username:     report.Username,
		Transactions: NewTransactionResponses(report.Transactions),
		Summary:      NewSummaryResponse(report.Summary),
	}
}
