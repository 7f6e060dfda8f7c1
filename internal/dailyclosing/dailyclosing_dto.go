package dailyclosing

import "time"

type CreateClosingRequest struct {
	BranchID      string  `json:"branch_id" binding:"required,uuid"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	ActualCash    float64 `json:"actual_cash" binding:"gte=0"`
	BankStatement float64 `json:"bank_statement" binding:"gte=0"`
	Notes         string  `json:"notes" binding:"max=2000"`
}

type ClosingResponse struct {
	ID             string    `json:"id"`
	BranchID       string    `json:"branch_id"`
	Date           string    `json:"date"`
	TotalRevenue   float64   `json:"total_revenue"`
	CashRevenue    float64   `json:"cash_revenue"`
	NetworkRevenue float64   `json:"network_revenue"`
	TotalExpense   float64   `json:"total_expense"`
	Net            float64   `json:"net"`
	ActualCash     float64   `json:"actual_cash"`
	BankStatement  float64   `json:"bank_statement"`
	CashDifference float64   `json:"cash_difference"`
	Notes          string    `json:"notes,omitempty"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

func mapToResponse(d *DailyClosing) ClosingResponse {
	return ClosingResponse{
		ID:             d.ID.String(),
		BranchID:       d.BranchID.String(),
		Date:           d.Date.Format("2006-01-02"),
		TotalRevenue:   d.TotalRevenue,
		CashRevenue:    d.CashRevenue,
		NetworkRevenue: d.NetworkRevenue,
		TotalExpense:   d.TotalExpense,
		Net:            d.Net,
		ActualCash:     d.ActualCash,
		BankStatement:  d.BankStatement,
		CashDifference: d.CashDifference,
		Notes:          d.Notes,
		CreatedBy:      d.CreatedBy.String(),
		CreatedAt:      d.CreatedAt,
	}
}
