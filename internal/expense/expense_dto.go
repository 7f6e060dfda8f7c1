package expense

import "time"

type CreateExpenseRequest struct {
	BranchID    string  `json:"branch_id" binding:"required,uuid"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Category    string  `json:"category" binding:"required,max=100"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=2000"`
}

type UpdateExpenseRequest struct {
	Date        string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category    string  `json:"category" binding:"omitempty,max=100"`
	Amount      float64 `json:"amount" binding:"omitempty,gt=0"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
}

type ExpenseResponse struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func mapToResponse(e *Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		BranchID:    e.BranchID.String(),
		Date:        e.Date.Format("2006-01-02"),
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedBy:   e.CreatedBy.String(),
		CreatedAt:   e.CreatedAt,
	}
}
