package revenue

import "time"

type ContributionInput struct {
	EmployeeID   string  `json:"employee_id" binding:"required,uuid"`
	EmployeeName string  `json:"employee_name" binding:"required,max=255"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
}

type CreateRevenueRequest struct {
	BranchID       string              `json:"branch_id" binding:"required,uuid"`
	Date           string              `json:"date" binding:"required,datetime=2006-01-02"`
	Amount         float64             `json:"amount" binding:"required,gt=0"`
	Discount       float64             `json:"discount" binding:"gte=0"`
	CashAmount     float64             `json:"cash_amount" binding:"gte=0"`
	NetworkAmount  float64             `json:"network_amount" binding:"gte=0"`
	MismatchReason string              `json:"mismatch_reason" binding:"max=2000"`
	Contributions  []ContributionInput `json:"contributions" binding:"required,min=1,dive"`
}

type ContributionResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Amount       float64 `json:"amount"`
}

type RevenueResponse struct {
	ID                 string                 `json:"id"`
	DocumentNo         string                 `json:"document_no"`
	BranchID           string                 `json:"branch_id"`
	Date               string                 `json:"date"`
	Amount             float64                `json:"amount"`
	Discount           float64                `json:"discount"`
	TotalAfterDiscount float64                `json:"total_after_discount"`
	CashAmount         float64                `json:"cash_amount"`
	NetworkAmount      float64                `json:"network_amount"`
	MismatchReason     string                 `json:"mismatch_reason,omitempty"`
	CreatedBy          string                 `json:"created_by"`
	Contributions      []ContributionResponse `json:"contributions"`
	CreatedAt          time.Time              `json:"created_at"`
}

func mapToResponse(r *Revenue) RevenueResponse {
	contributions := make([]ContributionResponse, 0, len(r.Contributions))
	for _, c := range r.Contributions {
		contributions = append(contributions, ContributionResponse{
			EmployeeID:   c.EmployeeID.String(),
			EmployeeName: c.EmployeeName,
			Amount:       c.Amount,
		})
	}

	return RevenueResponse{
		ID:                 r.ID.String(),
		DocumentNo:         r.DocumentNo,
		BranchID:           r.BranchID.String(),
		Date:               r.Date.Format("2006-01-02"),
		Amount:             r.Amount,
		Discount:           r.Discount,
		TotalAfterDiscount: r.TotalAfterDiscount,
		CashAmount:         r.CashAmount,
		NetworkAmount:      r.NetworkAmount,
		MismatchReason:     r.MismatchReason,
		CreatedBy:          r.CreatedBy.String(),
		Contributions:      contributions,
		CreatedAt:          r.CreatedAt,
	}
}
