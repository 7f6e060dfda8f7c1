package productrequest

import "time"

type LineItemInput struct {
	ProductName string  `json:"product_name" binding:"required,max=255"`
	Quantity    float64 `json:"qty" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
	LineTotal   float64 `json:"line_total" binding:"required,gt=0"`
}

type CreateProductRequestRequest struct {
	BranchID    string          `json:"branch_id" binding:"required,uuid"`
	Notes       string          `json:"notes" binding:"max=2000"`
	Items       []LineItemInput `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64         `json:"total_amount" binding:"required,gt=0"`
}

type ReviewProductRequestRequest struct {
	AdminNote string `json:"admin_note" binding:"max=2000"`
}

type LineItemResponse struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type ProductRequestResponse struct {
	ID          string             `json:"id"`
	BranchID    string             `json:"branch_id"`
	RequestedBy string             `json:"requested_by"`
	Status      string             `json:"status"`
	TotalAmount float64            `json:"total_amount"`
	Notes       string             `json:"notes,omitempty"`
	Items       []LineItemResponse `json:"items"`
	ReviewedBy  string             `json:"reviewed_by,omitempty"`
	AdminNote   string             `json:"admin_note,omitempty"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func mapToResponse(pr *ProductRequest) ProductRequestResponse {
	items := make([]LineItemResponse, 0, len(pr.Items))
	for _, it := range pr.Items {
		items = append(items, LineItemResponse{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}

	resp := ProductRequestResponse{
		ID:          pr.ID.String(),
		BranchID:    pr.BranchID.String(),
		RequestedBy: pr.RequestedBy.String(),
		Status:      pr.Status,
		TotalAmount: pr.TotalAmount,
		Notes:       pr.Notes,
		Items:       items,
		AdminNote:   pr.AdminNote,
		ReviewedAt:  pr.ReviewedAt,
		CreatedAt:   pr.CreatedAt,
	}
	if pr.ReviewedBy != nil {
		resp.ReviewedBy = pr.ReviewedBy.String()
	}
	return resp
}
