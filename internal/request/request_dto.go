package request

import "time"

type CreateRequestRequest struct {
	BranchID string `json:"branch_id" binding:"required,uuid"`
	Type     string `json:"type" binding:"required,oneof=LEAVE ADVANCE RESIGNATION OVERTIME"`
	Reason   string `json:"reason" binding:"max=2000"`

	StartDate      string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate        string  `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Amount         float64 `json:"amount" binding:"omitempty,gt=0"`
	LastWorkingDay string  `json:"last_working_day" binding:"omitempty,datetime=2006-01-02"`
	OvertimeDate   string  `json:"overtime_date" binding:"omitempty,datetime=2006-01-02"`
	OvertimeHours  float64 `json:"overtime_hours" binding:"omitempty,gt=0,lte=24"`
}

type ReviewRequestRequest struct {
	AdminNote string `json:"admin_note" binding:"max=2000"`
}

type RequestResponse struct {
	ID       string `json:"id"`
	BranchID string `json:"branch_id"`
	UserID   string `json:"user_id"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`

	StartDate      string  `json:"start_date,omitempty"`
	EndDate        string  `json:"end_date,omitempty"`
	Amount         float64 `json:"amount,omitempty"`
	LastWorkingDay string  `json:"last_working_day,omitempty"`
	OvertimeDate   string  `json:"overtime_date,omitempty"`
	OvertimeHours  float64 `json:"overtime_hours,omitempty"`

	ReviewedBy string     `json:"reviewed_by,omitempty"`
	AdminNote  string     `json:"admin_note,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func mapToResponse(r *Request) RequestResponse {
	resp := RequestResponse{
		ID:             r.ID.String(),
		BranchID:       r.BranchID.String(),
		UserID:         r.UserID.String(),
		Type:           r.Type,
		Status:         r.Status,
		Reason:         r.Reason,
		StartDate:      formatDate(r.StartDate),
		EndDate:        formatDate(r.EndDate),
		LastWorkingDay: formatDate(r.LastWorkingDay),
		OvertimeDate:   formatDate(r.OvertimeDate),
		AdminNote:      r.AdminNote,
		ReviewedAt:     r.ReviewedAt,
		CreatedAt:      r.CreatedAt,
	}
	if r.Amount != nil {
		resp.Amount = *r.Amount
	}
	if r.OvertimeHours != nil {
		resp.OvertimeHours = *r.OvertimeHours
	}
	if r.ReviewedBy != nil {
		resp.ReviewedBy = r.ReviewedBy.String()
	}
	return resp
}
