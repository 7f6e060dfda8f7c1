package bonus

type CreateRuleRequest struct {
	BranchID        string  `json:"branch_id" binding:"required,uuid"`
	WeeklyThreshold float64 `json:"weekly_threshold" binding:"gte=0"`
	BonusAmount     float64 `json:"bonus_amount" binding:"gte=0"`
}

type UpdateRuleRequest struct {
	WeeklyThreshold *float64 `json:"weekly_threshold" binding:"omitempty,gte=0"`
	BonusAmount     *float64 `json:"bonus_amount" binding:"omitempty,gte=0"`
}

type RuleResponse struct {
	ID              string  `json:"id"`
	BranchID        string  `json:"branch_id"`
	WeeklyThreshold float64 `json:"weekly_threshold"`
	BonusAmount     float64 `json:"bonus_amount"`
}

func mapRuleToResponse(r *BonusRule) RuleResponse {
	return RuleResponse{
		ID:              r.ID.String(),
		BranchID:        r.BranchID.String(),
		WeeklyThreshold: r.WeeklyThreshold,
		BonusAmount:     r.BonusAmount,
	}
}
