package events

import "time"

const RevenueRecordedTopic = "finance.revenue.recorded.v1"

type RevenueRecordedEvent struct {
	EventType   string    `json:"event_type"`
	RevenueID   string    `json:"revenue_id"`
	BranchID    string    `json:"branch_id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}
