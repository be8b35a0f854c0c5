package requestboard

import (
	"time"

	"go-leave/internal/leave"
)

type RequestResponse struct {
	ID          string `json:"id"`
	LeaveType   string `json:"leave_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
	LeaveDays   int    `json:"leave_days"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

func mapToResponse(r leave.Record) RequestResponse {
	return RequestResponse{
		ID:          r.ID.String(),
		LeaveType:   string(r.LeaveType),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Reason:      r.Reason,
		LeaveDays:   r.LeaveDays,
		Status:      string(r.Status),
		SubmittedAt: r.SubmittedAt.UTC().Format(time.RFC3339),
	}
}
