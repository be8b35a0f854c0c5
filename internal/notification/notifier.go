package notification

import (
	"context"
	"fmt"
)

// LeaveRequestMessage is the parameter bag sent to the manager for every
// new leave request. Field names match the relay template variables.
type LeaveRequestMessage struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	LeaveType string `json:"leaveType"`
	Reason    string `json:"reason"`
	LeaveDays int    `json:"leaveDays"`
}

//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	NotifyLeaveRequest(ctx context.Context, msg LeaveRequestMessage) error
}

// DeliveryError is returned when the remote relay rejects or fails the call.
type DeliveryError struct {
	Driver     string
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s notification failed with status %d: %v", e.Driver, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s notification failed: %v", e.Driver, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
