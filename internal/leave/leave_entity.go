package leave

import (
	"strings"
	"time"

	leaveerrors "go-leave/internal/leave/errors"

	"github.com/google/uuid"
)

type LeaveType string

const (
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeCasual LeaveType = "casual"
)

// LeaveTypes lists every leave type in display order.
var LeaveTypes = []LeaveType{LeaveTypeSick, LeaveTypeCasual}

func ParseLeaveType(v string) (LeaveType, error) {
	switch t := LeaveType(strings.ToLower(strings.TrimSpace(v))); t {
	case LeaveTypeSick, LeaveTypeCasual:
		return t, nil
	default:
		return "", leaveerrors.ErrInvalidLeaveType
	}
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDenied   Status = "Denied"
)

// Draft is the editable form content. Values are kept raw until Submit.
type Draft struct {
	StartDate string
	EndDate   string
	LeaveType string
	Reason    string
}

// Record is a submitted leave request. It is never mutated after creation.
type Record struct {
	ID          uuid.UUID
	StartDate   string
	EndDate     string
	LeaveType   LeaveType
	Reason      string
	LeaveDays   int
	Status      Status
	SubmittedAt time.Time
}

type Balance struct {
	Sick   int
	Casual int
}

// DefaultBalance is the yearly entitlement a new form starts with.
var DefaultBalance = Balance{Sick: 10, Casual: 10}

func (b Balance) Of(t LeaveType) int {
	switch t {
	case LeaveTypeSick:
		return b.Sick
	case LeaveTypeCasual:
		return b.Casual
	}
	return 0
}

func (b Balance) Sum() int {
	return b.Sick + b.Casual
}

// Deduct may take the balance below zero.
func (b *Balance) Deduct(t LeaveType, days int) {
	switch t {
	case LeaveTypeSick:
		b.Sick -= days
	case LeaveTypeCasual:
		b.Casual -= days
	}
}
