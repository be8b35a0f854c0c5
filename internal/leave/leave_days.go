package leave

import (
	"math"
	"time"

	leaveerrors "go-leave/internal/leave/errors"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ComputeLeaveDays counts both endpoints, so a same-day leave is 1 day.
// The result is zero or negative when end is before start.
func ComputeLeaveDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// buildRecord validates the draft and derives a Pending record from it.
func buildRecord(d Draft, id uuid.UUID, now time.Time) (Record, error) {
	startDate, err := parseDate(d.StartDate)
	if err != nil {
		return Record{}, err
	}
	endDate, err := parseDate(d.EndDate)
	if err != nil {
		return Record{}, err
	}

	leaveDays := ComputeLeaveDays(startDate, endDate)
	if leaveDays <= 0 {
		return Record{}, leaveerrors.ErrInvalidLeavePeriod
	}

	leaveType, err := ParseLeaveType(d.LeaveType)
	if err != nil {
		return Record{}, err
	}

	return Record{
		ID:          id,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		LeaveType:   leaveType,
		Reason:      d.Reason,
		LeaveDays:   leaveDays,
		Status:      StatusPending,
		SubmittedAt: now,
	}, nil
}
