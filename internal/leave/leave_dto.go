package leave

type UpdateFieldRequest struct {
	Name  string `json:"name" binding:"required,oneof=startDate endDate leaveType reason start_date end_date leave_type"`
	Value string `json:"value"`
}

// SubmitLeaveRequest is optional on submit; set fields overwrite the draft.
type SubmitLeaveRequest struct {
	StartDate *string `json:"start_date" form:"start_date"`
	EndDate   *string `json:"end_date" form:"end_date"`
	LeaveType *string `json:"leave_type" form:"leave_type"`
	Reason    *string `json:"reason" form:"reason"`
}

type DraftResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

type LeaveResponse struct {
	ID          string `json:"id"`
	LeaveType   string `json:"leave_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
	LeaveDays   int    `json:"leave_days"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

type LeaveAvailability struct {
	LeaveType string `json:"leave_type"`
	Total     int    `json:"total"`
	Remaining int    `json:"remaining"`
}

type OverviewResponse struct {
	TotalLeaves     int                 `json:"total_leaves"`
	RemainingLeaves int                 `json:"remaining_leaves"`
	Availability    []LeaveAvailability `json:"availability,omitempty"`
}

type FormResponse struct {
	ID          string           `json:"id"`
	Draft       DraftResponse    `json:"draft"`
	Overview    OverviewResponse `json:"overview"`
	ShowDetails bool             `json:"show_details"`
	Requests    []LeaveResponse  `json:"requests"`
}

type SubmitResponse struct {
	Leave            LeaveResponse `json:"leave"`
	NotificationSent bool          `json:"notification_sent"`
	Message          string        `json:"message"`
	Form             FormResponse  `json:"form"`
}
