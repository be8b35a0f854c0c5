package leave

import "time"

func mapToResponse(r Record) LeaveResponse {
	return LeaveResponse{
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

func mapToListResponse(records []Record) []LeaveResponse {
	resp := make([]LeaveResponse, len(records))
	for i, r := range records {
		resp[i] = mapToResponse(r)
	}
	return resp
}

// mapToFormResponse only lists per-type availability when details are shown.
func mapToFormResponse(s Snapshot) FormResponse {
	overview := OverviewResponse{
		TotalLeaves:     s.Total.Sum(),
		RemainingLeaves: s.Remaining.Sum(),
	}
	if s.ShowDetails {
		for _, t := range LeaveTypes {
			overview.Availability = append(overview.Availability, LeaveAvailability{
				LeaveType: string(t),
				Total:     s.Total.Of(t),
				Remaining: s.Remaining.Of(t),
			})
		}
	}

	return FormResponse{
		ID: s.ID.String(),
		Draft: DraftResponse{
			StartDate: s.Draft.StartDate,
			EndDate:   s.Draft.EndDate,
			LeaveType: s.Draft.LeaveType,
			Reason:    s.Draft.Reason,
		},
		Overview:    overview,
		ShowDetails: s.ShowDetails,
		Requests:    mapToListResponse(s.Requests),
	}
}
