package response

import "learnhub-api/internal/usecase/queries"

// DashboardResponse carries exactly one payload, selected by View. Clients
// switch on View rather than probing which payload is present.
type DashboardResponse struct {
	View       string                           `json:"view"`
	Admin      *queries.AdminOverviewView       `json:"admin,omitempty"`
	Instructor *queries.InstructorDashboardView `json:"instructor,omitempty"`
	Student    *queries.StudentDashboardView    `json:"student,omitempty"`
}

func AdminDashboard(view string, v *queries.AdminOverviewView) *DashboardResponse {
	return &DashboardResponse{View: view, Admin: v}
}

func InstructorDashboard(view string, v *queries.InstructorDashboardView) *DashboardResponse {
	return &DashboardResponse{View: view, Instructor: v}
}

func StudentDashboard(view string, v *queries.StudentDashboardView) *DashboardResponse {
	return &DashboardResponse{View: view, Student: v}
}
