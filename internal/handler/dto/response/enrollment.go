package response

import (
	"time"

	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type EnrollmentResponse struct {
	ID             uuid.UUID `json:"id"`
	CourseID       uuid.UUID `json:"courseId"`
	CourseTitle    string    `json:"courseTitle"`
	PricePaidCents int64     `json:"pricePaidCents"`
	CouponCode     *string   `json:"couponCode,omitempty"`
	Progress       float64   `json:"progress"`
	Status         string    `json:"status"`
	EnrolledAt     time.Time `json:"enrolledAt"`
}

func FromEnrollmentView(ev *queries.EnrollmentView) *EnrollmentResponse {
	return &EnrollmentResponse{
		ID:             ev.ID,
		CourseID:       ev.CourseID,
		CourseTitle:    ev.CourseTitle,
		PricePaidCents: ev.PricePaidCents,
		CouponCode:     ev.CouponCode,
		Progress:       ev.Progress,
		Status:         ev.Status,
		EnrolledAt:     ev.EnrolledAt,
	}
}

func FromEnrollmentViews(views []queries.EnrollmentView) []*EnrollmentResponse {
	resps := make([]*EnrollmentResponse, 0, len(views))
	for i := range views {
		resps = append(resps, FromEnrollmentView(&views[i]))
	}
	return resps
}
