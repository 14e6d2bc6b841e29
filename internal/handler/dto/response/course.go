package response

import (
	"time"

	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CourseResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	PriceCents     int64     `json:"priceCents"`
	InstructorID   uuid.UUID `json:"instructorId"`
	InstructorName string    `json:"instructorName"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromCourseView(cv *queries.CourseView) *CourseResponse {
	var resp CourseResponse
	if err := copier.Copy(&resp, cv); err != nil {
		return &CourseResponse{ID: cv.ID, Title: cv.Title}
	}
	return &resp
}

func FromCourseViews(views []queries.CourseView) []*CourseResponse {
	resps := make([]*CourseResponse, 0, len(views))
	for i := range views {
		resps = append(resps, FromCourseView(&views[i]))
	}
	return resps
}
