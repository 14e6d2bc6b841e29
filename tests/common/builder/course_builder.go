//go:build unit || e2e

package builder

import (
	"time"

	"learnhub-api/internal/domain/course"
	reqdto "learnhub-api/internal/handler/dto/request"
	"learnhub-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourseBuilder struct {
	ID             uuid.UUID
	Title          string
	Description    string
	Category       string
	PriceCents     int64
	InstructorID   uuid.UUID
	InstructorName string
	Published      bool
}

func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:             uuid.New(),
		Title:          "Intro to Go",
		Description:    "A first course on Go",
		Category:       "programming",
		PriceCents:     4900,
		InstructorID:   uuid.New(),
		InstructorName: "Test Instructor",
		Published:      true,
	}
}

func (c *CourseBuilder) BuildDomain() (*course.Course, error) {
	return course.NewCourse(c.Title, c.Description, c.Category, c.PriceCents, c.InstructorID)
}

func (c *CourseBuilder) BuildView() *queries.CourseView {
	now := time.Now()
	return &queries.CourseView{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		Category:       c.Category,
		PriceCents:     c.PriceCents,
		InstructorID:   c.InstructorID,
		InstructorName: c.InstructorName,
		Published:      c.Published,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (c *CourseBuilder) BuildCreateDTO() reqdto.CreateCourseRequest {
	return reqdto.CreateCourseRequest{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		PriceCents:  c.PriceCents,
		Published:   c.Published,
	}
}

// Fluent builder methods
func (c *CourseBuilder) WithTitle(title string) *CourseBuilder {
	c.Title = title
	return c
}

func (c *CourseBuilder) WithCategory(category string) *CourseBuilder {
	c.Category = category
	return c
}

func (c *CourseBuilder) WithPrice(priceCents int64) *CourseBuilder {
	c.PriceCents = priceCents
	return c
}

func (c *CourseBuilder) WithInstructor(id uuid.UUID, name string) *CourseBuilder {
	c.InstructorID = id
	c.InstructorName = name
	return c
}

func (c *CourseBuilder) AsDraft() *CourseBuilder {
	c.Published = false
	return c
}
