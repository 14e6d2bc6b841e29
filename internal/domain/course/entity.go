package course

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("course title must not be empty")
	ErrEmptyCategory = errors.New("course category must not be empty")
	ErrNegativePrice = errors.New("course price cannot be negative")
)

type Course struct {
	id           uuid.UUID
	title        string
	description  string
	category     string
	priceCents   int64
	instructorID uuid.UUID
	published    bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCourse(title, description, category string, priceCents int64, instructorID uuid.UUID) (*Course, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Course{
		id:           uuid.New(),
		title:        title,
		description:  description,
		category:     category,
		priceCents:   priceCents,
		instructorID: instructorID,
	}, nil
}

func (c *Course) ID() uuid.UUID           { return c.id }
func (c *Course) Title() string           { return c.title }
func (c *Course) Description() string     { return c.description }
func (c *Course) Category() string        { return c.category }
func (c *Course) PriceCents() int64       { return c.priceCents }
func (c *Course) InstructorID() uuid.UUID { return c.instructorID }
func (c *Course) Published() bool         { return c.published }
func (c *Course) CreatedAt() time.Time    { return c.createdAt }
func (c *Course) UpdatedAt() time.Time    { return c.updatedAt }

func (c *Course) IsFree() bool {
	return c.priceCents == 0
}

func (c *Course) OwnedBy(userID uuid.UUID) bool {
	return c.instructorID == userID
}
