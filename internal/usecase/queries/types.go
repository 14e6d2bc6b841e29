package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// CouponView represents read-optimized coupon data
type CouponView struct {
	ID            uuid.UUID   `json:"id"`
	Code          string      `json:"code"`
	DiscountType  string      `json:"discount_type"`
	DiscountValue int64       `json:"discount_value"`
	ValidFrom     *time.Time  `json:"valid_from,omitempty"`
	ValidUntil    *time.Time  `json:"valid_until,omitempty"`
	UsageLimit    int64       `json:"usage_limit"`
	UsedCount     int64       `json:"used_count"`
	IsActive      bool        `json:"is_active"`
	Courses       []uuid.UUID `json:"courses"`
	Categories    []string    `json:"categories"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CouponValidation is the fail-closed answer to a validation query.
type CouponValidation struct {
	Valid    bool  `json:"valid"`
	Discount int64 `json:"discount"`
}

// CourseView represents read-optimized course data
type CourseView struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	PriceCents     int64     `json:"price_cents"`
	InstructorID   uuid.UUID `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	Published      bool      `json:"published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EnrollmentView represents a student's enrollment joined with its course
type EnrollmentView struct {
	ID             uuid.UUID `json:"id"`
	CourseID       uuid.UUID `json:"course_id"`
	CourseTitle    string    `json:"course_title"`
	StudentID      uuid.UUID `json:"student_id"`
	PricePaidCents int64     `json:"price_paid_cents"`
	CouponCode     *string   `json:"coupon_code,omitempty"`
	Progress       float64   `json:"progress"`
	Status         string    `json:"status"`
	EnrolledAt     time.Time `json:"enrolled_at"`
}

// AdminOverviewView aggregates marketplace-wide totals
type AdminOverviewView struct {
	TotalStudents    int64 `json:"total_students"`
	TotalInstructors int64 `json:"total_instructors"`
	TotalCourses     int64 `json:"total_courses"`
	TotalEnrollments int64 `json:"total_enrollments"`
	RevenueCents     int64 `json:"revenue_cents"`
	ActiveCoupons    int64 `json:"active_coupons"`
}

// InstructorCourseStats is one row of an instructor's dashboard
type InstructorCourseStats struct {
	CourseID        uuid.UUID `json:"course_id"`
	Title           string    `json:"title"`
	EnrollmentCount int64     `json:"enrollment_count"`
	RevenueCents    int64     `json:"revenue_cents"`
}

// InstructorDashboardView summarizes an instructor's own courses
type InstructorDashboardView struct {
	Courses           []InstructorCourseStats `json:"courses"`
	TotalEnrollments  int64                   `json:"total_enrollments"`
	TotalRevenueCents int64                   `json:"total_revenue_cents"`
}

// StudentDashboardView lists a student's enrollments
type StudentDashboardView struct {
	Enrollments []EnrollmentView `json:"enrollments"`
	Completed   int64            `json:"completed"`
	InProgress  int64            `json:"in_progress"`
}
