package models

import "time"

// EnrollmentStatusEnrolled is the only stored enrollment status today. The
// student-facing projection relabels it "In Progress".
const EnrollmentStatusEnrolled = "enrolled"

// Enrollment links a student to a course, with a snapshot of the course
// metadata taken at enroll time. The composite unique index is the
// authoritative guard against duplicate enrollment; the service-level
// pre-check only exists for a friendlier error. Rows are hard-deleted on
// drop so a student can re-enroll.
type Enrollment struct {
	ID         uint      `json:"-" gorm:"primarykey"`
	StudentID  uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_enrollments_student_course"`
	CourseCode string    `json:"course_code" gorm:"not null;uniqueIndex:idx_enrollments_student_course"`
	CourseName string    `json:"course_name" gorm:"not null"`
	Instructor string    `json:"instructor" gorm:"not null"`
	Term       string    `json:"term"`
	Status     string    `json:"status" gorm:"default:'enrolled'"`
	CreatedAt  time.Time `json:"-"`
}
