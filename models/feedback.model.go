package models

import "time"

// Feedback is one student's rating of one course. The composite unique
// index is the authority for the one-feedback-per-student-per-course rule;
// the handler's existence pre-check only exists for a friendlier message.
//
// No DeletedAt column: feedback is hard-deleted, otherwise a soft-deleted
// row would keep occupying the unique index and block a resubmission.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CourseID  uint      `json:"courseId" gorm:"not null;uniqueIndex:idx_feedback_course_student"`
	StudentID uint      `json:"studentId" gorm:"not null;uniqueIndex:idx_feedback_course_student"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Student User   `json:"-" gorm:"foreignKey:StudentID"`
	Course  Course `json:"-" gorm:"foreignKey:CourseID"`

	// Display-only fields copied from the preloaded associations.
	StudentName string `json:"studentName,omitempty" gorm:"-"`
	CourseName  string `json:"courseName,omitempty" gorm:"-"`
}

// Enrich copies author and course display names from preloaded
// associations into the serialized fields.
func (f *Feedback) Enrich() {
	f.StudentName = f.Student.Name
	f.CourseName = f.Course.Name
}
