package services

import (
	"github.com/skillsphere/backend/internal/models"
)

// canViewCourse reports whether the principal may see the course.
// Admins see everything, instructors see their own courses in any status,
// everyone else sees only approved courses.
func canViewCourse(p *models.Principal, course *models.Course) bool {
	if p.IsAdmin() {
		return true
	}
	if p != nil && course.InstructorID == p.UserID {
		return true
	}
	return course.Status == models.CourseStatusApproved
}

// ownsCourse reports whether the principal is the instructor of the course
func ownsCourse(p *models.Principal, course *models.Course) bool {
	return p != nil && course.InstructorID == p.UserID
}
