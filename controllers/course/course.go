package courseController

import (
	"coursefeedback/database"
	"coursefeedback/middleware"
	"coursefeedback/models"
	"coursefeedback/stats"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses returns every course with its live rating summary.
// Public, no auth.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Order("id").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	// One query for all feedback, grouped in memory per course.
	var feedbacks []models.Feedback
	if err := db.Find(&feedbacks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course ratings!", nil)
	}

	byCourse := make(map[uint][]models.Feedback)
	for _, f := range feedbacks {
		byCourse[f.CourseID] = append(byCourse[f.CourseID], f)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", stats.CourseListView(courses, byCourse))
}

// GetCourseDetails returns one course with summary, per-star distribution
// and its feedback list (newest first). Public, no auth.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	var feedbacks []models.Feedback
	if err := db.Where("course_id = ?", course.ID).
		Preload("Student", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		Find(&feedbacks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	for i := range feedbacks {
		feedbacks[i].Enrich()
	}

	detail := stats.CourseDetailView(course, feedbacks)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", detail)
}
