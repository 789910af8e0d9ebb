package feedbackController

import (
	"coursefeedback/database"
	"coursefeedback/middleware"
	"coursefeedback/models"
	feedbackValidator "coursefeedback/validators/feedback"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitFeedback creates the caller's feedback for a course. At most one
// feedback may exist per (course, student): the existence check below gives
// a friendly message, but the composite unique index is the authority —
// two concurrent submissions cannot both land.
func SubmitFeedback(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedFeedback").(*feedbackValidator.CreateFeedbackRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if course exists
	var course models.Course
	if err := db.Where("id = ?", reqData.CourseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	// Check if the student already reviewed this course
	var existing models.Feedback
	if err := db.Where("course_id = ? AND student_id = ?", course.ID, userId).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already submitted feedback for this course!", nil)
	}

	feedback := models.Feedback{
		CourseID:  course.ID,
		StudentID: userId,
		Rating:    reqData.Rating,
		Comment:   reqData.Comment,
	}

	if err := db.Create(&feedback).Error; err != nil {
		// The unique index caught a submission that raced past the check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You have already submitted feedback for this course!", nil)
		}
		log.Printf("Error creating feedback: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	// Reload with author and course names for immediate display.
	if err := db.Preload("Student", selectIDName).Preload("Course", selectIDName).
		First(&feedback, feedback.ID).Error; err != nil {
		log.Printf("Error reloading feedback %d: %v", feedback.ID, err)
	}
	feedback.Enrich()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully!", feedback)
}

// GetCourseFeedback returns all feedback for a course, newest first.
// Public, no auth.
func GetCourseFeedback(c *fiber.Ctx) error {
	courseId := c.Params("courseId")

	var feedbacks []models.Feedback
	if err := database.Database.Db.Where("course_id = ?", courseId).
		Preload("Student", selectIDName).
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	for i := range feedbacks {
		feedbacks[i].Enrich()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched!", feedbacks)
}

// GetMyFeedback returns the caller's feedback across courses, newest first.
func GetMyFeedback(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var feedbacks []models.Feedback
	if err := database.Database.Db.Where("student_id = ?", userId).
		Preload("Course", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, instructor")
		}).
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	for i := range feedbacks {
		feedbacks[i].Enrich()
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched!", feedbacks)
}

// UpdateFeedback applies a partial patch to the caller's own feedback.
// Author only: admins cannot edit other students' feedback, although they
// may delete it.
func UpdateFeedback(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	feedbackId := c.Params("id")

	reqData, ok := c.Locals("validatedFeedbackUpdate").(*feedbackValidator.UpdateFeedbackRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var feedback models.Feedback
	if err := db.Where("id = ?", feedbackId).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	caller, err := loadCaller(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !middleware.Can(caller, middleware.ActionUpdateFeedback, &feedback) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to update this feedback!", nil)
	}

	// Apply provided fields only
	if reqData.Rating != nil {
		feedback.Rating = *reqData.Rating
	}
	if reqData.Comment != nil {
		feedback.Comment = *reqData.Comment
	}

	if err := db.Save(&feedback).Error; err != nil {
		log.Printf("Error updating feedback %d: %v", feedback.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}

	if err := db.Preload("Student", selectIDName).Preload("Course", selectIDName).
		First(&feedback, feedback.ID).Error; err != nil {
		log.Printf("Error reloading feedback %d: %v", feedback.ID, err)
	}
	feedback.Enrich()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback updated successfully!", feedback)
}

// DeleteFeedback removes one feedback row. Allowed for its author or for
// an admin.
func DeleteFeedback(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	feedbackId := c.Params("id")

	db := database.Database.Db

	var feedback models.Feedback
	if err := db.Where("id = ?", feedbackId).First(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	caller, err := loadCaller(db, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if !middleware.Can(caller, middleware.ActionDeleteFeedback, &feedback) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to delete this feedback!", nil)
	}

	if err := db.Delete(&feedback).Error; err != nil {
		log.Printf("Error deleting feedback %d: %v", feedback.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback deleted successfully!", fiber.Map{
		"message": "Feedback deleted successfully",
	})
}

func loadCaller(db *gorm.DB, userId uint) (models.User, error) {
	var user models.User
	err := db.Where("id = ?", userId).First(&user).Error
	return user, err
}

func selectIDName(db *gorm.DB) *gorm.DB {
	return db.Select("id, name")
}
