package middleware

import (
	"coursefeedback/database"
	"coursefeedback/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Action names a guarded write operation.
type Action string

const (
	ActionManageCourses  Action = "courses:manage"  // create/update/delete course
	ActionUpdateFeedback Action = "feedback:update" // author only, admins excluded
	ActionDeleteFeedback Action = "feedback:delete" // author or admin
)

// Can reports whether the caller may perform action. For feedback actions
// fb must be the target record; for course management it is ignored.
// Every write handler consults this instead of inlining role checks.
func Can(caller models.User, action Action, fb *models.Feedback) bool {
	switch action {
	case ActionManageCourses:
		return caller.Role == models.RoleAdmin
	case ActionUpdateFeedback:
		return fb != nil && fb.StudentID == caller.ID
	case ActionDeleteFeedback:
		return fb != nil && (fb.StudentID == caller.ID || caller.Role == models.RoleAdmin)
	}
	return false
}

// RequireAdmin loads the caller and rejects anyone without the admin role.
// Runs after JWTMiddleware.
func RequireAdmin(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: User ID not found",
			"data":    nil,
		})
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "User not found!",
				"data":    nil,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Server error while checking permissions!",
			"data":    nil,
		})
	}

	if !Can(user, ActionManageCourses, nil) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "Admin access required!",
			"data":    nil,
		})
	}

	c.Locals("caller", user)
	return c.Next()
}
