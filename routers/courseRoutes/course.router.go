package courseRoutes

import (
	controllers "coursefeedback/controllers/course"
	"coursefeedback/middleware"
	validators "coursefeedback/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course routes. Reads are public; writes
// are admin only.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireAdmin, validators.CreateCourse(), controllers.AdminCreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, validators.CourseID(), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireAdmin, validators.CourseID(), controllers.AdminDeleteCourse)
}
