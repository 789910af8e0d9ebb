package feedbackRoutes

import (
	controllers "coursefeedback/controllers/feedback"
	"coursefeedback/middleware"
	validators "coursefeedback/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

// SetupFeedbackRoutes sets up all feedback routes. Course feedback listing
// is public; everything else needs an authenticated caller.
func SetupFeedbackRoutes(app *fiber.App) {
	feedbackGroup := app.Group("/feedback")

	feedbackGroup.Post("/", middleware.JWTMiddleware, validators.CreateFeedback(), controllers.SubmitFeedback)
	feedbackGroup.Get("/course/:courseId", controllers.GetCourseFeedback)
	feedbackGroup.Get("/my-feedback", middleware.JWTMiddleware, controllers.GetMyFeedback)
	feedbackGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateFeedback(), controllers.UpdateFeedback)
	feedbackGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteFeedback)
}
