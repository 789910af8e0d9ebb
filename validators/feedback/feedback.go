package feedbackValidator

import (
	"coursefeedback/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateFeedbackRequest is the validated POST /feedback body.
type CreateFeedbackRequest struct {
	CourseID uint   `json:"courseId" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required"`
}

// UpdateFeedbackRequest is the validated PUT /feedback/:id body. Both
// fields are optional; absent fields are left untouched by the handler.
type UpdateFeedbackRequest struct {
	Rating  *int    `json:"rating" validate:"omitnil,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitnil,min=1"`
}

// CreateFeedback validator middleware
func CreateFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateFeedbackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "CourseID":
					errors["courseId"] = "Course id is required!"
				case "Rating":
					errors["rating"] = "Rating must be an integer between 1 and 5!"
				case "Comment":
					errors["comment"] = "Comment must not be empty!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}

// UpdateFeedback validator middleware
func UpdateFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateFeedbackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Rating":
					errors["rating"] = "Rating must be an integer between 1 and 5!"
				case "Comment":
					errors["comment"] = "Comment must not be empty!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedbackUpdate", reqData)
		return c.Next()
	}
}
