package questionValidator

import (
	"caces/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateQuestion validator middleware
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text          string `json:"text"`
			CorrectAnswer string `json:"correct_answer"`
			TimeLimit     int    `json:"time_limit"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Text
		if len(strings.TrimSpace(reqData.Text)) < 5 {
			errors["text"] = "Question text must be at least 5 characters long!"
		}

		// Validate CorrectAnswer
		if strings.TrimSpace(reqData.CorrectAnswer) == "" {
			errors["correct_answer"] = "Correct answer is required!"
		}

		// Validate TimeLimit
		if reqData.TimeLimit < 0 || reqData.TimeLimit > 600 {
			errors["time_limit"] = "Time limit must be between 0 and 600 seconds!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
