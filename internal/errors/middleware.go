package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/riskops/riskboard/internal/constants"
	"github.com/riskops/riskboard/internal/service"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error":   fiberErr.Message,
				"message": fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": "Could not process the request",
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	statusMap := map[string]int{
		constants.ErrCodeChartRender:     fiber.StatusInternalServerError,
		constants.ErrCodeExportFailed:    fiber.StatusInternalServerError,
		constants.ErrCodeOperationFailed: fiber.StatusInternalServerError,
	}

	status, ok := statusMap[err.Code]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    err.Code,
		"message": constants.GetErrorMessage(err.Code),
	})
}
