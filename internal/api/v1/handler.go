package v1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/riskops/riskboard/internal/api/contract"
	"github.com/riskops/riskboard/internal/api/validator"
	"github.com/riskops/riskboard/internal/constants"
	"github.com/riskops/riskboard/internal/service"
)

type Handler struct {
	logger     *zap.Logger
	dashboard  service.DashboardService
	XValidator validator.IXValidator
}

func NewHandler(logger *zap.Logger, dashboard service.DashboardService, XValidator validator.IXValidator) *Handler {
	return &Handler{
		logger:     logger,
		dashboard:  dashboard,
		XValidator: XValidator,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Overview(c *fiber.Ctx) error {
	overview, err := h.dashboard.Overview(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to build dashboard overview", zap.Error(err))
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "0",
		Result:     newOverviewResponse(overview),
	})
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	var request FilterRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Warn("Invalid summary request", zap.String("query", string(c.Request().URI().QueryString())))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	query := service.FilterQuery{Bucket: request.Bucket, MinSpend: request.MinSpend}

	summary, err := h.dashboard.Summary(c.UserContext(), query)
	if err != nil {
		h.logger.Error("Failed to compute summary",
			zap.String("bucket", request.Bucket),
			zap.Bool("minSpend", request.MinSpend),
			zap.Error(err))
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "0",
		Message:    fmt.Sprintf("Displaying %d users in %s category", summary.Count, summary.Bucket),
		Result:     newSummaryResponse(summary),
	})
}

func (h *Handler) Users(c *fiber.Ctx) error {
	var request FilterRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Warn("Invalid user details request", zap.String("query", string(c.Request().URI().QueryString())))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	query := service.FilterQuery{Bucket: request.Bucket, MinSpend: request.MinSpend}

	details, err := h.dashboard.UserDetails(c.UserContext(), query)
	if err != nil {
		h.logger.Error("Failed to build user details",
			zap.String("bucket", request.Bucket),
			zap.Bool("minSpend", request.MinSpend),
			zap.Error(err))
		return err
	}

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "0",
		Result:     newUserDetailsResponse(request.Bucket, request.MinSpend, details),
	})
}

func (h *Handler) BucketChart(c *fiber.Ctx) error {
	png, err := h.dashboard.BucketChartPNG(c.UserContext())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *Handler) CorrelationChart(c *fiber.Ctx) error {
	png, err := h.dashboard.CorrelationChartPNG(c.UserContext())
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *Handler) CorrelationPDF(c *fiber.Ctx) error {
	pdf, err := h.dashboard.CorrelationPDF(c.UserContext())
	if err != nil {
		return err
	}

	h.logger.Info("Serving correlation chart PDF",
		zap.String("fileName", pdf.FileName),
		zap.Int("bytes", len(pdf.Data)))

	c.Set(fiber.HeaderContentType, pdf.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", pdf.FileName))
	return c.Send(pdf.Data)
}
