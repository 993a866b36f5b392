package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	v1 "github.com/riskops/riskboard/internal/api/v1"
	"github.com/riskops/riskboard/web"
)

const prefixV1 = "/api/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/", web.PageHandler())

	app.Get(prefixV1+"dashboard/overview", handler.Overview)
	app.Get(prefixV1+"dashboard/summary", handler.Summary)
	app.Get(prefixV1+"dashboard/users", handler.Users)
	app.Get(prefixV1+"charts/buckets.png", handler.BucketChart)
	app.Get(prefixV1+"charts/correlation.png", handler.CorrelationChart)
	app.Get(prefixV1+"charts/correlation.pdf", handler.CorrelationPDF)
}
