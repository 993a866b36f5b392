// Package web serves the embedded single-page dashboard. The page is plain
// HTML and fetches everything it shows from the JSON and chart endpoints;
// there is no server-side templating.
package web

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed index.html
var indexHTML []byte

func PageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(indexHTML)
	}
}
