// Package api exposes the parser over HTTP for the upload UI.
package api

import (
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mustafagonen/ekstreparse/internal/extractor"
	"github.com/mustafagonen/ekstreparse/internal/models"
	"github.com/mustafagonen/ekstreparse/internal/parser"
)

const apiVersion = "1.0.0"

// statementParser is shared by all requests; parsing is a pure function
// of its input, so one instance is safe for concurrent handlers.
var statementParser = &parser.StatementParser{}

// SetClassifier installs a custom keyword table for the serving process
// (from --categories). Call before the app starts handling requests.
func SetClassifier(c *parser.Classifier) {
	statementParser = &parser.StatementParser{Classifier: c}
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "ekstreparse",
		BodyLimit: 32 << 20,
	})
	app.Use(recover.New())

	app.Get("/api/health", HandleHealth)
	app.Post("/api/parse", HandleParse)
	return app
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": apiVersion,
		"engine":  "fiber",
	})
}

// HandleParse accepts a multipart PDF upload (form field "file") or text
// already extracted client-side (form field "extractedText") and responds
// with the parse result. Row-level parse failures never surface here —
// they just shrink the data set.
func HandleParse(c *fiber.Ctx) error {
	text := strings.TrimSpace(c.FormValue("extractedText"))

	if text == "" {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest,
				"no input; upload a PDF as form field 'file' or send 'extractedText'")
		}
		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
			return writeError(c, fiber.StatusBadRequest, "only PDF uploads are supported")
		}

		tmp, err := os.CreateTemp("", "ekstre-*.pdf")
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "failed to stage uploaded file")
		}
		tmp.Close()
		defer os.Remove(tmp.Name())

		if err := c.SaveFile(fileHeader, tmp.Name()); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "failed to save uploaded file")
		}

		text, err = extractor.ExtractText(tmp.Name())
		if err != nil {
			return writeError(c, fiber.StatusUnprocessableEntity,
				fmt.Sprintf("PDF text extraction failed: %v", err))
		}
	}

	result := statementParser.Parse(text)
	if !result.Success {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}
	return c.JSON(result)
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(models.ParseResult{
		Success: false,
		Error:   msg,
		Data:    []models.GroupedExpense{},
	})
}
