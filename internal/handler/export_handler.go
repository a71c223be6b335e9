package handler

import (
	"bytes"
	"io"
	"time"

	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/internal/view"

	"github.com/gofiber/fiber/v2"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	service service.InventoryService
	now     func() time.Time
}

func NewExportHandler(s service.InventoryService) *ExportHandler {
	return &ExportHandler{service: s, now: time.Now}
}

func (h *ExportHandler) ExportCSV(c *fiber.Ctx) error {
	return h.export(c, view.FormatCSV, contentTypeCSV, view.WriteCSV)
}

func (h *ExportHandler) ExportXLSX(c *fiber.Ctx) error {
	return h.export(c, view.FormatXLSX, contentTypeXLSX, view.WriteXLSX)
}

func (h *ExportHandler) export(c *fiber.Ctx, ext, contentType string, write func(io.Writer, []model.Product) error) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	if err := write(&buf, products); err != nil {
		return respondError(c, err)
	}

	c.Attachment(view.ExportFilename(h.now(), ext))
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(buf.Bytes())
}
