package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the product, dashboard and export endpoints on api.
func RegisterRoutes(api fiber.Router, inv *InventoryHandler, dash *DashboardHandler, exp *ExportHandler) {
	// Product Routes
	api.Get("/products", inv.GetProducts)
	api.Get("/products/recent", inv.GetRecentProducts)
	api.Post("/products", inv.CreateProduct)
	api.Put("/products/:id", inv.UpdateProduct)
	api.Delete("/products/:id", inv.DeleteProduct)
	api.Post("/products/:id/stock", inv.AdjustStock)

	// Dashboard Routes
	api.Get("/stats", dash.GetStats)
	api.Get("/categories", dash.GetCategories)
	api.Get("/inventory", dash.GetInventory)

	// Export Routes
	api.Get("/export/csv", exp.ExportCSV)
	api.Get("/export/xlsx", exp.ExportXLSX)
}
