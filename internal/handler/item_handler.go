package handler

import (
	"go-mof-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	itemService   service.ItemService
	scanService   service.ScanService
	verifyService service.VerificationService
}

func NewItemHandler(itemService service.ItemService, scanService service.ScanService, verifyService service.VerificationService) *ItemHandler {
	return &ItemHandler{
		itemService:   itemService,
		scanService:   scanService,
		verifyService: verifyService,
	}
}

// ScanRequest identifies the MOF and item of a scan or verification.
type ScanRequest struct {
	MofSerialNumber  string `json:"mof_serial_number"`
	ItemSerialNumber string `json:"item_serial_number"`
}

// CreateItem handles item registration
// POST /api/v1/items
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req service.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.itemService.CreateItem(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": item})
}

// GetItems returns all items
// GET /api/v1/items
func (h *ItemHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.itemService.GetAllItems()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

// ScanItem applies a picker's scan against a MOF
// POST /api/v1/items/scan
func (h *ItemHandler) ScanItem(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.MofSerialNumber == "" || req.ItemSerialNumber == "" {
		return c.Status(400).JSON(fiber.Map{"error": "mof_serial_number and item_serial_number are required"})
	}

	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	item, err := h.scanService.ScanItem(req.MofSerialNumber, req.ItemSerialNumber, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item scanned", "data": item})
}

// VerifyItem applies a requester's verification of a picked item
// POST /api/v1/items/verify
func (h *ItemHandler) VerifyItem(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.MofSerialNumber == "" || req.ItemSerialNumber == "" {
		return c.Status(400).JSON(fiber.Map{"error": "mof_serial_number and item_serial_number are required"})
	}

	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	item, err := h.verifyService.VerifyItem(req.MofSerialNumber, req.ItemSerialNumber, userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item verified", "data": item})
}
