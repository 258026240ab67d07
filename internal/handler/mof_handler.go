package handler

import (
	"fmt"

	"go-mof-tracker/internal/model"
	"go-mof-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MofHandler struct {
	mofService      service.MofService
	progressService service.ProgressService
	reportService   service.ReportService
}

func NewMofHandler(mofService service.MofService, progressService service.ProgressService, reportService service.ReportService) *MofHandler {
	return &MofHandler{
		mofService:      mofService,
		progressService: progressService,
		reportService:   reportService,
	}
}

// CreateMof handles MOF creation
// POST /api/v1/mofs
func (h *MofHandler) CreateMof(c *fiber.Ctx) error {
	var req service.CreateMofRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	// Creator comes from the authenticated session, not the body.
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	req.CreatedBy = userID

	mof, err := h.mofService.CreateMof(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "MOF created", "data": mof})
}

// GetMofs returns all MOFs, newest first
// GET /api/v1/mofs
func (h *MofHandler) GetMofs(c *fiber.Ctx) error {
	mofs, err := h.mofService.GetAllMofs()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(mofs)
}

// GetMofBySerial looks a MOF up by its serial number
// GET /api/v1/mofs/serial/:serial
func (h *MofHandler) GetMofBySerial(c *fiber.Ctx) error {
	mof, err := h.mofService.GetBySerial(c.Params("serial"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if mof == nil {
		return c.Status(404).JSON(fiber.Map{"error": "MOF not found"})
	}
	return c.JSON(mof)
}

// GetMyMofs returns the MOFs created by the authenticated user
// GET /api/v1/mofs/mine
func (h *MofHandler) GetMyMofs(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	mofs, err := h.mofService.GetUserMofs(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(mofs)
}

// GetUserMofs returns the MOFs created by one user
// GET /api/v1/users/:id/mofs
func (h *MofHandler) GetUserMofs(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	mofs, err := h.mofService.GetUserMofs(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(mofs)
}

// GetProgress returns the pick/verify progress projection
// GET /api/v1/mofs/:id/progress
func (h *MofHandler) GetProgress(c *fiber.Ctx) error {
	mofID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid MOF ID"})
	}

	progress, err := h.progressService.GetProgress(mofID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if progress == nil {
		return c.Status(404).JSON(fiber.Map{"error": "MOF not found"})
	}
	return c.JSON(progress)
}

// UpdateStatus is the administrative status override
// PUT /api/v1/mofs/:id/status
func (h *MofHandler) UpdateStatus(c *fiber.Ctx) error {
	mofID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid MOF ID"})
	}

	var req struct {
		Status model.MofStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	mof, err := h.mofService.UpdateStatus(mofID, req.Status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status updated", "data": mof})
}

// ExportProgress streams the progress sheet as an .xlsx download
// GET /api/v1/mofs/:id/progress/export
func (h *MofHandler) ExportProgress(c *fiber.Ctx) error {
	mofID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid MOF ID"})
	}

	f, err := h.reportService.ProgressWorkbook(mofID)
	if err != nil {
		return serviceError(c, err)
	}
	defer func() { _ = f.Close() }()

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="mof-progress-%s.xlsx"`, mofID))
	return f.Write(c.Response().BodyWriter())
}
