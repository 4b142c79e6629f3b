package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/anshulyadav32/dns-status-api/sqlmodel"
)

func (s *Server) handleGetPersonal(c *fiber.Ctx) error {
	var info sqlmodel.PersonalInfo
	err := s.db.First(&info, "is_active = ?", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Personal information not found",
		})
	}
	if err != nil {
		return storageError(c, err, "Failed to fetch personal information")
	}
	return c.JSON(info)
}

func (s *Server) handleGetPersonalByID(c *fiber.Ctx) error {
	var info sqlmodel.PersonalInfo
	err := s.db.First(&info, "id = ?", c.Params("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Personal information not found",
		})
	}
	if err != nil {
		return storageError(c, err, "Failed to fetch personal information")
	}
	return c.JSON(info)
}

// handleUpsertPersonal updates the active profile row if one exists,
// otherwise creates it. The dashboard only ever shows one active profile.
func (s *Server) handleUpsertPersonal(c *fiber.Ctx) error {
	var req sqlmodel.PersonalInfo
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name is required",
		})
	}
	req.IsActive = true

	var existing sqlmodel.PersonalInfo
	err := s.db.First(&existing, "is_active = ?", true).Error
	switch {
	case err == nil:
		req.ID = existing.ID
		req.CreatedAt = existing.CreatedAt
		if err := s.db.Save(&req).Error; err != nil {
			return storageError(c, err, "Failed to save personal information")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&req).Error; err != nil {
			return storageError(c, err, "Failed to save personal information")
		}
	default:
		return storageError(c, err, "Failed to save personal information")
	}

	return c.JSON(req)
}

func (s *Server) handleUpdatePersonal(c *fiber.Ctx) error {
	var info sqlmodel.PersonalInfo
	err := s.db.First(&info, "id = ?", c.Params("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Personal information not found",
		})
	}
	if err != nil {
		return storageError(c, err, "Failed to update personal information")
	}

	var req sqlmodel.PersonalInfo
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	req.ID = info.ID
	req.CreatedAt = info.CreatedAt
	req.IsActive = info.IsActive
	if err := s.db.Save(&req).Error; err != nil {
		return storageError(c, err, "Failed to update personal information")
	}
	return c.JSON(req)
}

func (s *Server) handleDeletePersonal(c *fiber.Ctx) error {
	result := s.db.Delete(&sqlmodel.PersonalInfo{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return storageError(c, result.Error, "Failed to delete personal information")
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Personal information not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Personal information deleted successfully",
	})
}
