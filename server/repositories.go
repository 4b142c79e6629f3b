package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/anshulyadav32/dns-status-api/sqlmodel"
)

func (s *Server) handleListRepositories(c *fiber.Ctx) error {
	var repos []sqlmodel.Repository
	if err := s.db.Order("stars DESC").Find(&repos).Error; err != nil {
		return storageError(c, err, "Failed to fetch repositories")
	}
	return c.JSON(repos)
}

func (s *Server) handleGetRepository(c *fiber.Ctx) error {
	var repo sqlmodel.Repository
	err := s.db.First(&repo, "id = ?", c.Params("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Repository not found",
		})
	}
	if err != nil {
		return storageError(c, err, "Failed to fetch repository")
	}
	return c.JSON(repo)
}

// handleUpsertRepository creates a repository or, when one with the same
// fullName exists, updates it in place.
func (s *Server) handleUpsertRepository(c *fiber.Ctx) error {
	var req sqlmodel.Repository
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "fullName is required",
		})
	}

	var existing sqlmodel.Repository
	err := s.db.First(&existing, "full_name = ?", req.FullName).Error
	switch {
	case err == nil:
		req.ID = existing.ID
		req.CreatedAt = existing.CreatedAt
		if err := s.db.Save(&req).Error; err != nil {
			return storageError(c, err, "Failed to create/update repository")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&req).Error; err != nil {
			return storageError(c, err, "Failed to create/update repository")
		}
	default:
		return storageError(c, err, "Failed to create/update repository")
	}

	return c.JSON(req)
}

// handleSyncRepositories is a placeholder until GitHub API integration
// lands.
func (s *Server) handleSyncRepositories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Repository sync endpoint ready for GitHub API integration",
	})
}

func (s *Server) handleDeleteRepository(c *fiber.Ctx) error {
	result := s.db.Delete(&sqlmodel.Repository{}, "id = ?", c.Params("id"))
	if result.Error != nil {
		return storageError(c, result.Error, "Failed to delete repository")
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Repository not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Repository deleted successfully",
	})
}
