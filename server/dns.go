package server

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/anshulyadav32/dns-status-api/sqlmodel"
	"github.com/anshulyadav32/dns-status-api/status"
)

// handleDNSStatus runs a live aggregation for ?domain=X&owner=Y. With
// ?mock=true it returns the fixed sample snapshot instead, the same data
// the dashboard renders before its first live check.
func (s *Server) handleDNSStatus(c *fiber.Ctx) error {
	domain := c.Query("domain", "dev0-1.com")
	owner := c.Query("owner", "anshulyadav32")

	if c.QueryBool("mock") {
		st := status.MockStatus()
		st.Domain = domain
		st.Owner = owner
		return c.JSON(st)
	}

	return c.JSON(s.aggregator.Check(c.Context(), domain, owner))
}

func (s *Server) handleListRecords(c *fiber.Ctx) error {
	var records []sqlmodel.DNSRecord
	if err := s.db.Order("created_at DESC").Find(&records).Error; err != nil {
		return storageError(c, err, "Failed to fetch DNS records")
	}
	return c.JSON(records)
}

func (s *Server) handleGetRecord(c *fiber.Ctx) error {
	var record sqlmodel.DNSRecord
	err := s.db.First(&record, "id = ?", c.Params("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "DNS record not found",
		})
	}
	if err != nil {
		return storageError(c, err, "Failed to fetch DNS record")
	}
	return c.JSON(record)
}

type recordRequest struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Ttl      *uint32 `json:"ttl"`
	Priority int     `json:"priority"`
}

func (s *Server) handleCreateRecord(c *fiber.Ctx) error {
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Type == "" || req.Name == "" || req.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Type, name, and value are required",
		})
	}

	ttl := uint32(3600)
	if req.Ttl != nil {
		ttl = *req.Ttl
	}

	record := sqlmodel.DNSRecord{
		Type:     req.Type,
		Name:     req.Name,
		Value:    req.Value,
		Ttl:      ttl,
		Priority: req.Priority,
		IsActive: true,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return storageError(c, err, "Failed to create DNS record")
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func (s *Server) handleUpdateRecord(c *fiber.Ctx) error {
	var record sqlmodel.DNSRecord
	err := s.db.First(&record, "id = ?", c.Params("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "DNS record not found",
		})
	}
	if err != nil {
		return storageError(c, err, "Failed to update DNS record")
	}

	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	record.Type = req.Type
	record.Name = req.Name
	record.Value = req.Value
	record.Priority = req.Priority
	if req.Ttl != nil {
		record.Ttl = *req.Ttl
	} else {
		record.Ttl = 3600
	}

	if err := s.db.Save(&record).Error; err != nil {
		return storageError(c, err, "Failed to update DNS record")
	}
	return c.JSON(record)
}

func (s *Server) handleDeleteRecord(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "DNS record not found",
		})
	}

	result := s.db.Delete(&sqlmodel.DNSRecord{}, "id = ?", id)
	if result.Error != nil {
		return storageError(c, result.Error, "Failed to delete DNS record")
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "DNS record not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "DNS record deleted successfully",
		"id":      id,
	})
}
