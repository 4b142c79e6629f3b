package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/anshulyadav32/dns-status-api/sqlmodel"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"message":   "API server is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleDBStatus(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"connected": false,
			"error":     err.Error(),
			"message":   "Failed to connect to database",
		})
	}

	return c.JSON(fiber.Map{
		"connected": true,
		"timestamp": time.Now().Format(time.RFC3339),
		"message":   "Successfully connected to database",
	})
}

func (s *Server) handleDBStats(c *fiber.Ctx) error {
	var users, records, history, alerts int64

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&sqlmodel.User{}, &users},
		{&sqlmodel.DNSRecord{}, &records},
		{&sqlmodel.MonitoringHistory{}, &history},
		{&sqlmodel.Alert{}, &alerts},
	}
	for _, count := range counts {
		if err := s.db.Model(count.model).Count(count.dest).Error; err != nil {
			return storageError(c, err, "Failed to get database stats")
		}
	}

	return c.JSON(fiber.Map{
		"users":             users,
		"dnsRecords":        records,
		"monitoringEntries": history,
		"alerts":            alerts,
	})
}

func (s *Server) handleDocs(c *fiber.Ctx) error {
	type endpoint struct {
		Path        string `json:"path"`
		Method      string `json:"method"`
		Description string `json:"description"`
	}
	return c.JSON(fiber.Map{
		"apiVersion": "1.0",
		"endpoints": []endpoint{
			{"/api/health", "GET", "Health check endpoint"},
			{"/api/db/status", "GET", "Check database connection status"},
			{"/api/db/stats", "GET", "Get database statistics"},
			{"/api/auth/register", "POST", "Register a new user"},
			{"/api/auth/login", "POST", "Login user"},
			{"/api/auth/github", "GET", "GitHub OAuth login"},
			{"/api/auth/google", "GET", "Google OAuth login"},
			{"/api/auth/me", "GET", "Get current user"},
			{"/api/auth/logout", "POST", "Logout user"},
			{"/api/dns/status", "GET", "Check live DNS status for a domain"},
			{"/api/dns/records", "GET", "Get all DNS records"},
			{"/api/dns/records/:id", "GET", "Get a specific DNS record"},
			{"/api/dns/records", "POST", "Create a new DNS record"},
			{"/api/dns/records/:id", "PUT", "Update a DNS record"},
			{"/api/dns/records/:id", "DELETE", "Delete a DNS record"},
		},
	})
}
