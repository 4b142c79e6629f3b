package server

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/withmandala/go-log"
	"gorm.io/gorm"

	"github.com/anshulyadav32/dns-status-api/config"
	"github.com/anshulyadav32/dns-status-api/status"
)

// set up a global logger...
// see: https://stackoverflow.com/a/43827612/57626
var logger *log.Logger

func SetLogger(l *log.Logger) {
	logger = l
}

// Server wires the fiber app, the database handle, the session store and
// the upstream resolver together. Everything a handler touches comes in
// through here; there are no package-level clients.
type Server struct {
	app        *fiber.App
	db         *gorm.DB
	store      *session.Store
	cfg        config.TomlConfig
	aggregator *status.Aggregator
}

func New(cfg config.TomlConfig, db *gorm.DB, resolver status.Resolver) *Server {
	app := fiber.New(fiber.Config{
		AppName: "dns-status-api",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.FrontendURL,
		AllowCredentials: true,
	}))

	// the session cookie leaves the server encrypted with the configured
	// session secret
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: sessionKey(cfg.Server.SessionSecret),
	}))

	store := session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
	})

	s := &Server{
		app:        app,
		db:         db,
		store:      store,
		cfg:        cfg,
		aggregator: status.NewAggregator(resolver),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	api.Get("/health", s.handleHealth)
	api.Get("/db/status", s.handleDBStatus)
	api.Get("/db/stats", s.handleDBStats)
	api.Get("/docs", s.handleDocs)

	dns := api.Group("/dns")
	dns.Get("/status", s.handleDNSStatus)
	dns.Get("/records", s.handleListRecords)
	dns.Get("/records/:id", s.handleGetRecord)
	dns.Post("/records", s.handleCreateRecord)
	dns.Put("/records/:id", s.handleUpdateRecord)
	dns.Delete("/records/:id", s.handleDeleteRecord)

	repos := api.Group("/repositories")
	repos.Get("/", s.handleListRepositories)
	repos.Post("/", s.handleUpsertRepository)
	repos.Post("/sync", s.handleSyncRepositories)
	repos.Get("/:id", s.handleGetRepository)
	repos.Delete("/:id", s.handleDeleteRepository)

	personal := api.Group("/personal")
	personal.Get("/", s.handleGetPersonal)
	personal.Post("/", s.handleUpsertPersonal)
	personal.Get("/:id", s.handleGetPersonalByID)
	personal.Put("/:id", s.handleUpdatePersonal)
	personal.Delete("/:id", s.handleDeletePersonal)

	auth := api.Group("/auth")
	auth.Post("/register", s.handleRegister)
	auth.Post("/login", s.handleLogin)
	auth.Get("/github", s.handleOAuthRedirect("github"))
	auth.Get("/github/callback", s.handleOAuthCallback("github"))
	auth.Get("/google", s.handleOAuthRedirect("google"))
	auth.Get("/google/callback", s.handleOAuthCallback("google"))
	auth.Get("/me", s.handleMe)
	auth.Post("/logout", s.handleLogout)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	logger.Infof("API server is running on port %d", s.cfg.Server.Port)
	return s.app.Listen(addr)
}

// sessionKey derives the cookie encryption key from the configured session
// secret. encryptcookie wants a base64-encoded 32-byte key, the secret is
// free-form text.
func sessionKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// storageError converts a storage failure into the 500 payload every
// handler uses.
func storageError(c *fiber.Ctx, err error, message string) error {
	logger.Errorf("%s: %s", message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   err.Error(),
		"message": message,
	})
}
