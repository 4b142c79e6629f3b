package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"
	oauthgoogle "golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/anshulyadav32/dns-status-api/config"
	"github.com/anshulyadav32/dns-status-api/sqlmodel"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email and password are required",
		})
	}

	var count int64
	if err := s.db.Model(&sqlmodel.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return storageError(c, err, "Failed to register user")
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "User already exists",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return storageError(c, err, "Failed to register user")
	}

	user := sqlmodel.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Provider:     "local",
	}
	if err := s.db.Create(&user).Error; err != nil {
		return storageError(c, err, "Failed to register user")
	}

	if err := s.loginSession(c, user.ID); err != nil {
		return storageError(c, err, "Failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := LocalStrategy{}.Resolve(s.db, Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if errors.Is(err, ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}
	if err != nil {
		return storageError(c, err, "Failed to login")
	}

	if err := s.loginSession(c, user.ID); err != nil {
		return storageError(c, err, "Failed to create session")
	}

	return c.JSON(user)
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return storageError(c, err, "Failed to read session")
	}

	id, ok := sess.Get("user_id").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authenticated",
		})
	}

	var user sqlmodel.User
	err = s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authenticated",
		})
	}
	if err != nil {
		return storageError(c, err, "Failed to fetch user")
	}

	return c.JSON(user)
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return storageError(c, err, "Failed to read session")
	}
	if err := sess.Destroy(); err != nil {
		return storageError(c, err, "Failed to destroy session")
	}
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

func (s *Server) loginSession(c *fiber.Ctx, userID uint) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set("user_id", userID)
	return sess.Save()
}

func (s *Server) oauthConfig(provider string) (*oauth2.Config, bool) {
	var pc config.OAuthProviderConfig
	var endpoint oauth2.Endpoint
	var scopes []string

	switch provider {
	case "github":
		pc = s.cfg.OAuth.GitHub
		endpoint = oauthgithub.Endpoint
		scopes = []string{"user:email"}
	case "google":
		pc = s.cfg.OAuth.Google
		endpoint = oauthgoogle.Endpoint
		scopes = []string{"openid", "email", "profile"}
	default:
		return nil, false
	}

	if pc.ClientID == "" || pc.ClientID == config.PlaceholderClientID {
		return nil, false
	}

	return &oauth2.Config{
		ClientID:     pc.ClientID,
		ClientSecret: pc.ClientSecret,
		RedirectURL:  pc.CallbackURL,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}, true
}

func (s *Server) handleOAuthRedirect(provider string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		conf, ok := s.oauthConfig(provider)
		if !ok {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message": fmt.Sprintf("%s login is not configured", provider),
			})
		}

		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return storageError(c, err, "Failed to start OAuth flow")
		}
		state := hex.EncodeToString(buf)

		sess, err := s.store.Get(c)
		if err != nil {
			return storageError(c, err, "Failed to start OAuth flow")
		}
		sess.Set("oauth_state", state)
		if err := sess.Save(); err != nil {
			return storageError(c, err, "Failed to start OAuth flow")
		}

		return c.Redirect(conf.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
	}
}

func (s *Server) handleOAuthCallback(provider string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		conf, ok := s.oauthConfig(provider)
		if !ok {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message": fmt.Sprintf("%s login is not configured", provider),
			})
		}

		sess, err := s.store.Get(c)
		if err != nil {
			return storageError(c, err, "Failed to read session")
		}
		expected, _ := sess.Get("oauth_state").(string)
		sess.Delete("oauth_state")
		if expected == "" || c.Query("state") != expected {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid OAuth state",
			})
		}

		token, err := conf.Exchange(c.Context(), c.Query("code"))
		if err != nil {
			logger.Errorf("%s token exchange failed: %s", provider, err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "OAuth exchange failed",
			})
		}

		creds, err := fetchProfile(c.Context(), provider, conf, token)
		if err != nil {
			logger.Errorf("%s profile fetch failed: %s", provider, err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message": "Failed to fetch OAuth profile",
			})
		}

		user, err := OAuthStrategy{Provider: provider}.Resolve(s.db, creds)
		if err != nil {
			return storageError(c, err, "Failed to resolve OAuth user")
		}

		sess.Set("user_id", user.ID)
		if err := sess.Save(); err != nil {
			return storageError(c, err, "Failed to create session")
		}

		return c.Redirect(s.cfg.Server.FrontendURL, fiber.StatusTemporaryRedirect)
	}
}

type githubProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func fetchProfile(ctx context.Context, provider string, conf *oauth2.Config, token *oauth2.Token) (Credentials, error) {
	client := conf.Client(ctx, token)

	switch provider {
	case "github":
		var p githubProfile
		if err := getJSON(client, "https://api.github.com/user", &p); err != nil {
			return Credentials{}, err
		}
		name := p.Name
		if name == "" {
			name = p.Login
		}
		email := p.Email
		if email == "" {
			email = fmt.Sprintf("%s@users.noreply.github.com", p.Login)
		}
		return Credentials{
			Email:      email,
			Name:       name,
			Provider:   provider,
			ProviderID: strconv.FormatInt(p.ID, 10),
			AvatarURL:  p.AvatarURL,
		}, nil
	case "google":
		var p googleProfile
		if err := getJSON(client, "https://www.googleapis.com/oauth2/v2/userinfo", &p); err != nil {
			return Credentials{}, err
		}
		return Credentials{
			Email:      p.Email,
			Name:       p.Name,
			Provider:   provider,
			ProviderID: p.ID,
			AvatarURL:  p.Picture,
		}, nil
	}

	return Credentials{}, fmt.Errorf("unknown provider: %s", provider)
}

func getJSON(client *http.Client, url string, dest interface{}) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", url, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
