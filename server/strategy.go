package server

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/anshulyadav32/dns-status-api/sqlmodel"
)

// ErrInvalidCredentials is returned for any local login failure. Whether
// the email was unknown or the password wrong is deliberately not
// distinguishable.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// Credentials carries the inputs a strategy resolves against. Local logins
// fill Email and Password; OAuth callbacks fill the profile fields.
type Credentials struct {
	Email      string
	Password   string
	Provider   string
	ProviderID string
	Name       string
	AvatarURL  string
}

// Strategy resolves credentials to a user row or a failure.
type Strategy interface {
	Resolve(db *gorm.DB, creds Credentials) (*sqlmodel.User, error)
}

// LocalStrategy compares a submitted password against the stored hash of
// the matching local user.
type LocalStrategy struct{}

func (LocalStrategy) Resolve(db *gorm.DB, creds Credentials) (*sqlmodel.User, error) {
	var user sqlmodel.User
	err := db.First(&user, "email = ? AND provider = ?", creds.Email, "local").Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// OAuthStrategy resolves a verified OAuth profile: first by provider and
// provider id, then by email to link an existing account, else it creates
// a new user row.
type OAuthStrategy struct {
	Provider string
}

func (o OAuthStrategy) Resolve(db *gorm.DB, creds Credentials) (*sqlmodel.User, error) {
	var user sqlmodel.User
	err := db.First(&user, "provider = ? AND provider_id = ?", o.Provider, creds.ProviderID).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// same email from another provider links the existing account
	err = db.First(&user, "email = ?", creds.Email).Error
	if err == nil {
		user.Provider = o.Provider
		user.ProviderID = creds.ProviderID
		user.AvatarUrl = creds.AvatarURL
		if err := db.Save(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = sqlmodel.User{
		Email:      creds.Email,
		Name:       creds.Name,
		Provider:   o.Provider,
		ProviderID: creds.ProviderID,
		AvatarUrl:  creds.AvatarURL,
		IsVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
