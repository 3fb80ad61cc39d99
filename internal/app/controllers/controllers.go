// Package controllers handles HTTP request handling. Every handler ends
// in either a rendered view or a redirect carrying a one-shot flash
// message; errors never escape the handler boundary.
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rjoshi/counselport/internal/flash"
	"github.com/rjoshi/counselport/internal/pkg/apperrors"
)

// OfferLocator resolves stored offer documents for serving.
type OfferLocator interface {
	Path(studentID int64) string
	Exists(studentID int64) bool
}

// flashAndRedirect converts a service error into a user-visible flash
// message and sends the browser back to target.
func flashAndRedirect(c *gin.Context, err error, target string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidName):
		flash.Error(c, "Invalid name. Use letters, spaces and basic punctuation only.")
	case errors.Is(err, apperrors.ErrInvalidEmail):
		flash.Error(c, "Invalid email address.")
	case errors.Is(err, apperrors.ErrEmptyField):
		flash.Error(c, "A required field is missing.")
	case errors.Is(err, apperrors.ErrEmailExists), errors.Is(err, apperrors.ErrAccountCreation):
		flash.Error(c, "Could not create account. It may already exist.")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		flash.Error(c, "Invalid credentials")
	case errors.Is(err, apperrors.ErrNoFile):
		flash.Error(c, "No file uploaded")
	default:
		flash.Error(c, "Something went wrong. Please try again.")
	}
	c.Redirect(http.StatusFound, target)
}

// HomeController renders the landing page.
type HomeController struct{}

// NewHomeController creates a new HomeController
func NewHomeController() *HomeController {
	return &HomeController{}
}

// Index renders the home page.
func (h *HomeController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flash": flash.Take(c),
	})
}
