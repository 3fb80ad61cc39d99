package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rjoshi/counselport/internal/app/services"
	"github.com/rjoshi/counselport/internal/flash"
	"github.com/rjoshi/counselport/internal/middleware"
	"github.com/rjoshi/counselport/internal/session"
)

// AdminController handles the admin-facing pages and actions.
type AdminController struct {
	admins   *services.AdminService
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(admins *services.AdminService, sessions *session.Manager, logger zerolog.Logger) *AdminController {
	return &AdminController{
		admins:   admins,
		sessions: sessions,
		logger:   logger,
	}
}

// ShowSignUp renders the admin signup form.
func (ac *AdminController) ShowSignUp(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_signup.html", gin.H{"Flash": flash.Take(c)})
}

// SignUp creates an admin account and redirects to login.
func (ac *AdminController) SignUp(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if err := ac.admins.SignUp(c.Request.Context(), name, email, password); err != nil {
		ac.logger.Warn().Err(err).Str("email", email).Msg("Admin signup failed")
		flashAndRedirect(c, err, "/admin/signup")
		return
	}

	flash.Success(c, "Admin created. Login.")
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowLogIn renders the admin login form.
func (ac *AdminController) ShowLogIn(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{"Flash": flash.Take(c)})
}

// LogIn establishes an admin session.
func (ac *AdminController) LogIn(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	admin, err := ac.admins.LogIn(c.Request.Context(), email, password)
	if err != nil {
		flashAndRedirect(c, err, "/admin/login")
		return
	}

	ac.sessions.Establish(c, session.Identity{
		Role:  session.RoleAdmin,
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
	})
	ac.logger.Info().Int64("adminID", admin.ID).Msg("Admin logged in")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// LogOut destroys the admin session regardless of its prior state.
func (ac *AdminController) LogOut(c *gin.Context) {
	ac.sessions.Destroy(c, session.RoleAdmin)
	c.Redirect(http.StatusFound, "/")
}

// Dashboard renders all students ranked by plus-two total.
func (ac *AdminController) Dashboard(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	ranked, err := ac.admins.ListRanked(c.Request.Context())
	if err != nil {
		ac.logger.Error().Err(err).Msg("Failed to load ranked student list")
		flashAndRedirect(c, err, "/")
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Flash":    flash.Take(c),
		"Admin":    identity,
		"Students": ranked,
	})
}

// Allocate assigns a branch to a student.
func (ac *AdminController) Allocate(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	studentID, err := strconv.ParseInt(c.PostForm("student_id"), 10, 64)
	if err != nil {
		flash.Error(c, "Invalid student id.")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	branch := c.PostForm("branch")

	if err := ac.admins.Allocate(c.Request.Context(), studentID, branch, identity.ID); err != nil {
		ac.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to allocate branch")
		flashAndRedirect(c, err, "/admin/dashboard")
		return
	}

	flash.Success(c, "Branch allocated.")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// VerifyPayment verifies a student's payment and generates the offer
// letter.
func (ac *AdminController) VerifyPayment(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.PostForm("student_id"), 10, 64)
	if err != nil {
		flash.Error(c, "Invalid student id.")
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	if err := ac.admins.VerifyPayment(c.Request.Context(), studentID); err != nil {
		ac.logger.Error().Err(err).Int64("studentID", studentID).Msg("Failed to verify payment")
		flashAndRedirect(c, err, "/admin/dashboard")
		return
	}

	flash.Success(c, "Payment verified and offer generated.")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}
