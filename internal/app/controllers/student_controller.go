package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rjoshi/counselport/internal/app/models"
	"github.com/rjoshi/counselport/internal/app/services"
	"github.com/rjoshi/counselport/internal/flash"
	"github.com/rjoshi/counselport/internal/middleware"
	"github.com/rjoshi/counselport/internal/session"
)

// StudentController handles the student-facing pages and actions.
type StudentController struct {
	students *services.StudentService
	sessions *session.Manager
	offers   OfferLocator
	logger   zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(students *services.StudentService, sessions *session.Manager, offers OfferLocator, logger zerolog.Logger) *StudentController {
	return &StudentController{
		students: students,
		sessions: sessions,
		offers:   offers,
		logger:   logger,
	}
}

// ShowSignUp renders the student signup form.
func (sc *StudentController) ShowSignUp(c *gin.Context) {
	c.HTML(http.StatusOK, "student_signup.html", gin.H{"Flash": flash.Take(c)})
}

// SignUp creates a student account and redirects to login.
func (sc *StudentController) SignUp(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	phone := c.PostForm("phone")

	if err := sc.students.SignUp(c.Request.Context(), name, email, password, phone); err != nil {
		sc.logger.Warn().Err(err).Str("email", email).Msg("Student signup failed")
		flashAndRedirect(c, err, "/student/signup")
		return
	}

	flash.Success(c, "Signup successful. Please login.")
	c.Redirect(http.StatusFound, "/student/login")
}

// ShowLogIn renders the student login form.
func (sc *StudentController) ShowLogIn(c *gin.Context) {
	c.HTML(http.StatusOK, "student_login.html", gin.H{"Flash": flash.Take(c)})
}

// LogIn establishes a student session.
func (sc *StudentController) LogIn(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	student, err := sc.students.LogIn(c.Request.Context(), email, password)
	if err != nil {
		flashAndRedirect(c, err, "/student/login")
		return
	}

	sc.sessions.Establish(c, session.Identity{
		Role:  session.RoleStudent,
		ID:    student.ID,
		Name:  student.Name,
		Email: student.Email,
	})
	sc.logger.Info().Int64("studentID", student.ID).Msg("Student logged in")
	c.Redirect(http.StatusFound, "/student/dashboard")
}

// LogOut destroys the student session regardless of its prior state.
func (sc *StudentController) LogOut(c *gin.Context) {
	sc.sessions.Destroy(c, session.RoleStudent)
	c.Redirect(http.StatusFound, "/")
}

// Dashboard re-fetches the student row and renders it.
func (sc *StudentController) Dashboard(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	student, err := sc.students.Dashboard(c.Request.Context(), identity.ID)
	if err != nil {
		sc.logger.Error().Err(err).Int64("studentID", identity.ID).Msg("Failed to load student dashboard")
		flashAndRedirect(c, err, "/student/login")
		return
	}

	c.HTML(http.StatusOK, "student_dashboard.html", gin.H{
		"Flash":   flash.Take(c),
		"Student": student,
	})
}

// SubmitDetails overwrites the student's profile, marks and choices.
func (sc *StudentController) SubmitDetails(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	details := models.StudentDetails{
		Name:  c.PostForm("name"),
		Phone: c.PostForm("phone"),
		HighSchoolMarks: models.HighSchoolMarks{
			Math:    formMark(c, "hs_math"),
			Science: formMark(c, "hs_science"),
			English: formMark(c, "hs_english"),
			Hindi:   formMark(c, "hs_hindi"),
		},
		PlusTwoMarks: models.PlusTwoMarks{
			Physics:   formMark(c, "plus_physics"),
			Chemistry: formMark(c, "plus_chem"),
			Math:      formMark(c, "plus_math"),
		},
		BranchChoice1: c.PostForm("choice1"),
		BranchChoice2: c.PostForm("choice2"),
	}

	if err := sc.students.SubmitDetails(c.Request.Context(), identity.ID, details); err != nil {
		sc.logger.Warn().Err(err).Int64("studentID", identity.ID).Msg("Failed to save student details")
		flashAndRedirect(c, err, "/student/dashboard")
		return
	}

	flash.Success(c, "Details saved.")
	c.Redirect(http.StatusFound, "/student/dashboard")
}

// UploadReceipt stores a payment receipt and resets the verification
// flag. Re-uploading always requires a fresh admin verification.
func (sc *StudentController) UploadReceipt(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		flash.Error(c, "No file uploaded")
		c.Redirect(http.StatusFound, "/student/dashboard")
		return
	}

	if err := sc.students.UploadReceipt(c.Request.Context(), identity.ID, fileHeader); err != nil {
		sc.logger.Error().Err(err).Int64("studentID", identity.ID).Msg("Failed to store payment receipt")
		flashAndRedirect(c, err, "/student/dashboard")
		return
	}

	flash.Success(c, "Receipt uploaded. Awaiting admin verification.")
	c.Redirect(http.StatusFound, "/student/dashboard")
}

// AcceptAllocation records acceptance of the allocated branch.
func (sc *StudentController) AcceptAllocation(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	if err := sc.students.AcceptAllocation(c.Request.Context(), identity.ID); err != nil {
		sc.logger.Error().Err(err).Int64("studentID", identity.ID).Msg("Failed to accept allocation")
		flashAndRedirect(c, err, "/student/dashboard")
		return
	}

	flash.Success(c, "You accepted the allocated branch. Please upload payment receipt.")
	c.Redirect(http.StatusFound, "/student/dashboard")
}

// ViewOffer serves the generated offer letter, or reports that it is not
// ready yet.
func (sc *StudentController) ViewOffer(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	if !sc.offers.Exists(identity.ID) {
		flash.Error(c, "Offer not yet generated.")
		c.Redirect(http.StatusFound, "/student/dashboard")
		return
	}
	c.File(sc.offers.Path(identity.ID))
}

// formMark parses a numeric form value, defaulting blank or malformed
// input to zero.
func formMark(c *gin.Context, field string) float64 {
	value, err := strconv.ParseFloat(c.PostForm(field), 64)
	if err != nil {
		return 0
	}
	return value
}
