// Package routes wires the HTTP surface to the controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rjoshi/counselport/internal/app/controllers"
	"github.com/rjoshi/counselport/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	homeController *controllers.HomeController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	sessions *middleware.SessionMiddleware,
) {
	router.GET("/", homeController.Index)

	// --- Student routes ---
	student := router.Group("/student")
	{
		student.GET("/signup", studentController.ShowSignUp)
		student.POST("/signup", studentController.SignUp)
		student.GET("/login", studentController.ShowLogIn)
		student.POST("/login", studentController.LogIn)
		// Logout destroys the session regardless of prior state, so it
		// stays outside the guard
		student.GET("/logout", studentController.LogOut)

		studentProtected := student.Group("")
		studentProtected.Use(sessions.RequireStudent())
		{
			studentProtected.GET("/dashboard", studentController.Dashboard)
			studentProtected.POST("/details", studentController.SubmitDetails)
			studentProtected.POST("/upload_receipt", studentController.UploadReceipt)
			studentProtected.POST("/accept_allocation", studentController.AcceptAllocation)
			studentProtected.GET("/offer", studentController.ViewOffer)
		}
	}

	// --- Admin routes ---
	admin := router.Group("/admin")
	{
		admin.GET("/signup", adminController.ShowSignUp)
		admin.POST("/signup", adminController.SignUp)
		admin.GET("/login", adminController.ShowLogIn)
		admin.POST("/login", adminController.LogIn)
		admin.GET("/logout", adminController.LogOut)

		adminProtected := admin.Group("")
		adminProtected.Use(sessions.RequireAdmin())
		{
			adminProtected.GET("/dashboard", adminController.Dashboard)
			adminProtected.POST("/allocate", adminController.Allocate)
			adminProtected.POST("/verify_payment", adminController.VerifyPayment)
		}
	}

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
