package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/xezo360hye/DIP392-1337/internal/config"
	"github.com/xezo360hye/DIP392-1337/internal/handler"
	"github.com/xezo360hye/DIP392-1337/internal/middleware"
	"github.com/xezo360hye/DIP392-1337/internal/response"
	"github.com/xezo360hye/DIP392-1337/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Student    *handler.StudentHandler
	Course     *handler.CourseHandler
	Session    *handler.SessionHandler
	Attendance *handler.AttendanceHandler
	Dashboard  *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Compress the full-collection list responses.
	router.Use(middleware.Compress())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the login route (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Auth Group ────────────────────────────────────────────────────
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)

		// Authenticated profile/session routes
		auth.POST("/logout", middleware.RequireAdminJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireAdminJWT(authService), handlers.Auth.Me)
	}

	// ─── Resource API (JWT-gated) ──────────────────────────────────────
	api := router.Group("/api")
	api.Use(middleware.RequireAdminJWT(authService))
	{
		// Student management
		students := api.Group("/students")
		{
			students.GET("", handlers.Student.ListStudents)
			students.POST("", handlers.Student.CreateStudent)
			students.GET("/:id", handlers.Student.GetStudent)
			students.PUT("/:id", handlers.Student.UpdateStudent)
			students.DELETE("/:id", handlers.Student.DeleteStudent)
			students.GET("/:id/attendance", handlers.Student.GetStudentAttendance)
		}

		// Course management
		courses := api.Group("/courses")
		{
			courses.GET("", handlers.Course.ListCourses)
			courses.POST("", handlers.Course.CreateCourse)
			courses.GET("/:id", handlers.Course.GetCourse)
			courses.PUT("/:id", handlers.Course.UpdateCourse)
			courses.DELETE("/:id", handlers.Course.DeleteCourse)
		}

		// Session management + per-session sheet
		sessions := api.Group("/sessions")
		{
			sessions.GET("", handlers.Session.ListSessions)
			sessions.GET("/months", handlers.Session.ListMonths)
			sessions.POST("", handlers.Session.CreateSession)
			sessions.GET("/:id", handlers.Session.GetSession)
			sessions.PUT("/:id", handlers.Session.UpdateSession)
			sessions.DELETE("/:id", handlers.Session.DeleteSession)
			sessions.GET("/:id/attendance", handlers.Session.GetSheet)
			sessions.POST("/:id/attendance", handlers.Session.SaveSheet)
		}

		// Attendance records
		attendance := api.Group("/attendance")
		{
			attendance.GET("", handlers.Attendance.ListAttendance)
			attendance.POST("", handlers.Attendance.UpsertAttendance)
			attendance.GET("/:id", handlers.Attendance.GetAttendance)
			attendance.PUT("/:id", handlers.Attendance.UpdateAttendance)
			attendance.DELETE("/:id", handlers.Attendance.DeleteAttendance)
		}

		// Dashboard
		api.GET("/dashboard", handlers.Dashboard.GetDashboardData)
	}

	return router
}
