package main

import (
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/arnavsharma2711/pianifica-sub000/internal/config"
	"github.com/arnavsharma2711/pianifica-sub000/internal/database"
	"github.com/arnavsharma2711/pianifica-sub000/internal/handlers"
	"github.com/arnavsharma2711/pianifica-sub000/internal/logging"
	"github.com/arnavsharma2711/pianifica-sub000/internal/middleware"
	"github.com/arnavsharma2711/pianifica-sub000/internal/services"
)

func main() {
	cfg := config.MustLoad()

	logging.Init(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	log := logging.Logger

	gin.SetMode(cfg.Server.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	r := gin.Default()

	// Session middleware backed by Redis
	redisAddr := cfg.Redis.Host + ":" + cfg.Redis.Port
	store, err := redisStore.NewStore(
		10,
		"tcp",
		redisAddr,
		"",
		"",
		[]byte(cfg.Session.Secret),
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.Server.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions("pianifica_session", store))

	mailer := services.NewMailerService(cfg.Mail.Endpoint, cfg.Mail.From)

	authHandler := handlers.NewAuthHandler(mailer)
	orgHandler := handlers.NewOrganizationHandler()
	userHandler := handlers.NewUserHandler()
	teamHandler := handlers.NewTeamHandler()
	projectHandler := handlers.NewProjectHandler()
	taskHandler := handlers.NewTaskHandler()
	tagHandler := handlers.NewTagHandler()
	bookmarkHandler := handlers.NewBookmarkHandler()
	notificationHandler := handlers.NewNotificationHandler()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Pianifica API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public except /me)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Organization routes (protected)
		orgs := api.Group("/organizations")
		orgs.Use(middleware.RequireAuth())
		{
			orgs.GET("", orgHandler.ListOrganizations)
			orgs.POST("", orgHandler.CreateOrganization)
			orgs.GET("/current", orgHandler.GetOrganization)
			orgs.PUT("/current", orgHandler.UpdateOrganization)
			orgs.DELETE("/:id", orgHandler.DeleteOrganization)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth())
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Team routes (protected)
		teams := api.Group("/teams")
		teams.Use(middleware.RequireAuth())
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PATCH("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.DELETE("/:id/members/:user_id", teamHandler.RemoveMember)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateStatus)
			tasks.PATCH("/:id/priority", taskHandler.UpdatePriority)
			tasks.PATCH("/:id/assignee", taskHandler.UpdateAssignee)
			tasks.PUT("/:id/tags", taskHandler.ReconcileTags)
			tasks.GET("/:id/comments", taskHandler.ListComments)
			tasks.POST("/:id/comments", taskHandler.AddComment)
		}

		// Comment routes (protected)
		comments := api.Group("/comments")
		comments.Use(middleware.RequireAuth())
		{
			comments.PATCH("/:comment_id", taskHandler.UpdateComment)
			comments.DELETE("/:comment_id", taskHandler.DeleteComment)
		}

		// Tag routes (protected)
		tags := api.Group("/tags")
		tags.Use(middleware.RequireAuth())
		{
			tags.GET("", tagHandler.ListTags)
			tags.POST("", tagHandler.CreateTag)
			tags.DELETE("/:id", tagHandler.DeleteTag)
		}

		// Bookmark routes (protected)
		bookmarks := api.Group("/bookmarks")
		bookmarks.Use(middleware.RequireAuth())
		{
			bookmarks.GET("", bookmarkHandler.ListBookmarks)
			bookmarks.POST("", bookmarkHandler.CreateBookmark)
			bookmarks.DELETE("", bookmarkHandler.DeleteBookmark)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(middleware.RequireAuth())
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.PATCH("/seen", notificationHandler.MarkAllSeen)
			notifications.PATCH("/:id/seen", notificationHandler.MarkSeen)
		}
	}

	addr := cfg.Server.Address + ":" + cfg.Server.Port
	log.Infof("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
