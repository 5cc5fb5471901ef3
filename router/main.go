package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/obarcalifa/studentdash-api/config"
	"github.com/obarcalifa/studentdash-api/database"
	"github.com/obarcalifa/studentdash-api/handlers"
	activity_handlers "github.com/obarcalifa/studentdash-api/handlers/activity"
	dashboard_handlers "github.com/obarcalifa/studentdash-api/handlers/dashboard"
	zoom_handlers "github.com/obarcalifa/studentdash-api/handlers/zoom"
	"github.com/obarcalifa/studentdash-api/services"
	"github.com/obarcalifa/studentdash-api/services/files"
	"github.com/obarcalifa/studentdash-api/utils/auth"
	"github.com/obarcalifa/studentdash-api/utils/cache"
	"github.com/obarcalifa/studentdash-api/utils/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every service and handler and mounts the route tree.
// store handles the personal activity CRUD; db serves the read-side
// aggregation queries. redisCache may be nil; dashboards are then composed
// fresh on every request.
func SetupRoutes(app *fiber.App, store database.Storage, db *gorm.DB, getEnv *config.EnviornmentVariable, redisCache *cache.RedisCache) {
	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "studentdash-api"
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: 24 * time.Hour,
		Issuer: jwtIssuer,
	})

	// The file store is optional: without credentials tasks simply carry
	// no download links.
	var filesClient *files.SpacesClient
	if getEnv.SPACES_ACCESS_KEY != "" && getEnv.SPACES_SECRET_KEY != "" {
		var err error
		filesClient, err = files.NewSpacesClient(files.SpacesConfig{
			AccessKey: getEnv.SPACES_ACCESS_KEY,
			SecretKey: getEnv.SPACES_SECRET_KEY,
			Bucket:    getEnv.SPACES_BUCKET,
			Region:    getEnv.SPACES_REGION,
			Endpoint:  getEnv.SPACES_ENDPOINT,
		})
		if err != nil {
			log.Printf("Warning: Failed to create file store client: %v. Download links disabled.", err)
			filesClient = nil
		}
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Composer services
	gradeService := services.NewGradeService(db)
	taskService := services.NewTaskService(db, filesClient, getEnv.LMS_BASE_URL)
	scheduleService := services.NewScheduleService(db)
	examService := services.NewExamService(db)
	zoomService := services.NewZoomService(db)
	courseService := services.NewCourseService(db, taskService, scheduleService, examService, zoomService,
		getEnv.LMS_BASE_URL, getEnv.SemesterStart(), getEnv.SEMESTER_WEEKS)
	activityService := services.NewActivityService(store)
	dashboardService := services.NewDashboardService(gradeService, courseService, activityService, redisCache)

	// Handlers
	healthHandler := handlers.NewHealthHandler(store)
	dashboardHandler := dashboard_handlers.NewHandler(dashboardService)
	activityHandler := activity_handlers.NewHandler(activityService, dashboardService)
	zoomHandler := zoom_handlers.NewHandler(zoomService, dashboardService)

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigin:     getEnv.ALLOWED_ORIGIN,
		RateLimitRequests: 100,
		RateLimitWindow:   1 * time.Minute,
	})

	// Health check endpoint (public)
	app.Get("/ping", healthHandler.HandleCheckHealth)

	// API v1 group (all protected)
	api := app.Group("/api/v1", authMiddleware.Required())

	api.Get("/dashboard", dashboardHandler.HandleGetDashboard)

	api.Post("/activities", activityHandler.HandleCreateActivity)
	api.Delete("/activities/:id", activityHandler.HandleDeleteActivity)

	api.Post("/zoom-records", zoomHandler.HandleCreateRecord)
	api.Patch("/zoom-records/:id", zoomHandler.HandleUpdateStatus)
}
