package app

import (
	"fmt"
	"os"

	"github.com/obarcalifa/studentdash-api/api"
	"github.com/obarcalifa/studentdash-api/config"
	"github.com/obarcalifa/studentdash-api/database"
	"github.com/obarcalifa/studentdash-api/router"
	"github.com/obarcalifa/studentdash-api/services/cron"
	"github.com/obarcalifa/studentdash-api/utils/cache"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	gormStore, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := gormStore.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	db, ok := gormStore.GetDB().(*gorm.DB)
	if !ok {
		return fmt.Errorf("failed to get GORM DB instance")
	}

	// The activity store defaults to GORM; ACTIVITY_STORE=pq swaps in the
	// raw lib/pq gateway against the same database.
	var store database.Storage = gormStore
	if os.Getenv("ACTIVITY_STORE") == "pq" {
		pqStore, err := database.Start()
		if err != nil {
			print("Failed to connect the raw PostgreSQL activity store\n")
			return err
		}
		if err := pqStore.Init(); err != nil {
			print("Failed to provision the activity tables\n")
			return err
		}
		store = pqStore
		defer pqStore.Close()
	}

	// Redis is optional: without it dashboards are composed fresh on every
	// request and the cache-sweep job idles.
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			print("Warning: Failed to connect to Redis. Dashboard caching disabled.\n")
			redisCache = nil
		}
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(db, redisCache)
		if err := cronManager.Start(); err != nil {
			print("Warning: Failed to start cron jobs\n")
			print("Error: ", err.Error(), "\n")
			// Don't fail the app, just log the warning
			cronManager = nil
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
		gormStore.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes (security middleware is attached inside)
	router.SetupRoutes(app, store, db, getEnv, redisCache)

	// Get the PORT & Start the Server
	return server.Run()
}
