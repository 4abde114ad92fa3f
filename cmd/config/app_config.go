package config

import (
	"Recipe-Box/internal/api/handlers"
	"Recipe-Box/internal/api/routes"
	"Recipe-Box/internal/middleware"
	"Recipe-Box/internal/utils"
	"Recipe-Box/pkg/recipe"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:           "Recipe Box",
		EnablePrintRoutes: true,
		Immutable:         true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logPath := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		logPath,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	rateLimit, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_MAX"))
	if err != nil || rateLimit < 1 {
		rateLimit = 10
	}
	app.Use(limiter.New(limiter.Config{
		Max:        rateLimit,
		Expiration: 1 * time.Second,
	}))

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)

	// Store
	recipeStore := recipe.NewRecipeStore(recipeRepository)
	if err := recipeStore.Load(context.Background()); err != nil {
		log.Warnf("initial recipe load failed: %v", err)
	}

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeStore, validator)

	app.Hooks().OnShutdown(func() error {
		recipeStore.Dispose()
		return file.Close()
	})

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
