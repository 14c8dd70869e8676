package main

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"college-admin/app/backend"
	"college-admin/app/config"
	"college-admin/app/enrollment"
	"college-admin/app/routes/auth"
	"college-admin/app/routes/batches"
	"college-admin/app/routes/courses"
	"college-admin/app/routes/dashboard"
	"college-admin/app/routes/examforms"
	"college-admin/app/routes/fees"
	"college-admin/app/routes/promotion"
	"college-admin/app/routes/students"
	"college-admin/app/services"
	"college-admin/app/state"
)

// customErrorHandler keeps API errors as JSON and renders the error page
// for everything else.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - College Admin",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	cfg := config.Load()

	client := backend.New(cfg.BackendURL)
	store := state.NewStore()
	manager := enrollment.NewManager(client)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
		AppName:      "College Admin",
	})

	app.Use(logger.New())
	app.Use(cors.New())

	authHandler := auth.SetupAuthRoutes(app, cfg)
	authMW := authHandler.Middleware

	dashboard.SetupDashboardRoutes(app, authMW, client, store)
	courses.SetupCoursesRoutes(app, authMW, client, store)
	batches.SetupBatchesRoutes(app, authMW, client, store)
	students.SetupStudentsRoutes(app, authMW, client, store, manager)
	fees.SetupFeesRoutes(app, authMW, client, manager)
	promotion.SetupPromotionRoutes(app, authMW, client, store, manager)
	examforms.SetupExamFormsRoutes(app, authMW, client)

	services.StartRefresher(store, client, cfg.RefreshInterval)

	log.Printf("College admin console listening on :%s (backend %s)", cfg.Port, cfg.BackendURL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
