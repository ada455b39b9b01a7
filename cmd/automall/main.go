package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"automall/internal/assistant"
	"automall/internal/config"
	"automall/internal/http/handlers"
	applog "automall/internal/log"
	"automall/internal/repos"
	"automall/internal/seed"
	"automall/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	snaps := repos.NewSnapshotRepo(db)
	st := store.NewCatalogStore(snaps, seed.Products(), seed.Branches())

	advisor := assistant.NewService(assistant.NewClient(cfg.GeminiAPIKey, cfg.GeminiURL))

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo salió mal. Intenta de nuevo.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Algo salió mal. Intenta de nuevo.")
			}
			return nil
		},
	})
	// Global body size guard; product images can arrive as data URIs.
	app.Server().MaxRequestBodySize = 4 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/") || strings.HasPrefix(c.Path(), "/img/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Verificación de seguridad fallida. Actualiza la página e intenta de nuevo."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")
	app.Static("/img", "./web/static/img")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(st, cfg, advisor, seed.Categories())

	// Public pages
	app.Get("/", deps.Storefront.Home)
	app.Get("/product/:id", deps.Product.Detail)
	app.Get("/branches", deps.Branches.List)
	app.Get("/contacto", func(c *fiber.Ctx) error {
		return c.Render("contact", fiber.Map{"StoreName": seed.StoreName})
	})

	// Cart
	app.Get("/cart", deps.Cart.View)
	app.Post("/cart", deps.Cart.Add)
	app.Post("/cart/remove", deps.Cart.Remove)

	// Favorites
	app.Get("/favorites", deps.Favorites.List)
	app.Post("/favorites/toggle", deps.Favorites.Toggle)

	// Assistant (throttled: every message is an upstream API call)
	app.Get("/assistant", deps.Assistant.View)
	app.Post("/assistant/message", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.assistant.hit", nil)
			return c.Redirect("/assistant")
		},
	}), deps.Assistant.Message)
	app.Post("/assistant/reset", deps.Assistant.Reset)

	// Admin: unlock is throttled; everything mutating sits behind the
	// edit-mode gate.
	app.Post("/admin/unlock", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.unlock.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).SendString("Demasiados intentos. Intenta más tarde.")
		},
	}), deps.Admin.Unlock)
	app.Post("/admin/lock", deps.Admin.Lock)

	admin := app.Group("/admin", handlers.RequireEditMode(deps.EditMode))
	admin.Post("/products/new", deps.Admin.CreateProduct)
	admin.Post("/products/reorder", deps.Admin.Reorder)
	admin.Post("/products/:id", deps.Admin.UpdateProduct)
	admin.Post("/products/:id/delete", deps.Admin.DeleteProduct)
	admin.Post("/branches/:id", deps.Branches.Update)
	admin.Get("/export", deps.Admin.Export)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Página no encontrada"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
