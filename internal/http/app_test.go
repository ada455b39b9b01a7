package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"automall/internal/assistant"
	"automall/internal/config"
	"automall/internal/domain"
	"automall/internal/http/handlers"
	"automall/internal/repos"
	"automall/internal/seed"
	"automall/internal/store"
)

const testAdminCode = "test-code"

// newApp wires the routes the way cmd/automall does, on an in-memory
// database with two known products.
func newApp(t *testing.T) (*fiber.App, *store.CatalogStore) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	snaps := repos.NewSnapshotRepo(db)
	products := []domain.Product{
		{ID: "mot-a", Name: "Motor A", Brand: "Toyota", Price: 1_000_000, Condition: domain.ConditionUsed, Stock: 3, Category: "motores"},
		{ID: "mot-b", Name: "Motor B", Brand: "Nissan", Price: 2_000_000, Condition: domain.ConditionUsed, Stock: 1, Category: "motores"},
	}
	st := store.NewCatalogStore(snaps, products, seed.Branches())

	hash, _ := bcrypt.GenerateFromPassword([]byte(testAdminCode), bcrypt.MinCost)
	cfg := config.Config{AdminCodeHash: string(hash)}
	advisor := assistant.NewService(assistant.NewClient("", "http://127.0.0.1:0"))

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	deps := handlers.NewDeps(st, cfg, advisor, seed.Categories())
	app.Get("/", deps.Storefront.Home)
	app.Get("/product/:id", deps.Product.Detail)
	app.Get("/branches", deps.Branches.List)
	app.Get("/cart", deps.Cart.View)
	app.Post("/cart", deps.Cart.Add)
	app.Post("/cart/remove", deps.Cart.Remove)
	app.Get("/favorites", deps.Favorites.List)
	app.Post("/favorites/toggle", deps.Favorites.Toggle)
	app.Post("/admin/unlock", deps.Admin.Unlock)
	app.Post("/admin/lock", deps.Admin.Lock)
	admin := app.Group("/admin", handlers.RequireEditMode(deps.EditMode))
	admin.Post("/products/new", deps.Admin.CreateProduct)
	admin.Post("/products/reorder", deps.Admin.Reorder)
	admin.Post("/products/:id", deps.Admin.UpdateProduct)
	admin.Post("/products/:id/delete", deps.Admin.DeleteProduct)
	admin.Post("/branches/:id", deps.Branches.Update)
	admin.Get("/export", deps.Admin.Export)

	return app, st
}

// session carries the cookies a browser would across requests.
type session struct {
	app     *fiber.App
	t       *testing.T
	cookies []*http.Cookie
}

func newSession(t *testing.T, app *fiber.App) *session {
	return &session{app: app, t: t}
}

func (s *session) do(req *http.Request) *http.Response {
	s.t.Helper()
	for _, c := range s.cookies {
		req.AddCookie(c)
	}
	resp, err := s.app.Test(req, int((5 * time.Second).Milliseconds()))
	if err != nil {
		s.t.Fatal(err)
	}
	for _, c := range resp.Cookies() {
		s.setCookie(c)
	}
	return resp
}

func (s *session) setCookie(c *http.Cookie) {
	for i, old := range s.cookies {
		if old.Name == c.Name {
			s.cookies[i] = c
			return
		}
	}
	s.cookies = append(s.cookies, c)
}

func (s *session) get(path string) *http.Response {
	return s.do(httptest.NewRequest("GET", path, nil))
}

func (s *session) cookie(name string) string {
	for _, c := range s.cookies {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// postForm posts url-encoded fields, injecting the CSRF token the
// session picked up on its last GET.
func (s *session) postForm(path string, fields map[string]string) *http.Response {
	s.t.Helper()
	form := "csrf=" + s.cookie("csrf_")
	for k, v := range fields {
		form += "&" + k + "=" + strings.ReplaceAll(v, " ", "+")
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func (s *session) unlock() {
	s.t.Helper()
	s.get("/") // pick up csrf + sid cookies
	resp := s.postForm("/admin/unlock", map[string]string{"code": testAdminCode})
	if resp.StatusCode != http.StatusFound {
		s.t.Fatalf("unlock failed with status %d", resp.StatusCode)
	}
}
