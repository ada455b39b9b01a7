package handlers

import (
	"github.com/gofiber/fiber/v2"

	cartpkg "automall/internal/cart"
	applog "automall/internal/log"
	"automall/internal/store"
	"automall/internal/validate"
)

type ProductHandler struct {
	Store *store.CatalogStore
	Edit  *EditMode
}

// GET /product/:id
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	sid := sessionID(c)
	p, ok := h.Store.Product(id)
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	return render(c, "product", fiber.Map{
		"P":           card(p, h.Store.FavoriteSet(sid)),
		"Images":      p.ImageList(),
		"EditMode":    h.Edit.Enabled(sid),
		"CartCount":   cartpkg.Count(h.Store.Cart(sid)),
		"StorageWarn": h.Store.StorageWarning(),
	})
}
