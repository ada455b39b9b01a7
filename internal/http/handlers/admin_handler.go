package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	applog "automall/internal/log"
	"automall/internal/store"
	"automall/internal/validate"
)

// AdminHandler is the mutation surface behind the edit-mode gate. The
// gate controls reachability only; the store methods it calls carry no
// permission model of their own.
type AdminHandler struct {
	Store    *store.CatalogStore
	Edit     *EditMode
	CodeHash string
}

// POST /admin/unlock
func (h *AdminHandler) Unlock(c *fiber.Ctx) error {
	sid := sessionID(c)
	code := c.FormValue("code")
	if bcrypt.CompareHashAndPassword([]byte(h.CodeHash), []byte(code)) != nil {
		applog.Security(c, "editmode.unlock.fail", map[string]any{"sid": sid})
		return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Código incorrecto"})
	}
	h.Edit.Set(sid, true)
	applog.Audit(c, "editmode.unlock", nil)
	return c.Redirect("/")
}

// POST /admin/lock
func (h *AdminHandler) Lock(c *fiber.Ctx) error {
	sid := sessionID(c)
	h.Edit.Set(sid, false)
	applog.Audit(c, "editmode.lock", nil)
	return c.Redirect("/")
}

// POST /admin/products/new — creates a placeholder product and jumps
// straight to its detail page for editing.
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	p := h.Store.CreateProduct()
	applog.Audit(c, "product.create", map[string]any{"product": p.ID})
	return c.Redirect("/product/" + p.ID)
}

// POST /admin/products/:id — field edits. The id comes from the path
// and never from the form: ids are immutable once created.
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid product id")
	}
	p, found := h.Store.Product(id)
	if !found {
		// Tolerated no-op; should be unreachable from the UI.
		applog.Warn(c, "product.update.miss", map[string]any{"product": id})
		return c.Redirect("/")
	}

	if name := c.FormValue("name"); name != "" {
		p.Name = name
	}
	if brand := c.FormValue("brand"); brand != "" {
		p.Brand = brand
	}
	if price, okPrice := validate.Price(c.FormValue("price")); okPrice {
		p.Price = price
	}
	if cond, okCond := validate.Condition(c.FormValue("condition")); okCond {
		p.Condition = cond
	}
	if stock, okStock := validate.Stock(c.FormValue("stock")); okStock {
		p.Stock = stock
	}
	p.OnOffer = c.FormValue("on_offer") == "on"
	if p.OnOffer {
		if orig, okOrig := validate.Price(c.FormValue("original_price")); okOrig && orig > 0 {
			p.OriginalPrice = orig
		}
	} else {
		p.OriginalPrice = 0
	}
	if desc := c.FormValue("description"); desc != "" {
		p.Description = desc
	}
	p.SKU = c.FormValue("sku")
	if cat, okCat := validate.ID(c.FormValue("category")); okCat {
		p.Category = cat
	}
	if images := validate.Images(c.FormValue("images")); images != nil {
		p.Images = images
	}

	h.Store.UpdateProduct(p)
	applog.Audit(c, "product.update", map[string]any{"product": id})
	return c.Redirect("/product/" + id)
}

// POST /admin/products/:id/delete — destructive, so it requires the
// confirmation field; declining is a no-op, not an error.
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid product id")
	}
	if c.FormValue("confirm") != "yes" {
		applog.Info(c, "product.delete.declined", map[string]any{"product": id})
		return c.Redirect("/product/" + id)
	}
	if !h.Store.DeleteProduct(id) {
		applog.Warn(c, "product.delete.miss", map[string]any{"product": id})
	} else {
		applog.Audit(c, "product.delete", map[string]any{"product": id})
	}
	return c.Redirect("/")
}

// POST /admin/products/reorder — drag drop: move source to target's slot.
func (h *AdminHandler) Reorder(c *fiber.Ctx) error {
	src, okSrc := validate.ID(c.FormValue("sourceId"))
	dst, okDst := validate.ID(c.FormValue("targetId"))
	if !okSrc || !okDst {
		return c.Status(400).SendString("invalid reorder ids")
	}
	if h.Store.Reorder(src, dst) {
		applog.Audit(c, "product.reorder", map[string]any{"source": src, "target": dst})
	}
	return c.Redirect("/")
}

// GET /admin/export — the one-way escape hatch: the catalog as a seed
// literal for a human to copy out and commit.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	applog.Audit(c, "catalog.export", nil)
	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.SendString(h.Store.ExportSnapshot())
}
