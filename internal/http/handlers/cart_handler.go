package handlers

import (
	"github.com/gofiber/fiber/v2"

	cartpkg "automall/internal/cart"
	"automall/internal/domain"
	applog "automall/internal/log"
	"automall/internal/store"
	"automall/internal/validate"
)

type CartHandler struct {
	Store *store.CatalogStore
}

type cartLine struct {
	domain.CartItem
	Image       string
	PriceFmt    string
	SubtotalFmt string
}

// POST /cart — adding an already-present product bumps its quantity.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := sessionID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	p, found := h.Store.Product(pid)
	if !found {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Este producto ya no está disponible"})
	}
	h.Store.AddToCart(sid, p)
	applog.Info(c, "cart.add", map[string]any{"product": pid})
	// The original opens the cart drawer after every add; here that is
	// the redirect to the cart view.
	return c.Redirect("/cart")
}

// GET /cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := sessionID(c)
	items := h.Store.Cart(sid)
	lines := make([]cartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, cartLine{
			CartItem:    it,
			Image:       it.ImageList()[0],
			PriceFmt:    cartpkg.FormatCLP(it.Price),
			SubtotalFmt: cartpkg.FormatCLP(it.Price * it.Quantity),
		})
	}
	return render(c, "cart", fiber.Map{
		"Items":     lines,
		"TotalFmt":  cartpkg.FormatCLP(cartpkg.Total(items)),
		"CartCount": cartpkg.Count(items),
	})
}

// POST /cart/remove — removes the whole line, whatever the quantity.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := sessionID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	h.Store.RemoveFromCart(sid, pid)
	applog.Info(c, "cart.remove", map[string]any{"product": pid})
	return c.Redirect("/cart")
}
