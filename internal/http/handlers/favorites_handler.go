package handlers

import (
	"github.com/gofiber/fiber/v2"

	cartpkg "automall/internal/cart"
	applog "automall/internal/log"
	"automall/internal/store"
	"automall/internal/validate"
)

type FavoritesHandler struct {
	Store *store.CatalogStore
}

// POST /favorites/toggle — set semantics: add if absent, remove if present.
func (h *FavoritesHandler) Toggle(c *fiber.Ctx) error {
	sid := sessionID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	nowFav := h.Store.ToggleFavorite(sid, pid)
	applog.Info(c, "favorites.toggle", map[string]any{"product": pid, "favorite": nowFav})

	back := c.Get("Referer")
	if back == "" {
		back = "/favorites"
	}
	return c.Redirect(back)
}

// GET /favorites
func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	sid := sessionID(c)
	favs := h.Store.FavoriteSet(sid)
	products := h.Store.FavoriteProducts(sid)
	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, card(p, favs))
	}
	return render(c, "favorites", fiber.Map{
		"Products":  cards,
		"CartCount": cartpkg.Count(h.Store.Cart(sid)),
	})
}
