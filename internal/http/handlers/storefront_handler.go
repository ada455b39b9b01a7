package handlers

import (
	"github.com/gofiber/fiber/v2"

	cartpkg "automall/internal/cart"
	"automall/internal/catalog"
	"automall/internal/domain"
	applog "automall/internal/log"
	"automall/internal/store"
	"automall/internal/validate"
)

type StorefrontHandler struct {
	Store      *store.CatalogStore
	Categories []domain.Category
	Edit       *EditMode
}

// productCard is the render model for one catalog tile.
type productCard struct {
	domain.Product
	Image            string
	PriceFmt         string
	OriginalPriceFmt string
	Favorite         bool
	LowStock         bool
	OutOfStock       bool
}

func card(p domain.Product, favs map[string]bool) productCard {
	pc := productCard{
		Product:    p,
		Image:      p.ImageList()[0],
		PriceFmt:   cartpkg.FormatCLP(p.Price),
		Favorite:   favs[p.ID],
		LowStock:   p.Stock > 0 && p.Stock < 5,
		OutOfStock: p.Stock == 0,
	}
	if p.OnOffer && p.OriginalPrice > 0 {
		pc.OriginalPriceFmt = cartpkg.FormatCLP(p.OriginalPrice)
	}
	return pc
}

// GET / — the catalog with query-param filters.
func (h *StorefrontHandler) Home(c *fiber.Ctx) error {
	sid := sessionID(c)
	crit := h.criteria(c)

	products := h.Store.Products()
	filtered := catalog.Filter(products, crit)

	favs := h.Store.FavoriteSet(sid)
	cards := make([]productCard, 0, len(filtered))
	for _, p := range filtered {
		cards = append(cards, card(p, favs))
	}

	return render(c, "storefront", fiber.Map{
		"Products":    cards,
		"Criteria":    crit,
		"Categories":  h.Categories,
		"Brands":      catalog.Brands(products),
		"Conditions":  []string{domain.ConditionNew, domain.ConditionUsed, domain.ConditionRefurbished},
		"EmptyResult": len(filtered) == 0 && crit.Active(),
		"CartCount":   cartpkg.Count(h.Store.Cart(sid)),
		"EditMode":    h.Edit.Enabled(sid),
		"StorageWarn": h.Store.StorageWarning(),
	})
}

func (h *StorefrontHandler) criteria(c *fiber.Ctx) catalog.Criteria {
	crit := catalog.DefaultCriteria()
	if q, ok := validate.Q(c.Query("q")); ok {
		crit.Search = q
	} else {
		applog.Security(c, "validation.fail", map[string]any{"field": "q"})
	}
	if id, ok := validate.ID(c.Query("category")); ok {
		crit.Category = id
	}
	if brand := c.Query("brand"); brand != "" && brand != catalog.All {
		crit.Brand = brand
	}
	if maxPrice, ok := validate.Price(c.Query("max_price")); ok && maxPrice > 0 {
		crit.MaxPrice = maxPrice
	}
	if cond, ok := validate.Condition(c.Query("condition")); ok {
		crit.Condition = cond
	}
	return crit
}
