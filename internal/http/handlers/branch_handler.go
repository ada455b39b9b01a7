package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "automall/internal/log"
	"automall/internal/store"
	"automall/internal/validate"
)

type BranchHandler struct {
	Store *store.CatalogStore
	Edit  *EditMode
}

// GET /branches
func (h *BranchHandler) List(c *fiber.Ctx) error {
	sid := sessionID(c)
	return render(c, "branches", fiber.Map{
		"Branches": h.Store.Branches(),
		"EditMode": h.Edit.Enabled(sid),
	})
}

// POST /admin/branches/:id — address/phone edits, session only.
func (h *BranchHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("invalid branch id")
	}
	b, found := h.Store.Branch(id)
	if !found {
		applog.Warn(c, "branch.update.miss", map[string]any{"branch": id})
		return c.Redirect("/branches")
	}

	if addr := c.FormValue("address"); addr != "" {
		b.Address = addr
	}
	if phone, okPhone := validate.Phone(c.FormValue("phone")); okPhone {
		b.Phone = phone
	}
	h.Store.UpdateBranch(b)
	applog.Audit(c, "branch.update", map[string]any{"branch": id})
	return c.Redirect("/branches")
}
