package handlers

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	applog "automall/internal/log"
)

// EditMode tracks which sessions have unlocked the admin editing
// surface. It gates UI reachability only; the store's mutation methods
// stay callable regardless.
type EditMode struct {
	mu   sync.Mutex
	sids map[string]bool
}

func NewEditMode() *EditMode { return &EditMode{sids: map[string]bool{}} }

func (e *EditMode) Enabled(sid string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sids[sid]
}

func (e *EditMode) Set(sid string, on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if on {
		e.sids[sid] = true
	} else {
		delete(e.sids, sid)
	}
}

// RequireEditMode blocks mutation routes for sessions that have not
// unlocked edit mode.
func RequireEditMode(em *EditMode) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := sessionID(c)
		if !em.Enabled(sid) {
			applog.Security(c, "access.denied.editmode", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
		}
		return c.Next()
	}
}
