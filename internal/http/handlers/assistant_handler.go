package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"automall/internal/assistant"
	applog "automall/internal/log"
)

type AssistantHandler struct {
	Advisor *assistant.Service
}

// GET /assistant — the chat panel; shows a loading indicator while a
// reply is in flight.
func (h *AssistantHandler) View(c *fiber.Ctx) error {
	sid := sessionID(c)
	msgs, pending := h.Advisor.Conversation(sid)
	return render(c, "assistant", fiber.Map{
		"Messages": msgs,
		"Pending":  pending,
	})
}

// POST /assistant/message — fire-and-forget; the redirect shows the
// pending state immediately.
func (h *AssistantHandler) Message(c *fiber.Ctx) error {
	sid := sessionID(c)
	q := strings.TrimSpace(c.FormValue("q"))
	if q == "" || len(q) > 500 {
		return c.Redirect("/assistant")
	}
	h.Advisor.Ask(sid, q)
	applog.Info(c, "assistant.ask", map[string]any{"len": len(q)})
	return c.Redirect("/assistant")
}

// POST /assistant/reset — closes the panel; any in-flight reply for the
// old conversation is discarded on arrival.
func (h *AssistantHandler) Reset(c *fiber.Ctx) error {
	sid := sessionID(c)
	h.Advisor.Reset(sid)
	return c.Redirect("/assistant")
}
