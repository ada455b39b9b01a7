package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const storeName = "Auto Mall Motores Zofri"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["StoreName"] = storeName
	// Pick up the token the CSRF middleware put into Locals.
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

// sessionID reads the sid cookie, minting one on first contact. Carts,
// favorites, edit mode and assistant chats all key off it.
func sessionID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}
