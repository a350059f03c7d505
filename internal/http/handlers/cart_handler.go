package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ravi1983/cartvault/internal/dispatch"
	"github.com/ravi1983/cartvault/internal/identity"
	applog "github.com/ravi1983/cartvault/internal/log"
)

type CartHandler struct {
	Dispatch *dispatch.Dispatcher
	Auth     identity.Provider
}

// user resolves the caller's identity and stashes it for the logger.
func (h *CartHandler) user(c *fiber.Ctx) (string, error) {
	uid, err := h.Auth.CurrentUserID(c)
	if err != nil {
		applog.Security(c, "auth.reject", nil)
		return "", err
	}
	c.Locals("userId", uid)
	return uid, nil
}

type addBody struct {
	ItemID string `json:"itemId"`
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	uid, err := h.user(c)
	if err != nil {
		return respondErr(c, err)
	}
	var body addBody
	if err := c.BodyParser(&body); err != nil {
		return respondErr(c, errBadBody)
	}
	res, err := h.Dispatch.Do(c.Context(), dispatch.Request{
		Op: dispatch.OpAdd, UserID: uid, ItemID: body.ItemID,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *CartHandler) List(c *fiber.Ctx) error {
	uid, err := h.user(c)
	if err != nil {
		return respondErr(c, err)
	}
	res, err := h.Dispatch.Do(c.Context(), dispatch.Request{
		Op: dispatch.OpList, UserID: uid,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(res)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	uid, err := h.user(c)
	if err != nil {
		return respondErr(c, err)
	}
	res, err := h.Dispatch.Do(c.Context(), dispatch.Request{
		Op: dispatch.OpRemove, UserID: uid, ItemID: c.Params("itemId"),
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(res)
}

// Actions accepts the normalized {operation, itemId} envelope, the same
// shape the original event handler multiplexed on. Identity still comes
// from the provider, never from the envelope.
func (h *CartHandler) Actions(c *fiber.Ctx) error {
	uid, err := h.user(c)
	if err != nil {
		return respondErr(c, err)
	}
	var req dispatch.Request
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, errBadBody)
	}
	req.UserID = uid
	res, err := h.Dispatch.Do(c.Context(), req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(res)
}
