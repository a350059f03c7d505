package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ravi1983/cartvault/internal/dispatch"
	"github.com/ravi1983/cartvault/internal/faults"
	"github.com/ravi1983/cartvault/internal/identity"
)

// respondErr maps the fault taxonomy onto statuses: client faults 4xx,
// infrastructure 503 (retryable by the caller), anything unclassified a
// generic 500 with no internals leaked.
func respondErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, identity.ErrUnauthenticated) {
		return c.Status(fiber.StatusUnauthorized).JSON(dispatch.Failure{
			ErrorKind: "Unauthenticated",
			Message:   "authentication required",
		})
	}

	switch faults.KindOf(err) {
	case faults.InvalidArgument:
		return c.Status(fiber.StatusBadRequest).JSON(dispatch.FailureFor(err))
	case faults.ItemNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dispatch.FailureFor(err))
	case faults.Infrastructure:
		return c.Status(fiber.StatusServiceUnavailable).JSON(dispatch.FailureFor(err))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dispatch.Failure{
			ErrorKind: "Unknown",
			Message:   "something went wrong, please try again",
		})
	}
}
