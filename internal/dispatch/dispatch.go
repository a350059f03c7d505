// Package dispatch is the normalized entry point into the cart core: one
// verb plus already-authenticated identifiers in, one typed result out.
// Transport details (HTTP, lambda-style events) stay outside.
package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/ravi1983/cartvault/internal/domain"
	"github.com/ravi1983/cartvault/internal/faults"
	applog "github.com/ravi1983/cartvault/internal/log"
	"github.com/ravi1983/cartvault/internal/services"
)

type Operation string

const (
	OpAdd    Operation = "add"
	OpList   Operation = "list"
	OpRemove Operation = "remove"
)

// normalize folds the legacy event spelling into the canonical verb set.
func normalize(op Operation) Operation {
	if op == "removeItem" {
		return OpRemove
	}
	return op
}

// Request is the normalized call shape. ItemID is unused for list.
type Request struct {
	Op     Operation `json:"operation"`
	UserID string    `json:"userId"`
	ItemID string    `json:"itemId,omitempty"`
}

type AddResult struct {
	AddedItem domain.CartEntry `json:"addedItem"`
}

type RemoveResult struct {
	RemovedItemID string `json:"removedItemId"`
}

// Failure is the wire shape for any classified error.
type Failure struct {
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message"`
}

func FailureFor(err error) Failure {
	return Failure{ErrorKind: faults.KindOf(err).String(), Message: faults.Message(err)}
}

type Dispatcher struct {
	Carts *services.CartService
}

func NewDispatcher(carts *services.CartService) *Dispatcher {
	return &Dispatcher{Carts: carts}
}

// Do routes one request to exactly one cart operation and returns
// AddResult, domain.Cart, or RemoveResult. Unknown verbs are a client
// fault, matching the taxonomy the edge maps to statuses.
func (d *Dispatcher) Do(ctx context.Context, req Request) (any, error) {
	opID := uuid.NewString()

	switch normalize(req.Op) {
	case OpAdd:
		e, err := d.Carts.AddItem(ctx, req.UserID, req.ItemID)
		if err != nil {
			applog.Error(nil, "dispatch.add", err, map[string]any{"op_id": opID, "user_id": req.UserID, "item_id": req.ItemID})
			return nil, err
		}
		applog.Info(nil, "dispatch.add", map[string]any{"op_id": opID, "user_id": req.UserID, "item_id": req.ItemID})
		return AddResult{AddedItem: e}, nil

	case OpList:
		cart, err := d.Carts.ListItems(ctx, req.UserID)
		if err != nil {
			applog.Error(nil, "dispatch.list", err, map[string]any{"op_id": opID, "user_id": req.UserID})
			return nil, err
		}
		applog.Info(nil, "dispatch.list", map[string]any{"op_id": opID, "user_id": req.UserID, "item_count": cart.ItemCount})
		return cart, nil

	case OpRemove:
		removed, err := d.Carts.RemoveItem(ctx, req.UserID, req.ItemID)
		if err != nil {
			applog.Error(nil, "dispatch.remove", err, map[string]any{"op_id": opID, "user_id": req.UserID, "item_id": req.ItemID})
			return nil, err
		}
		applog.Info(nil, "dispatch.remove", map[string]any{"op_id": opID, "user_id": req.UserID, "item_id": req.ItemID})
		return RemoveResult{RemovedItemID: removed}, nil

	default:
		return nil, faults.InvalidArgumentf("unknown operation %q", req.Op)
	}
}
