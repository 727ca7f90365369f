package contract

import (
	"context"

	"github.com/google/uuid"
)

// WorkspaceSlotRepository is the local durable slot: one fixed key per user
// holding the whole serialized workspace. Writes are synchronous full
// replacements; reads happen once at session start.
type WorkspaceSlotRepository interface {
	Write(ctx context.Context, userId uuid.UUID, blob []byte) error

	// Read returns (nil, nil) when no slot exists.
	Read(ctx context.Context, userId uuid.UUID) ([]byte, error)

	// Delete removes the slot, used to clear a corrupt value.
	Delete(ctx context.Context, userId uuid.UUID) error
}
