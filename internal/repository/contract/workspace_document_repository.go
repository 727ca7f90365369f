package contract

import (
	"context"

	"project-composer-be/internal/entity"

	"github.com/google/uuid"
)

// WorkspaceDocumentRepository is the remote document store: exactly one
// document per user, always written as a whole.
type WorkspaceDocumentRepository interface {
	// Upsert overwrites the user's document with the full project list and a
	// fresh server timestamp.
	Upsert(ctx context.Context, doc *entity.WorkspaceDocument) error

	// Find returns nil without error when the user has no document yet, and
	// an error when the stored blob fails to decode.
	Find(ctx context.Context, userId uuid.UUID) (*entity.WorkspaceDocument, error)
}
