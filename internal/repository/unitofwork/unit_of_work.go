package unitofwork

import (
	"context"

	"project-composer-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	WorkspaceDocumentRepository() contract.WorkspaceDocumentRepository
}
