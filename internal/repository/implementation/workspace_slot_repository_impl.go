package implementation

import (
	"context"
	"errors"
	"fmt"

	"project-composer-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const slotKeyPrefix = "workspace:"

// WorkspaceSlotRepositoryImpl keeps the local durable slot in Redis under
// one fixed key per user.
type WorkspaceSlotRepositoryImpl struct {
	rdb *redis.Client
}

func NewWorkspaceSlotRepository(rdb *redis.Client) contract.WorkspaceSlotRepository {
	return &WorkspaceSlotRepositoryImpl{rdb: rdb}
}

func slotKey(userId uuid.UUID) string {
	return fmt.Sprintf("%s%s", slotKeyPrefix, userId)
}

func (r *WorkspaceSlotRepositoryImpl) Write(ctx context.Context, userId uuid.UUID, blob []byte) error {
	return r.rdb.Set(ctx, slotKey(userId), blob, 0).Err()
}

func (r *WorkspaceSlotRepositoryImpl) Read(ctx context.Context, userId uuid.UUID) ([]byte, error) {
	blob, err := r.rdb.Get(ctx, slotKey(userId)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return blob, nil
}

func (r *WorkspaceSlotRepositoryImpl) Delete(ctx context.Context, userId uuid.UUID) error {
	return r.rdb.Del(ctx, slotKey(userId)).Err()
}
