package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"project-composer-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trackingWorkspaceService struct {
	IWorkspaceService

	loadErr error

	mu    sync.Mutex
	ended []uuid.UUID
}

func (s *trackingWorkspaceService) GetWorkspace(ctx context.Context, userId uuid.UUID) (*dto.WorkspaceResponse, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return &dto.WorkspaceResponse{Progress: map[string]int{}}, nil
}

func (s *trackingWorkspaceService) EndSession(userId uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = append(s.ended, userId)
}

func TestBeginSessionSubscribes(t *testing.T) {
	workspace := &trackingWorkspaceService{}
	svc := NewSyncService(workspace, nopLogger{})
	userId := uuid.New()

	assert.Equal(t, StateUnauthenticated, svc.State(userId))
	assert.False(t, svc.IsSubscribed(userId))

	snapshot, err := svc.BeginSession(context.Background(), userId)
	require.NoError(t, err)
	assert.NotNil(t, snapshot)
	assert.Equal(t, StateAuthenticated, svc.State(userId))
	assert.True(t, svc.IsSubscribed(userId))
}

func TestBeginSessionFailureResetsState(t *testing.T) {
	workspace := &trackingWorkspaceService{loadErr: errors.New("store down")}
	svc := NewSyncService(workspace, nopLogger{})
	userId := uuid.New()

	_, err := svc.BeginSession(context.Background(), userId)
	assert.Error(t, err)
	assert.Equal(t, StateUnauthenticated, svc.State(userId))
	assert.False(t, svc.IsSubscribed(userId))
}

func TestTeardownUnsubscribesAndEndsSession(t *testing.T) {
	workspace := &trackingWorkspaceService{}
	svc := NewSyncService(workspace, nopLogger{})
	userId := uuid.New()

	_, err := svc.BeginSession(context.Background(), userId)
	require.NoError(t, err)

	svc.Teardown(userId)

	assert.Equal(t, StateUnauthenticated, svc.State(userId))
	assert.False(t, svc.IsSubscribed(userId))
	require.Len(t, workspace.ended, 1)
	assert.Equal(t, userId, workspace.ended[0])
}

func TestStatesAreIsolatedPerUser(t *testing.T) {
	workspace := &trackingWorkspaceService{}
	svc := NewSyncService(workspace, nopLogger{})
	first := uuid.New()
	second := uuid.New()

	_, err := svc.BeginSession(context.Background(), first)
	require.NoError(t, err)

	assert.True(t, svc.IsSubscribed(first))
	assert.False(t, svc.IsSubscribed(second))
}
