package service

import (
	"context"
	"sync"

	"project-composer-be/internal/dto"
	"project-composer-be/internal/pkg/logger"

	"github.com/google/uuid"
)

type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateResolving       SessionState = "resolving"
	StateAuthenticated   SessionState = "authenticated"
)

// ISyncService tracks each user's session lifecycle. A session moves
// Unauthenticated -> Resolving -> Authenticated; only Authenticated
// sessions receive remote document pushes.
type ISyncService interface {
	// BeginSession hydrates the workspace and marks the user subscribed.
	// The returned snapshot is the initial push for a fresh connection.
	BeginSession(ctx context.Context, userId uuid.UUID) (*dto.WorkspaceResponse, error)

	// Teardown drops the live session and unsubscribes the user. The local
	// slot and the remote document are untouched.
	Teardown(userId uuid.UUID)

	IsSubscribed(userId uuid.UUID) bool
	State(userId uuid.UUID) SessionState
}

type syncService struct {
	workspaceService IWorkspaceService
	logger           logger.ILogger

	mu     sync.RWMutex
	states map[uuid.UUID]SessionState
}

func NewSyncService(workspaceService IWorkspaceService, sysLogger logger.ILogger) ISyncService {
	return &syncService{
		workspaceService: workspaceService,
		logger:           sysLogger,
		states:           make(map[uuid.UUID]SessionState),
	}
}

func (s *syncService) setState(userId uuid.UUID, state SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == StateUnauthenticated {
		delete(s.states, userId)
		return
	}
	s.states[userId] = state
}

func (s *syncService) State(userId uuid.UUID) SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.states[userId]; ok {
		return state
	}
	return StateUnauthenticated
}

func (s *syncService) IsSubscribed(userId uuid.UUID) bool {
	return s.State(userId) == StateAuthenticated
}

func (s *syncService) BeginSession(ctx context.Context, userId uuid.UUID) (*dto.WorkspaceResponse, error) {
	s.setState(userId, StateResolving)

	snapshot, err := s.workspaceService.GetWorkspace(ctx, userId)
	if err != nil {
		s.setState(userId, StateUnauthenticated)
		return nil, err
	}

	s.setState(userId, StateAuthenticated)
	s.logger.Info("Sync", "Session subscribed", map[string]interface{}{"user_id": userId})
	return snapshot, nil
}

func (s *syncService) Teardown(userId uuid.UUID) {
	s.setState(userId, StateUnauthenticated)
	s.workspaceService.EndSession(userId)
	s.logger.Info("Sync", "Session torn down", map[string]interface{}{"user_id": userId})
}
