package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"project-composer-be/internal/constant"
	"project-composer-be/internal/dto"
	"project-composer-be/internal/entity"
	"project-composer-be/internal/pkg/logger"
	"project-composer-be/internal/repository/contract"
	"project-composer-be/internal/repository/memory"
	"project-composer-be/internal/repository/unitofwork"
	"project-composer-be/pkg/events"
	"project-composer-be/pkg/filetree"
	pktNats "project-composer-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrSaveInFlight      = errors.New("a save is already in progress")
	ErrTemplateNotFound  = errors.New("template not found in catalog")
	ErrInstanceNotFound  = errors.New("project instance not found")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrUnknownGroup      = errors.New("unknown configuration group")
	ErrNoProjectSelected = errors.New("no project selected")
)

type IWorkspaceService interface {
	GetWorkspace(ctx context.Context, userId uuid.UUID) (*dto.WorkspaceResponse, error)
	AddProject(ctx context.Context, userId uuid.UUID, req *dto.AddProjectRequest) (*dto.AddProjectResponse, error)
	RemoveProject(ctx context.Context, userId uuid.UUID, instanceId uuid.UUID) error
	SelectProject(ctx context.Context, userId uuid.UUID, req *dto.SelectProjectRequest) error
	UpdateConfig(ctx context.Context, userId uuid.UUID, req *dto.UpdateConfigRequest) error
	UpdateNestedConfig(ctx context.Context, userId uuid.UUID, group string, req *dto.UpdateNestedConfigRequest) error
	Save(ctx context.Context, userId uuid.UUID) (*dto.SaveWorkspaceResponse, error)
	GetFileTree(ctx context.Context, userId uuid.UUID) (*dto.FileTreeResponse, error)
	ToggleCollapse(ctx context.Context, userId uuid.UUID, req *dto.ToggleCollapseRequest) error

	// ApplyRemoteDocument reloads the stored document and swaps it into the
	// live session, as happens when a save lands from another device. The
	// returned flag reports whether a live session existed to update.
	ApplyRemoteDocument(ctx context.Context, userId uuid.UUID) (*dto.WorkspaceResponse, bool, error)

	EndSession(userId uuid.UUID)
}

// slotPayload is the serialized shape of the local durable slot. Selection
// rides along so a restart restores it; derived state never does.
type slotPayload struct {
	Projects   []*entity.ProjectInstance `json:"projects"`
	SelectedId *uuid.UUID                `json:"selectedId,omitempty"`
}

type workspaceService struct {
	sessionRepo    *memory.WorkspaceSessionRepository
	slotRepo       contract.WorkspaceSlotRepository
	uowFactory     unitofwork.RepositoryFactory
	publisher      IPublisherService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger

	// One in-flight cloud save per user.
	saving sync.Map

	// Per-user first-touch guard, so concurrent hydrations of a cold
	// session converge on one live object.
	hydrating sync.Map
}

func NewWorkspaceService(
	sessionRepo *memory.WorkspaceSessionRepository,
	slotRepo contract.WorkspaceSlotRepository,
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IWorkspaceService {
	return &workspaceService{
		sessionRepo:    sessionRepo,
		slotRepo:       slotRepo,
		uowFactory:     uowFactory,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		logger:         sysLogger,
	}
}

// session returns the live session, hydrating it on first touch: the local
// slot wins, a corrupt slot is discarded, the remote document is the
// fallback, and an empty workspace is the default.
func (s *workspaceService) session(ctx context.Context, userId uuid.UUID) (*entity.WorkspaceSession, error) {
	if live, found := s.sessionRepo.Get(userId); found {
		return live, nil
	}

	guard, _ := s.hydrating.LoadOrStore(userId, &sync.Mutex{})
	mu := guard.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	// Another request may have hydrated while we waited on the guard.
	if live, found := s.sessionRepo.Get(userId); found {
		return live, nil
	}

	session := entity.NewWorkspaceSession(userId)

	hydrated := false
	blob, err := s.slotRepo.Read(ctx, userId)
	if err != nil {
		return nil, err
	}
	if blob != nil {
		var payload slotPayload
		if err := json.Unmarshal(blob, &payload); err != nil {
			s.logger.Warn("Workspace", "Discarding corrupt local slot", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
			if delErr := s.slotRepo.Delete(ctx, userId); delErr != nil {
				s.logger.Warn("Workspace", "Failed to clear corrupt slot", map[string]interface{}{"user_id": userId})
			}
		} else {
			session.Replace(payload.Projects)
			if payload.SelectedId != nil && session.Find(*payload.SelectedId) != nil {
				session.SelectedId = payload.SelectedId
			}
			hydrated = true
		}
	}

	if !hydrated {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		doc, err := uow.WorkspaceDocumentRepository().Find(ctx, userId)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			session.Replace(doc.Projects)
			s.persistLocal(ctx, session)
		}
	}

	s.sessionRepo.Save(session)
	return session, nil
}

// persistLocal writes the whole workspace through to the durable slot.
// Local durability is best effort; a failed write never fails the mutation.
func (s *workspaceService) persistLocal(ctx context.Context, session *entity.WorkspaceSession) {
	payload := slotPayload{
		Projects:   session.Projects,
		SelectedId: session.SelectedId,
	}
	blob, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("Workspace", "Failed to serialize workspace slot", map[string]interface{}{
			"user_id": session.UserId,
			"error":   err.Error(),
		})
		return
	}
	if err := s.slotRepo.Write(ctx, session.UserId, blob); err != nil {
		s.logger.Warn("Workspace", "Failed to write workspace slot", map[string]interface{}{
			"user_id": session.UserId,
			"error":   err.Error(),
		})
	}
}

// toWorkspaceResponse snapshots the session under its lock. The response is
// serialized by the caller after the lock is released, so every piece is a
// detached copy.
func toWorkspaceResponse(session *entity.WorkspaceSession) *dto.WorkspaceResponse {
	progress := make(map[string]int, len(session.Progress))
	for id, pct := range session.Progress {
		progress[id.String()] = pct
	}
	var selectedId *uuid.UUID
	if session.SelectedId != nil {
		id := *session.SelectedId
		selectedId = &id
	}
	return &dto.WorkspaceResponse{
		Projects:   session.CloneProjects(),
		SelectedId: selectedId,
		Progress:   progress,
	}
}

func (s *workspaceService) GetWorkspace(ctx context.Context, userId uuid.UUID) (*dto.WorkspaceResponse, error) {
	session, err := s.session(ctx, userId)
	if err != nil {
		return nil, err
	}
	session.Mu.Lock()
	defer session.Mu.Unlock()
	return toWorkspaceResponse(session), nil
}

func (s *workspaceService) AddProject(ctx context.Context, userId uuid.UUID, req *dto.AddProjectRequest) (*dto.AddProjectResponse, error) {
	template, found := constant.FindTemplate(req.Category, req.TemplateId)
	if !found {
		return nil, ErrTemplateNotFound
	}

	session, err := s.session(ctx, userId)
	if err != nil {
		return nil, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	instance := entity.NewProjectInstance(template)
	session.Projects = append(session.Projects, instance)
	session.Progress[instance.InstanceId] = instance.Config.Progress()

	// A new project immediately becomes the working selection.
	session.SelectedId = &instance.InstanceId
	session.CollapseState = make(map[string]bool)

	s.persistLocal(ctx, session)

	return &dto.AddProjectResponse{InstanceId: instance.InstanceId}, nil
}

func (s *workspaceService) RemoveProject(ctx context.Context, userId uuid.UUID, instanceId uuid.UUID) error {
	session, err := s.session(ctx, userId)
	if err != nil {
		return err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	idx := -1
	for i, p := range session.Projects {
		if p.InstanceId == instanceId {
			idx = i
			break
		}
	}
	// Removing an id that is already gone is a no-op.
	if idx < 0 {
		return nil
	}

	session.Projects = append(session.Projects[:idx], session.Projects[idx+1:]...)
	delete(session.Progress, instanceId)
	if session.SelectedId != nil && *session.SelectedId == instanceId {
		session.SelectedId = nil
		session.CollapseState = make(map[string]bool)
	}

	s.persistLocal(ctx, session)
	return nil
}

func (s *workspaceService) SelectProject(ctx context.Context, userId uuid.UUID, req *dto.SelectProjectRequest) error {
	session, err := s.session(ctx, userId)
	if err != nil {
		return err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	if req.InstanceId == nil {
		session.SelectedId = nil
		session.CollapseState = make(map[string]bool)
		s.persistLocal(ctx, session)
		return nil
	}

	if session.Find(*req.InstanceId) == nil {
		return ErrInstanceNotFound
	}

	if session.SelectedId == nil || *session.SelectedId != *req.InstanceId {
		session.CollapseState = make(map[string]bool)
	}
	session.SelectedId = req.InstanceId

	s.persistLocal(ctx, session)
	return nil
}

func (s *workspaceService) UpdateConfig(ctx context.Context, userId uuid.UUID, req *dto.UpdateConfigRequest) error {
	session, err := s.session(ctx, userId)
	if err != nil {
		return err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	selected := session.Selected()
	// Edits are bound to the selection; a stale instance id is dropped.
	if selected == nil || selected.InstanceId != req.InstanceId {
		return nil
	}

	cfg := &selected.Config
	switch req.Key {
	case "projectName":
		cfg.ProjectName = req.Value
	case "purpose":
		cfg.Purpose = req.Value
	case "impact":
		cfg.Impact = req.Value
	case "firstStep":
		cfg.FirstStep = req.Value
	case "language":
		switch entity.Language(req.Value) {
		case entity.LanguageJavascript, entity.LanguageTypescript:
			cfg.Language = entity.Language(req.Value)
		default:
			return fmt.Errorf("%w: unsupported language %q", ErrUnknownConfigKey, req.Value)
		}
	case "testingFramework":
		switch entity.TestingFramework(req.Value) {
		case entity.TestingNone, entity.TestingJest, entity.TestingVitest, entity.TestingCypress:
			cfg.TestingFramework = entity.TestingFramework(req.Value)
		default:
			return fmt.Errorf("%w: unsupported testing framework %q", ErrUnknownConfigKey, req.Value)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfigKey, req.Key)
	}

	session.Progress[selected.InstanceId] = cfg.Progress()
	s.persistLocal(ctx, session)
	return nil
}

func (s *workspaceService) UpdateNestedConfig(ctx context.Context, userId uuid.UUID, group string, req *dto.UpdateNestedConfigRequest) error {
	session, err := s.session(ctx, userId)
	if err != nil {
		return err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	selected := session.Selected()
	if selected == nil || selected.InstanceId != req.InstanceId {
		return nil
	}

	cfg := &selected.Config
	switch group {
	case "empathyMap":
		m := cfg.EmpathyMapOrZero()
		for key, value := range req.Fields {
			switch key {
			case "sees":
				m.Sees = value
			case "hears":
				m.Hears = value
			case "thinksFeels":
				m.ThinksFeels = value
			case "saysDoes":
				m.SaysDoes = value
			}
		}
		cfg.EmpathyMap = &m
	case "governance":
		g := cfg.GovernanceOrZero()
		for key, value := range req.Fields {
			switch key {
			case "business":
				g.Business = value
			case "data":
				g.Data = value
			case "application":
				g.Application = value
			}
		}
		cfg.Governance = &g
	case "csdm":
		c := cfg.CSDMOrZero()
		for key, value := range req.Fields {
			switch key {
			case "valueStream":
				c.ValueStream = value
			case "businessCapability":
				c.BusinessCapability = value
			case "businessProcess":
				c.BusinessProcess = value
			case "productModel":
				c.ProductModel = value
			case "serviceOffering":
				c.ServiceOffering = value
			case "informationObject":
				c.InformationObject = value
			}
		}
		cfg.CSDM = &c
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}

	s.persistLocal(ctx, session)
	return nil
}

func (s *workspaceService) Save(ctx context.Context, userId uuid.UUID) (*dto.SaveWorkspaceResponse, error) {
	if _, inFlight := s.saving.LoadOrStore(userId, true); inFlight {
		return nil, ErrSaveInFlight
	}
	defer s.saving.Delete(userId)

	session, err := s.session(ctx, userId)
	if err != nil {
		return nil, err
	}

	session.Mu.Lock()
	doc := &entity.WorkspaceDocument{
		UserId:   userId,
		Projects: session.CloneProjects(),
	}
	projectCount := len(doc.Projects)
	session.Mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WorkspaceDocumentRepository().Upsert(ctx, doc); err != nil {
		return nil, err
	}

	msg, err := json.Marshal(dto.WorkspaceSavedMessage{UserId: userId, LastUpdated: doc.LastUpdated})
	if err == nil {
		if err := s.publisher.Publish(ctx, msg); err != nil {
			s.logger.Warn("Workspace", "Failed to publish workspace.saved", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewWorkspaceSaved(userId, projectCount)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("Workspace", "Failed to publish WORKSPACE_SAVED event", map[string]interface{}{
				"user_id": userId,
			})
		}
	}

	return &dto.SaveWorkspaceResponse{LastUpdated: doc.LastUpdated}, nil
}

func (s *workspaceService) GetFileTree(ctx context.Context, userId uuid.UUID) (*dto.FileTreeResponse, error) {
	session, err := s.session(ctx, userId)
	if err != nil {
		return nil, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	selected := session.Selected()
	if selected == nil {
		return &dto.FileTreeResponse{
			Nodes:         make([]*filetree.Node, 0),
			CollapseState: make(map[string]bool),
		}, nil
	}

	collapse := make(map[string]bool, len(session.CollapseState))
	for path, collapsed := range session.CollapseState {
		collapse[path] = collapsed
	}

	return &dto.FileTreeResponse{
		Nodes:         filetree.Build(selected),
		CollapseState: collapse,
	}, nil
}

func (s *workspaceService) ToggleCollapse(ctx context.Context, userId uuid.UUID, req *dto.ToggleCollapseRequest) error {
	session, err := s.session(ctx, userId)
	if err != nil {
		return err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	if session.Selected() == nil {
		return ErrNoProjectSelected
	}

	session.CollapseState[req.Path] = !session.CollapseState[req.Path]
	return nil
}

func (s *workspaceService) ApplyRemoteDocument(ctx context.Context, userId uuid.UUID) (*dto.WorkspaceResponse, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.WorkspaceDocumentRepository().Find(ctx, userId)
	if err != nil {
		return nil, false, err
	}
	if doc == nil {
		return nil, false, nil
	}

	session, found := s.sessionRepo.Get(userId)
	if !found {
		return nil, false, nil
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	session.Replace(doc.Projects)
	s.persistLocal(ctx, session)

	return toWorkspaceResponse(session), true, nil
}

func (s *workspaceService) EndSession(userId uuid.UUID) {
	s.sessionRepo.Delete(userId)
}
