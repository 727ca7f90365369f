package entity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// WorkspaceSession is the live, in-memory workspace of one user: the ordered
// project instances, the current selection (held as an id so the selected
// instance is always the element inside Projects, never a copy), and derived
// state. All mutation goes through the workspace service, which locks Mu.
type WorkspaceSession struct {
	UserId   uuid.UUID
	Projects []*ProjectInstance

	// SelectedId is nil when nothing is selected.
	SelectedId *uuid.UUID

	// Progress per instance id, recomputed on every config change and on load.
	Progress map[uuid.UUID]int

	// CollapseState tracks which tree paths the user collapsed. Keyed by full
	// path, default expanded (absent = expanded). Survives tree rebuilds,
	// never persisted.
	CollapseState map[string]bool

	Mu sync.Mutex
}

func NewWorkspaceSession(userId uuid.UUID) *WorkspaceSession {
	return &WorkspaceSession{
		UserId:        userId,
		Projects:      make([]*ProjectInstance, 0),
		Progress:      make(map[uuid.UUID]int),
		CollapseState: make(map[string]bool),
	}
}

// Selected resolves the selection against the project list. Returns nil when
// nothing is selected or the id no longer exists.
func (w *WorkspaceSession) Selected() *ProjectInstance {
	if w.SelectedId == nil {
		return nil
	}
	return w.Find(*w.SelectedId)
}

func (w *WorkspaceSession) Find(instanceId uuid.UUID) *ProjectInstance {
	for _, p := range w.Projects {
		if p.InstanceId == instanceId {
			return p
		}
	}
	return nil
}

// CloneProjects deep-copies the project list. Callers hold Mu; the copies
// outlive the lock safely.
func (w *WorkspaceSession) CloneProjects() []*ProjectInstance {
	projects := make([]*ProjectInstance, 0, len(w.Projects))
	for _, p := range w.Projects {
		projects = append(projects, p.Clone())
	}
	return projects
}

// Replace swaps the full project list, as happens when a remote document
// push arrives. Selection is kept when the selected instance survives the
// swap, otherwise cleared. Progress is recomputed from scratch.
func (w *WorkspaceSession) Replace(projects []*ProjectInstance) {
	w.Projects = projects
	w.RecomputeProgress()
	if w.SelectedId != nil && w.Find(*w.SelectedId) == nil {
		w.SelectedId = nil
	}
}

func (w *WorkspaceSession) RecomputeProgress() {
	w.Progress = make(map[uuid.UUID]int, len(w.Projects))
	for _, p := range w.Projects {
		w.Progress[p.InstanceId] = p.Config.Progress()
	}
}

// WorkspaceDocument is the remote store's shape: the full project list plus
// the server timestamp of the last explicit save.
type WorkspaceDocument struct {
	UserId      uuid.UUID          `json:"userId"`
	Projects    []*ProjectInstance `json:"projects"`
	LastUpdated time.Time          `json:"lastUpdated"`
}
