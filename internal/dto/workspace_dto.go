package dto

import (
	"time"

	"project-composer-be/internal/entity"
	"project-composer-be/pkg/filetree"

	"github.com/google/uuid"
)

type AddProjectRequest struct {
	Category   string `json:"category" validate:"required"`
	TemplateId string `json:"template_id" validate:"required"`
}

type AddProjectResponse struct {
	InstanceId uuid.UUID `json:"instance_id"`
}

// UpdateConfigRequest targets the currently selected instance. InstanceId is
// required to match the selection; a mismatch is ignored.
type UpdateConfigRequest struct {
	InstanceId uuid.UUID `json:"instance_id" validate:"required"`
	Key        string    `json:"key" validate:"required"`
	Value      string    `json:"value"`
}

// UpdateNestedConfigRequest shallow-merges the given fields into one nested
// configuration group (empathyMap, governance or csdm).
type UpdateNestedConfigRequest struct {
	InstanceId uuid.UUID         `json:"instance_id" validate:"required"`
	Fields     map[string]string `json:"fields" validate:"required"`
}

type SelectProjectRequest struct {
	// Nil clears the selection.
	InstanceId *uuid.UUID `json:"instance_id"`
}

type WorkspaceResponse struct {
	Projects   []*entity.ProjectInstance `json:"projects"`
	SelectedId *uuid.UUID                `json:"selected_id"`
	Progress   map[string]int            `json:"progress"`
}

type SaveWorkspaceResponse struct {
	LastUpdated time.Time `json:"last_updated"`
}

type FileTreeResponse struct {
	Nodes         []*filetree.Node `json:"nodes"`
	CollapseState map[string]bool  `json:"collapse_state"`
}

type ToggleCollapseRequest struct {
	Path string `json:"path" validate:"required"`
}

// WorkspaceSavedMessage rides the in-process event bus after every
// successful cloud save. Consumers reload the document from the store
// rather than trusting the message body.
type WorkspaceSavedMessage struct {
	UserId      uuid.UUID `json:"user_id"`
	LastUpdated time.Time `json:"last_updated"`
}
