package mapper

import (
	"encoding/json"

	"project-composer-be/internal/entity"
	"project-composer-be/internal/model"

	"gorm.io/datatypes"
)

const documentNamespace = "project-composer"

type WorkspaceDocumentMapper struct{}

func NewWorkspaceDocumentMapper() *WorkspaceDocumentMapper {
	return &WorkspaceDocumentMapper{}
}

// ToEntity decodes the JSON projects column. A row whose blob no longer
// parses is reported as an error; callers decide whether that is fatal.
func (m *WorkspaceDocumentMapper) ToEntity(d *model.WorkspaceDocument) (*entity.WorkspaceDocument, error) {
	if d == nil {
		return nil, nil
	}
	projects := make([]*entity.ProjectInstance, 0)
	if len(d.Projects) > 0 {
		if err := json.Unmarshal(d.Projects, &projects); err != nil {
			return nil, err
		}
	}
	return &entity.WorkspaceDocument{
		UserId:      d.UserId,
		Projects:    projects,
		LastUpdated: d.LastUpdated,
	}, nil
}

func (m *WorkspaceDocumentMapper) ToModel(d *entity.WorkspaceDocument) (*model.WorkspaceDocument, error) {
	if d == nil {
		return nil, nil
	}
	projects := d.Projects
	if projects == nil {
		projects = make([]*entity.ProjectInstance, 0)
	}
	blob, err := json.Marshal(projects)
	if err != nil {
		return nil, err
	}
	return &model.WorkspaceDocument{
		UserId:      d.UserId,
		Namespace:   documentNamespace,
		Projects:    datatypes.JSON(blob),
		LastUpdated: d.LastUpdated,
	}, nil
}
