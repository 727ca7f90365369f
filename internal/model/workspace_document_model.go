package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkspaceDocument is the remote store row: one document per user under the
// fixed application namespace, holding the full serialized project list.
type WorkspaceDocument struct {
	UserId      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Namespace   string         `gorm:"type:varchar(100);not null;default:'project-composer'"`
	Projects    datatypes.JSON `gorm:"type:jsonb;not null"`
	LastUpdated time.Time      `gorm:"not null"`
}

func (WorkspaceDocument) TableName() string {
	return "workspace_documents"
}
