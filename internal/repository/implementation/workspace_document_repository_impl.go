package implementation

import (
	"context"
	"errors"
	"time"

	"project-composer-be/internal/entity"
	"project-composer-be/internal/mapper"
	"project-composer-be/internal/model"
	"project-composer-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkspaceDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkspaceDocumentMapper
}

func NewWorkspaceDocumentRepository(db *gorm.DB) contract.WorkspaceDocumentRepository {
	return &WorkspaceDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkspaceDocumentMapper(),
	}
}

func (r *WorkspaceDocumentRepositoryImpl) Upsert(ctx context.Context, doc *entity.WorkspaceDocument) error {
	doc.LastUpdated = time.Now()
	m, err := r.mapper.ToModel(doc)
	if err != nil {
		return err
	}
	// Full replacement on conflict, per the last-write-wins contract.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"projects", "last_updated"}),
	}).Create(m).Error
}

func (r *WorkspaceDocumentRepositoryImpl) Find(ctx context.Context, userId uuid.UUID) (*entity.WorkspaceDocument, error) {
	var m model.WorkspaceDocument
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
