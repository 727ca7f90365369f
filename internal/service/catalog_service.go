package service

import (
	"context"
	"strings"

	"project-composer-be/internal/constant"
	"project-composer-be/internal/dto"
	"project-composer-be/internal/entity"
)

var placeholderFields = []string{
	"sees", "hears", "thinksFeels", "saysDoes",
	"business", "data", "application",
	"valueStream", "businessCapability", "businessProcess",
	"productModel", "serviceOffering", "informationObject",
}

type ICatalogService interface {
	// GetCatalog returns all categories, optionally filtered by a
	// case-insensitive substring match on template name or tip.
	GetCatalog(ctx context.Context, query string) (*dto.CatalogResponse, error)
	GetRoadmap(ctx context.Context) ([]dto.RoadmapPhaseResponse, error)
}

type catalogService struct{}

func NewCatalogService() ICatalogService {
	return &catalogService{}
}

func toTemplateResponse(tpl entity.ProjectTemplate) dto.CatalogTemplateResponse {
	placeholders := make(map[string]string, len(placeholderFields))
	for _, field := range placeholderFields {
		placeholders[field] = constant.FieldPlaceholder(field, tpl.Id)
	}
	return dto.CatalogTemplateResponse{
		Id:           tpl.Id,
		Name:         tpl.Name,
		Icon:         tpl.Icon,
		Structure:    tpl.Structure,
		Tip:          tpl.Tip,
		Placeholders: placeholders,
	}
}

func (s *catalogService) GetCatalog(ctx context.Context, query string) (*dto.CatalogResponse, error) {
	query = strings.ToLower(strings.TrimSpace(query))

	res := &dto.CatalogResponse{
		Categories: make([]dto.CatalogCategoryResponse, 0, len(constant.Catalog)),
	}

	for _, category := range constant.Catalog {
		templates := make([]dto.CatalogTemplateResponse, 0, len(category.Templates))
		for _, tpl := range category.Templates {
			if query != "" &&
				!strings.Contains(strings.ToLower(tpl.Name), query) &&
				!strings.Contains(strings.ToLower(tpl.Tip), query) {
				continue
			}
			templates = append(templates, toTemplateResponse(tpl))
		}
		// Searching hides emptied categories; the full listing keeps them.
		if query != "" && len(templates) == 0 {
			continue
		}
		res.Categories = append(res.Categories, dto.CatalogCategoryResponse{
			Name:      category.Name,
			Templates: templates,
		})
	}

	return res, nil
}

func (s *catalogService) GetRoadmap(ctx context.Context) ([]dto.RoadmapPhaseResponse, error) {
	phases := make([]dto.RoadmapPhaseResponse, 0, len(constant.SAFeRoadmap))
	for _, phase := range constant.SAFeRoadmap {
		phases = append(phases, dto.RoadmapPhaseResponse{
			Id:      phase.Id,
			Name:    phase.Name,
			Actions: phase.Actions,
			Tip:     phase.Tip,
		})
	}
	return phases, nil
}
