package dto

// CatalogTemplateResponse is one selectable template plus the example
// placeholders the client shows next to each configuration field.
type CatalogTemplateResponse struct {
	Id           string            `json:"id"`
	Name         string            `json:"name"`
	Icon         string            `json:"icon"`
	Structure    string            `json:"structure"`
	Tip          string            `json:"tip"`
	Placeholders map[string]string `json:"placeholders"`
}

type CatalogCategoryResponse struct {
	Name      string                    `json:"name"`
	Templates []CatalogTemplateResponse `json:"templates"`
}

type CatalogResponse struct {
	Categories []CatalogCategoryResponse `json:"categories"`
}

type RoadmapPhaseResponse struct {
	Id      string   `json:"id"`
	Name    string   `json:"name"`
	Actions []string `json:"actions"`
	Tip     string   `json:"tip"`
}
