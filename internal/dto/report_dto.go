package dto

import "project-composer-be/internal/entity"

type GenerateReportRequest struct {
	IntegrationMode entity.IntegrationMode `json:"integration_mode" validate:"omitempty,oneof=standalone realtime differential"`
	CSDMEnabled     bool                   `json:"csdm_enabled"`
}

// CSDMRecord is the flat enterprise-data-model export for one instance.
type CSDMRecord struct {
	ProductModel       string `json:"product_model"`
	ValueStream        string `json:"value_stream"`
	BusinessProcess    string `json:"business_process"`
	BusinessCapability string `json:"business_capability"`
	InformationObject  string `json:"information_object"`
	ServiceOffering    string `json:"service_offering"`
	TechnologyService  string `json:"technology_service"`
}

type GenerateReportResponse struct {
	Title      string       `json:"title"`
	Summary    string       `json:"summary"`
	NextSteps  string       `json:"next_steps"`
	CSDMExport []CSDMRecord `json:"csdm_export,omitempty"`
}
