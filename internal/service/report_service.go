package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"project-composer-be/internal/constant"
	"project-composer-be/internal/dto"
	"project-composer-be/internal/entity"

	"github.com/google/uuid"
)

var ErrEmptyWorkspace = errors.New("add at least one project to the workspace")

type IReportService interface {
	// Generate composes the full architecture report over every project in
	// the user's workspace.
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateReportRequest) (*dto.GenerateReportResponse, error)
}

type reportService struct {
	workspaceService IWorkspaceService
}

func NewReportService(workspaceService IWorkspaceService) IReportService {
	return &reportService{workspaceService: workspaceService}
}

func mapToCSDM(p *entity.ProjectInstance) dto.CSDMRecord {
	csdm := p.Config.CSDMOrZero()
	return dto.CSDMRecord{
		ProductModel:       csdm.ProductModel,
		ValueStream:        csdm.ValueStream,
		BusinessProcess:    csdm.BusinessProcess,
		BusinessCapability: csdm.BusinessCapability,
		InformationObject:  csdm.InformationObject,
		ServiceOffering:    csdm.ServiceOffering,
		// The project itself is the technical service.
		TechnologyService: p.Name,
	}
}

func summarizeProject(p *entity.ProjectInstance, csdmEnabled bool) string {
	cfg := p.Config
	empathy := cfg.EmpathyMapOrZero()
	governance := cfg.GovernanceOrZero()

	projectName := cfg.ProjectName
	if projectName == "" {
		projectName = "Unnamed Project"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Project: %s (%s)\n", projectName, p.Name)
	fmt.Fprintf(&b, "Purpose: %s\n", cfg.Purpose)
	fmt.Fprintf(&b, "Impact: %s\n", cfg.Impact)
	fmt.Fprintf(&b, "First Step: %s\n\n", cfg.FirstStep)

	b.WriteString("Empathy Map:\n")
	fmt.Fprintf(&b, "  - Sees: %s\n", empathy.Sees)
	fmt.Fprintf(&b, "  - Hears: %s\n", empathy.Hears)
	fmt.Fprintf(&b, "  - Thinks & Feels: %s\n", empathy.ThinksFeels)
	fmt.Fprintf(&b, "  - Says & Does: %s\n\n", empathy.SaysDoes)

	b.WriteString("TOGAF Metamodel:\n")
	fmt.Fprintf(&b, "  - Business: %s\n", governance.Business)
	fmt.Fprintf(&b, "  - Data: %s\n", governance.Data)
	fmt.Fprintf(&b, "  - Application: %s\n\n", governance.Application)

	b.WriteString("Developer Options:\n")
	fmt.Fprintf(&b, "  - Language: %s\n", cfg.Language)
	fmt.Fprintf(&b, "  - Testing Framework: %s\n", cfg.TestingFramework)

	if csdmEnabled {
		csdm := cfg.CSDMOrZero()
		b.WriteString("\nCSDM Data Model:\n")
		fmt.Fprintf(&b, "  - Value Stream: %s\n", csdm.ValueStream)
		fmt.Fprintf(&b, "  - Business Capability: %s\n", csdm.BusinessCapability)
		fmt.Fprintf(&b, "  - Service Offering: %s\n", csdm.ServiceOffering)
		fmt.Fprintf(&b, "  - Product Model: %s\n", csdm.ProductModel)
	}

	b.WriteString("---\n")
	return b.String()
}

func (s *reportService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateReportRequest) (*dto.GenerateReportResponse, error) {
	workspace, err := s.workspaceService.GetWorkspace(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(workspace.Projects) == 0 {
		return nil, ErrEmptyWorkspace
	}

	integrationMode := req.IntegrationMode
	if integrationMode == "" {
		integrationMode = entity.IntegrationStandalone
	}

	summaries := make([]string, 0, len(workspace.Projects))
	steps := make([]string, 0, len(workspace.Projects))
	for _, p := range workspace.Projects {
		summaries = append(summaries, summarizeProject(p, req.CSDMEnabled))

		stepName := p.Config.ProjectName
		if stepName == "" {
			stepName = "Unnamed"
		}
		steps = append(steps, fmt.Sprintf("For %s (%s):\n  %s\n",
			p.Name, stepName, constant.NextSteps(p.TemplateId, p.Config.ProjectName)))
	}

	summary := fmt.Sprintf("Integration Type: %s\n\nHere is a summary of your project architecture:\n\n%s",
		integrationMode, strings.Join(summaries, "\n"))

	res := &dto.GenerateReportResponse{
		Title:     "Architecture Generated! 🎉",
		Summary:   summary,
		NextSteps: strings.Join(steps, "\n"),
	}

	if req.CSDMEnabled {
		records := make([]dto.CSDMRecord, 0, len(workspace.Projects))
		for _, p := range workspace.Projects {
			records = append(records, mapToCSDM(p))
		}
		res.CSDMExport = records
	}

	return res, nil
}
