package entity

import (
	"time"

	"github.com/google/uuid"
)

type Language string
type TestingFramework string
type IntegrationMode string

const (
	LanguageJavascript Language = "javascript"
	LanguageTypescript Language = "typescript"

	TestingNone    TestingFramework = "none"
	TestingJest    TestingFramework = "jest"
	TestingVitest  TestingFramework = "vitest"
	TestingCypress TestingFramework = "cypress"

	IntegrationStandalone   IntegrationMode = "standalone"
	IntegrationRealtime     IntegrationMode = "realtime"
	IntegrationDifferential IntegrationMode = "differential"
)

// ProjectTemplate is an immutable catalog entry. Instances copy every field
// at creation time, so later catalog revisions never affect an existing
// workspace.
type ProjectTemplate struct {
	Id          string            `json:"id"`
	Name        string            `json:"name"`
	Icon        string            `json:"icon"`
	Structure   string            `json:"structure"`
	Tip         string            `json:"tip"`
	Boilerplate map[string]string `json:"boilerplate"`
}

type EmpathyMap struct {
	Sees        string `json:"sees"`
	Hears       string `json:"hears"`
	ThinksFeels string `json:"thinksFeels"`
	SaysDoes    string `json:"saysDoes"`
}

type Governance struct {
	Business    string `json:"business"`
	Data        string `json:"data"`
	Application string `json:"application"`
}

type CSDM struct {
	ValueStream        string `json:"valueStream"`
	BusinessCapability string `json:"businessCapability"`
	BusinessProcess    string `json:"businessProcess"`
	ProductModel       string `json:"productModel"`
	ServiceOffering    string `json:"serviceOffering"`
	InformationObject  string `json:"informationObject"`
}

// Configuration holds the planning data for one project instance. The
// pointer groups stay permissive on read: documents written before the CSDM
// fields existed simply decode with a nil group.
type Configuration struct {
	ProjectName      string           `json:"projectName"`
	Purpose          string           `json:"purpose"`
	Impact           string           `json:"impact"`
	FirstStep        string           `json:"firstStep"`
	EmpathyMap       *EmpathyMap      `json:"empathyMap"`
	Governance       *Governance      `json:"governance"`
	CSDM             *CSDM            `json:"csdm"`
	Language         Language         `json:"language"`
	TestingFramework TestingFramework `json:"testingFramework"`
}

// NewConfiguration returns the default configuration bound to every fresh
// instance: all text empty, javascript, no testing framework.
func NewConfiguration() Configuration {
	return Configuration{
		EmpathyMap:       &EmpathyMap{},
		Governance:       &Governance{},
		CSDM:             &CSDM{},
		Language:         LanguageJavascript,
		TestingFramework: TestingNone,
	}
}

// EmpathyMapOrZero guards legacy documents that predate the empathy map.
func (c *Configuration) EmpathyMapOrZero() EmpathyMap {
	if c.EmpathyMap == nil {
		return EmpathyMap{}
	}
	return *c.EmpathyMap
}

func (c *Configuration) GovernanceOrZero() Governance {
	if c.Governance == nil {
		return Governance{}
	}
	return *c.Governance
}

func (c *Configuration) CSDMOrZero() CSDM {
	if c.CSDM == nil {
		return CSDM{}
	}
	return *c.CSDM
}

// Clone returns an independent copy, pointer groups included.
func (c *Configuration) Clone() Configuration {
	out := *c
	if c.EmpathyMap != nil {
		m := *c.EmpathyMap
		out.EmpathyMap = &m
	}
	if c.Governance != nil {
		g := *c.Governance
		out.Governance = &g
	}
	if c.CSDM != nil {
		cs := *c.CSDM
		out.CSDM = &cs
	}
	return out
}

// Progress is the completion percentage over the four primary planning
// fields, always one of 0, 25, 50, 75, 100.
func (c *Configuration) Progress() int {
	filled := 0
	for _, field := range []string{c.ProjectName, c.Purpose, c.Impact, c.FirstStep} {
		if field != "" {
			filled++
		}
	}
	return filled * 100 / 4
}

// ProjectInstance binds a copied template to a mutable configuration.
// InstanceId is unique within a workspace for the instance's lifetime.
type ProjectInstance struct {
	InstanceId  uuid.UUID         `json:"instanceId"`
	TemplateId  string            `json:"id"`
	Name        string            `json:"name"`
	Icon        string            `json:"icon"`
	Structure   string            `json:"structure"`
	Tip         string            `json:"tip"`
	Boilerplate map[string]string `json:"boilerplate"`
	Config      Configuration     `json:"config"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// NewProjectInstance copies the template into a fresh instance with default
// configuration. The boilerplate map is cloned so catalog data is never
// shared mutable state.
func NewProjectInstance(template ProjectTemplate) *ProjectInstance {
	boilerplate := make(map[string]string, len(template.Boilerplate))
	for path, content := range template.Boilerplate {
		boilerplate[path] = content
	}
	return &ProjectInstance{
		InstanceId:  uuid.New(),
		TemplateId:  template.Id,
		Name:        template.Name,
		Icon:        template.Icon,
		Structure:   template.Structure,
		Tip:         template.Tip,
		Boilerplate: boilerplate,
		Config:      NewConfiguration(),
		CreatedAt:   time.Now(),
	}
}

// Clone returns a detached copy of the instance. Read paths hand out clones
// so a snapshot serialized outside the session lock never shares state with
// in-flight edits.
func (p *ProjectInstance) Clone() *ProjectInstance {
	out := *p
	out.Boilerplate = make(map[string]string, len(p.Boilerplate))
	for path, content := range p.Boilerplate {
		out.Boilerplate[path] = content
	}
	out.Config = p.Config.Clone()
	return &out
}

// DisplayName is the configured project name, or a generic default when the
// user has not named the project yet.
func (p *ProjectInstance) DisplayName() string {
	if p.Config.ProjectName != "" {
		return p.Config.ProjectName
	}
	return "my-project"
}
