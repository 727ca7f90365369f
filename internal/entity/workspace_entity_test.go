package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplate() ProjectTemplate {
	return ProjectTemplate{
		Id:        "react",
		Name:      "React.js",
		Structure: "my-react-app/",
		Boilerplate: map[string]string{
			"package.json": "{}",
		},
	}
}

func TestConfigurationProgress(t *testing.T) {
	cfg := NewConfiguration()
	assert.Equal(t, 0, cfg.Progress())

	cfg.ProjectName = "demo"
	assert.Equal(t, 25, cfg.Progress())

	cfg.Purpose = "learn"
	cfg.Impact = "ship"
	assert.Equal(t, 75, cfg.Progress())

	cfg.FirstStep = "scaffold"
	assert.Equal(t, 100, cfg.Progress())

	// Nested groups never count toward progress.
	cfg = NewConfiguration()
	cfg.EmpathyMap = &EmpathyMap{Sees: "something"}
	cfg.CSDM = &CSDM{ValueStream: "stream"}
	assert.Equal(t, 0, cfg.Progress())
}

func TestConfigurationOrZeroGuards(t *testing.T) {
	cfg := Configuration{}
	assert.Equal(t, EmpathyMap{}, cfg.EmpathyMapOrZero())
	assert.Equal(t, Governance{}, cfg.GovernanceOrZero())
	assert.Equal(t, CSDM{}, cfg.CSDMOrZero())
}

func TestNewProjectInstanceCopiesBoilerplate(t *testing.T) {
	template := testTemplate()
	inst := NewProjectInstance(template)

	inst.Boilerplate["package.json"] = "tampered"
	assert.Equal(t, "{}", template.Boilerplate["package.json"])

	assert.NotEqual(t, uuid.Nil, inst.InstanceId)
	assert.Equal(t, LanguageJavascript, inst.Config.Language)
	assert.Equal(t, TestingNone, inst.Config.TestingFramework)
}

func TestProjectInstanceDisplayName(t *testing.T) {
	inst := NewProjectInstance(testTemplate())
	assert.Equal(t, "my-project", inst.DisplayName())

	inst.Config.ProjectName = "billing"
	assert.Equal(t, "billing", inst.DisplayName())
}

func TestWorkspaceSessionSelected(t *testing.T) {
	session := NewWorkspaceSession(uuid.New())
	assert.Nil(t, session.Selected())

	inst := NewProjectInstance(testTemplate())
	session.Projects = append(session.Projects, inst)
	session.SelectedId = &inst.InstanceId
	require.NotNil(t, session.Selected())
	assert.Same(t, inst, session.Selected())

	stale := uuid.New()
	session.SelectedId = &stale
	assert.Nil(t, session.Selected())
}

func TestWorkspaceSessionReplace(t *testing.T) {
	session := NewWorkspaceSession(uuid.New())
	old := NewProjectInstance(testTemplate())
	session.Projects = []*ProjectInstance{old}
	session.SelectedId = &old.InstanceId
	session.RecomputeProgress()

	incoming := NewProjectInstance(testTemplate())
	incoming.Config.ProjectName = "remote"
	session.Replace([]*ProjectInstance{incoming})

	assert.Len(t, session.Projects, 1)
	assert.Nil(t, session.SelectedId, "selection of a vanished instance clears")
	assert.Equal(t, 25, session.Progress[incoming.InstanceId])
	_, tracked := session.Progress[old.InstanceId]
	assert.False(t, tracked)
}

func TestWorkspaceSessionReplaceKeepsSurvivingSelection(t *testing.T) {
	session := NewWorkspaceSession(uuid.New())
	inst := NewProjectInstance(testTemplate())
	session.Projects = []*ProjectInstance{inst}
	session.SelectedId = &inst.InstanceId

	session.Replace([]*ProjectInstance{inst})
	require.NotNil(t, session.SelectedId)
	assert.Equal(t, inst.InstanceId, *session.SelectedId)
}

func TestProjectInstanceJSONKeys(t *testing.T) {
	inst := NewProjectInstance(testTemplate())
	inst.Config.EmpathyMap = &EmpathyMap{ThinksFeels: "worried"}

	blob, err := json.Marshal(inst)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(blob, &raw))
	assert.Contains(t, raw, "instanceId")
	assert.Contains(t, raw, "id")
	assert.Contains(t, raw, "config")

	cfg := raw["config"].(map[string]interface{})
	assert.Contains(t, cfg, "projectName")
	assert.Contains(t, cfg, "testingFramework")
	empathy := cfg["empathyMap"].(map[string]interface{})
	assert.Equal(t, "worried", empathy["thinksFeels"])
}

func TestWorkspaceDocumentJSONKeys(t *testing.T) {
	doc := WorkspaceDocument{
		UserId:   uuid.New(),
		Projects: []*ProjectInstance{NewProjectInstance(testTemplate())},
	}

	blob, err := json.Marshal(doc)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(blob, &raw))
	assert.Contains(t, raw, "userId")
	assert.Contains(t, raw, "projects")
	assert.Contains(t, raw, "lastUpdated")
}

func TestProjectInstanceClone(t *testing.T) {
	original := NewProjectInstance(testTemplate())
	original.Config.ProjectName = "demo"
	original.Config.EmpathyMap.Sees = "users"

	clone := original.Clone()
	clone.Config.ProjectName = "changed"
	clone.Config.EmpathyMap.Sees = "nobody"
	clone.Boilerplate["extra.js"] = "// extra"

	assert.Equal(t, "demo", original.Config.ProjectName)
	assert.Equal(t, "users", original.Config.EmpathyMap.Sees)
	assert.NotContains(t, original.Boilerplate, "extra.js")

	// Identity and template data carry over unchanged.
	assert.Equal(t, original.InstanceId, clone.InstanceId)
	assert.Equal(t, original.TemplateId, clone.TemplateId)
}

func TestConfigurationCloneToleratesNilGroups(t *testing.T) {
	cfg := Configuration{ProjectName: "legacy"}

	clone := cfg.Clone()
	assert.Nil(t, clone.EmpathyMap)
	assert.Nil(t, clone.Governance)
	assert.Nil(t, clone.CSDM)
	assert.Equal(t, "legacy", clone.ProjectName)
}

func TestWorkspaceSessionCloneProjects(t *testing.T) {
	session := NewWorkspaceSession(uuid.New())
	session.Projects = []*ProjectInstance{NewProjectInstance(testTemplate())}

	clones := session.CloneProjects()
	require.Len(t, clones, 1)
	assert.NotSame(t, session.Projects[0], clones[0])

	clones[0].Config.Purpose = "tampered"
	assert.Empty(t, session.Projects[0].Config.Purpose)
}
