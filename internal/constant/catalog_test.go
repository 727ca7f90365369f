package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTemplateScopedToCategory(t *testing.T) {
	tpl, found := FindTemplate("frontend", "react")
	require.True(t, found)
	assert.Equal(t, "React.js", tpl.Name)

	_, found = FindTemplate("backend", "react")
	assert.False(t, found)

	_, found = FindTemplate("frontend", "nope")
	assert.False(t, found)
}

func TestFindTemplateReturnsACopy(t *testing.T) {
	tpl, found := FindTemplate("frontend", "react")
	require.True(t, found)
	require.NotEmpty(t, tpl.Boilerplate)

	tpl.Boilerplate["package.json"] = "tampered"

	again, found := FindTemplate("frontend", "react")
	require.True(t, found)
	assert.NotEqual(t, "tampered", again.Boilerplate["package.json"])
}

func TestFindTemplateAnyCategoryUsesBucketOrder(t *testing.T) {
	// terraform exists in devops and (as terraform-pulumi) in
	// cloud-infrastructure; the bare id resolves to the devops entry.
	tpl, found := FindTemplateAnyCategory("terraform")
	require.True(t, found)
	assert.Equal(t, "Terraform", tpl.Name)

	_, found = FindTemplateAnyCategory("nope")
	assert.False(t, found)
}

func TestNextStepsSubstitutesProjectName(t *testing.T) {
	steps := NextSteps("react", "demo")
	assert.Contains(t, steps, "cd demo")
	assert.Contains(t, steps, "npm start")
	assert.NotContains(t, steps, "%NAME%")
}

func TestNextStepsDefaultsProjectName(t *testing.T) {
	steps := NextSteps("react", "")
	assert.Contains(t, steps, "cd my-project")
}

func TestNextStepsFirebaseWalkthrough(t *testing.T) {
	steps := NextSteps("firebase-hosting", "demo")
	assert.Contains(t, steps, "Firebase CLI")
	assert.Contains(t, steps, "cd demo")
}

func TestNextStepsUnknownTemplateFallsBack(t *testing.T) {
	steps := NextSteps("wasm", "demo")
	assert.Equal(t, "Consult the framework's documentation for next steps.", steps)
}
