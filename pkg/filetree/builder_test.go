package filetree

import (
	"reflect"
	"testing"

	"project-composer-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instanceFor(templateId, name string) *entity.ProjectInstance {
	inst := entity.NewProjectInstance(entity.ProjectTemplate{
		Id:        templateId,
		Name:      name,
		Structure: "my-app/",
		Boilerplate: map[string]string{
			"package.json": "{}",
		},
	})
	return inst
}

func findChild(nodes []*Node, name string) *Node {
	for _, n := range nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

func TestBuildNilInstance(t *testing.T) {
	nodes := Build(nil)
	assert.Empty(t, nodes)
}

func TestBuildNestsBoilerplatePaths(t *testing.T) {
	inst := entity.NewProjectInstance(entity.ProjectTemplate{
		Id:        "express",
		Name:      "Express.js",
		Structure: "express-api/",
		Boilerplate: map[string]string{
			"package.json":         "{}",
			"src/routes/index.js":  "router",
			"src/routes/users.js":  "router",
			"src/controllers/c.js": "ctrl",
		},
	})

	nodes := Build(inst)

	assert.NotNil(t, findChild(nodes, "package.json"))

	src := findChild(nodes, "src")
	require.NotNil(t, src)
	assert.Equal(t, NodeFolder, src.Type)

	routes := findChild(src.Children, "routes")
	require.NotNil(t, routes)
	assert.Len(t, routes.Children, 2)
	assert.Equal(t, "router", routes.Children[0].Content)

	// Sibling folders under src share one parent, never duplicate it.
	assert.NotNil(t, findChild(src.Children, "controllers"))
	count := 0
	for _, n := range nodes {
		if n.Name == "src" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildIsDeterministic(t *testing.T) {
	inst := entity.NewProjectInstance(entity.ProjectTemplate{
		Id:        "express",
		Name:      "Express.js",
		Structure: "express-api/",
		Boilerplate: map[string]string{
			"b/two.js":   "2",
			"a/one.js":   "1",
			"c/three.js": "3",
			"root.js":    "0",
		},
	})

	first := Build(inst)
	for i := 0; i < 20; i++ {
		assert.True(t, reflect.DeepEqual(first, Build(inst)))
	}

	// Sorted path order drives insertion order.
	assert.Equal(t, "a", first[0].Name)
	assert.Equal(t, "b", first[1].Name)
	assert.Equal(t, "c", first[2].Name)
	assert.Equal(t, "root.js", first[3].Name)
}

func TestBuildRootNameFallsBackToStructure(t *testing.T) {
	inst := instanceFor("express", "Express.js")
	inst.Structure = "express-api/"

	// No configured name: nothing observable at the children level, but a
	// named project must not change the child set either.
	unnamed := Build(inst)
	inst.Config.ProjectName = "billing"
	named := Build(inst)
	assert.Equal(t, len(unnamed), len(named))
}

func TestBuildReactAugmentationJavascript(t *testing.T) {
	inst := instanceFor("react", "React.js")
	inst.Config.ProjectName = "demo"

	nodes := Build(inst)

	src := findChild(nodes, "src")
	require.NotNil(t, src)
	for _, folder := range []string{"components", "pages", "hooks", "utils"} {
		assert.NotNil(t, findChild(src.Children, folder), folder)
	}

	app := findChild(src.Children, "App.jsx")
	require.NotNil(t, app)
	assert.Contains(t, app.Content, "Hello, demo!")
	assert.NotNil(t, findChild(src.Children, "main.js"))

	public := findChild(nodes, "public")
	require.NotNil(t, public)
	assert.NotNil(t, findChild(public.Children, "index.html"))

	readme := findChild(nodes, "README.md")
	require.NotNil(t, readme)
	assert.Equal(t, "# demo", readme.Content)

	// Testing framework defaults to none, so no tests folder appears.
	assert.Nil(t, findChild(nodes, "tests"))
}

func TestBuildReactAugmentationTypescript(t *testing.T) {
	inst := instanceFor("react", "React.js")
	inst.Config.Language = entity.LanguageTypescript

	nodes := Build(inst)
	src := findChild(nodes, "src")
	require.NotNil(t, src)
	assert.NotNil(t, findChild(src.Children, "App.tsx"))
	assert.NotNil(t, findChild(src.Children, "main.ts"))
	assert.Nil(t, findChild(src.Children, "App.jsx"))
}

func TestBuildTestFileNamePerFramework(t *testing.T) {
	tests := []struct {
		framework entity.TestingFramework
		wantFile  string
	}{
		{entity.TestingJest, "App.test.js"},
		{entity.TestingVitest, "App.spec.js"},
		{entity.TestingCypress, "App.spec.js"},
	}

	for _, tt := range tests {
		t.Run(string(tt.framework), func(t *testing.T) {
			inst := instanceFor("react", "React.js")
			inst.Config.TestingFramework = tt.framework

			nodes := Build(inst)
			testsDir := findChild(nodes, "tests")
			require.NotNil(t, testsDir)
			assert.NotNil(t, findChild(testsDir.Children, tt.wantFile))
		})
	}
}

func TestBuildNonReactTemplateNotAugmented(t *testing.T) {
	inst := instanceFor("vue", "Vue.js")
	inst.Config.TestingFramework = entity.TestingJest

	nodes := Build(inst)
	assert.Nil(t, findChild(nodes, "public"))
	assert.Nil(t, findChild(nodes, "README.md"))
	assert.Nil(t, findChild(nodes, "tests"))
}

func TestBuildReactVariantsAugmented(t *testing.T) {
	// react-native and netlify-react carry the react family marker.
	for _, id := range []string{"react-native", "netlify-react"} {
		inst := instanceFor(id, id)
		nodes := Build(inst)
		assert.NotNil(t, findChild(nodes, "public"), id)
	}
}

func TestBuildAugmentationReusesBoilerplateFolders(t *testing.T) {
	inst := entity.NewProjectInstance(entity.ProjectTemplate{
		Id:        "react",
		Name:      "React.js",
		Structure: "my-react-app/",
		Boilerplate: map[string]string{
			"src/App.jsx": "boilerplate app",
		},
	})

	nodes := Build(inst)

	srcCount := 0
	for _, n := range nodes {
		if n.Name == "src" && n.Type == NodeFolder {
			srcCount++
		}
	}
	assert.Equal(t, 1, srcCount)
}
