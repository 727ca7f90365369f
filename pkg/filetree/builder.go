// Package filetree builds the synthetic folder/file preview for a project
// instance from its template boilerplate plus the conventional entries added
// for frontend-framework projects.
package filetree

import (
	"sort"
	"strings"

	"project-composer-be/internal/entity"
)

type NodeType string

const (
	NodeFolder NodeType = "folder"
	NodeFile   NodeType = "file"
)

type Node struct {
	Name     string   `json:"name"`
	Type     NodeType `json:"type"`
	Content  string   `json:"content,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

// Build produces the root's children for an instance. Building twice from
// the same instance yields structurally identical trees: boilerplate paths
// are visited in sorted order and folders are reused by name, so insertion
// order is stable.
func Build(instance *entity.ProjectInstance) []*Node {
	if instance == nil {
		return []*Node{}
	}

	root := &Node{
		Name:     rootName(instance),
		Type:     NodeFolder,
		Children: []*Node{},
	}

	paths := make([]string, 0, len(instance.Boilerplate))
	for path := range instance.Boilerplate {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		segments := strings.Split(path, "/")
		fileName := segments[len(segments)-1]
		folder := findOrCreateFolder(root, segments[:len(segments)-1])
		folder.Children = append(folder.Children, &Node{
			Name:    fileName,
			Type:    NodeFile,
			Content: instance.Boilerplate[path],
		})
	}

	if isFrontendFramework(instance.TemplateId) {
		augment(root, instance)
	}

	return root.Children
}

func rootName(instance *entity.ProjectInstance) string {
	if instance.Config.ProjectName != "" {
		return instance.Config.ProjectName
	}
	// Fall back to the first path segment of the template's structure hint.
	return strings.SplitN(strings.TrimSuffix(instance.Structure, "/"), "/", 2)[0]
}

// findOrCreateFolder walks the segment chain, reusing folders by exact name
// and appending missing ones in order. Empty segments are skipped so paths
// with a trailing slash behave.
func findOrCreateFolder(root *Node, segments []string) *Node {
	current := root
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		var next *Node
		for _, child := range current.Children {
			if child.Type == NodeFolder && child.Name == segment {
				next = child
				break
			}
		}
		if next == nil {
			next = &Node{Name: segment, Type: NodeFolder, Children: []*Node{}}
			current.Children = append(current.Children, next)
		}
		current = next
	}
	return current
}

// isFrontendFramework recognizes the template families that get the
// conventional src/public/tests augmentation.
func isFrontendFramework(templateId string) bool {
	return strings.Contains(templateId, "react")
}

func augment(root *Node, instance *entity.ProjectInstance) {
	cfg := instance.Config
	isTs := cfg.Language == entity.LanguageTypescript
	ext := "js"
	appExt := "jsx"
	if isTs {
		ext = "ts"
		appExt = "tsx"
	}

	src := findOrCreateFolder(root, []string{"src"})
	for _, name := range []string{"components", "pages", "hooks", "utils"} {
		findOrCreateFolder(src, []string{name})
	}
	src.Children = append(src.Children,
		&Node{
			Name:    "App." + appExt,
			Type:    NodeFile,
			Content: "import React from 'react';\n\nfunction App() { return <h1>Hello, " + cfg.ProjectName + "!</h1>; }",
		},
		&Node{
			Name:    "main." + ext,
			Type:    NodeFile,
			Content: "import React from 'react';\nimport ReactDOM from 'react-dom/client';\nimport App from './App';\n\nReactDOM.createRoot(document.getElementById('root')).render(<React.StrictMode><App /></React.StrictMode>);",
		},
	)

	public := findOrCreateFolder(root, []string{"public"})
	public.Children = append(public.Children, &Node{
		Name:    "index.html",
		Type:    NodeFile,
		Content: "<!DOCTYPE html>\n<html lang=\"en\">\n<body>\n<div id=\"root\"></div>\n</body>\n</html>",
	})

	root.Children = append(root.Children, &Node{
		Name:    "README.md",
		Type:    NodeFile,
		Content: "# " + cfg.ProjectName,
	})

	if cfg.TestingFramework != entity.TestingNone {
		// jest uses *.test.js; every other enabled framework, including
		// values we do not recognize, gets *.spec.js.
		testExt := "spec.js"
		if cfg.TestingFramework == entity.TestingJest {
			testExt = "test.js"
		}
		tests := findOrCreateFolder(root, []string{"tests"})
		tests.Children = append(tests.Children, &Node{
			Name:    "App." + testExt,
			Type:    NodeFile,
			Content: "import { render, screen } from '@testing-library/react';\nimport App from '../src/App';\n\ntest('renders hello message', () => {\n  render(<App />);\n  expect(screen.getByText(/hello/i)).toBeInTheDocument();\n});",
		})
	}
}
