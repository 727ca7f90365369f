package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

func TestGetCatalogFullListing(t *testing.T) {
	svc := NewCatalogService()

	res, err := svc.GetCatalog(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, res.Categories)

	names := make([]string, 0, len(res.Categories))
	for _, category := range res.Categories {
		names = append(names, category.Name)
		assert.NotEmpty(t, category.Templates, category.Name)
	}
	assert.Contains(t, names, "frontend")
	assert.Contains(t, names, "backend")
	assert.Contains(t, names, "freehosters")
}

func TestGetCatalogSearchFiltersByNameAndTip(t *testing.T) {
	svc := NewCatalogService()

	res, err := svc.GetCatalog(context.Background(), "ReAcT")
	require.NoError(t, err)
	require.NotEmpty(t, res.Categories)

	for _, category := range res.Categories {
		// Searching hides categories with no matching templates.
		require.NotEmpty(t, category.Templates, category.Name)
		for _, tpl := range category.Templates {
			assert.True(t,
				containsFold(tpl.Name, "react") || containsFold(tpl.Tip, "react"),
				"%s/%s", category.Name, tpl.Id)
		}
	}

	// React appears in more than one category, each keeping its own entry.
	matched := 0
	for _, category := range res.Categories {
		matched += len(category.Templates)
	}
	assert.GreaterOrEqual(t, matched, 2)
}

func TestGetCatalogSearchMatchesTipText(t *testing.T) {
	svc := NewCatalogService()

	// "bundlers" only appears in the React tip, never in a template name.
	res, err := svc.GetCatalog(context.Background(), "bundlers")
	require.NoError(t, err)
	require.NotEmpty(t, res.Categories)

	found := false
	for _, category := range res.Categories {
		for _, tpl := range category.Templates {
			assert.True(t, containsFold(tpl.Tip, "bundlers"), "%s/%s", category.Name, tpl.Id)
			if containsFold(tpl.Name, "react") {
				found = true
			}
		}
	}
	assert.True(t, found, "expected the React template to match on its tip")
}

func TestGetCatalogSearchWithoutMatches(t *testing.T) {
	svc := NewCatalogService()

	res, err := svc.GetCatalog(context.Background(), "fortran")
	require.NoError(t, err)
	assert.Empty(t, res.Categories)
}

func TestGetCatalogTemplatesCarryPlaceholders(t *testing.T) {
	svc := NewCatalogService()

	res, err := svc.GetCatalog(context.Background(), "react")
	require.NoError(t, err)
	require.NotEmpty(t, res.Categories)
	tpl := res.Categories[0].Templates[0]

	for _, field := range placeholderFields {
		assert.Contains(t, tpl.Placeholders, field)
	}
}

func TestGetRoadmap(t *testing.T) {
	svc := NewCatalogService()

	phases, err := svc.GetRoadmap(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, phases)

	for _, phase := range phases {
		assert.NotEmpty(t, phase.Id)
		assert.NotEmpty(t, phase.Name)
		assert.NotEmpty(t, phase.Actions)
	}
}
