package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrowgen/arrowgen/internal/model"
)

func TestProviderID(t *testing.T) {
	p := model.Provider{ReturnType: "APIClient"}
	assert.Equal(t, model.ID("_:APIClient"), p.ID())

	named := model.Provider{ReturnType: "APIClient", OptionalName: "Production"}
	assert.Equal(t, model.ID("Production:APIClient"), named.ID())
}

func TestProviderRegistrationName(t *testing.T) {
	p := model.Provider{ReturnType: "APIClient"}
	assert.Equal(t, "APIClient", p.RegistrationName())

	named := model.Provider{ReturnType: "APIClient", OptionalName: "Production"}
	assert.Equal(t, "Production", named.RegistrationName())
}

func TestParameterID(t *testing.T) {
	p := model.Parameter{Type: "APIClient"}
	assert.Equal(t, model.ID("_:APIClient"), p.ID())

	named := model.Parameter{Type: "APIClient", ReferencedName: "Production"}
	assert.Equal(t, model.ID("Production:APIClient"), named.ID())
}

func TestDependencyEdgesPrunesDefaults(t *testing.T) {
	p := model.Provider{
		ReturnType: "Factory",
		Parameters: []model.Parameter{
			{Type: "Delegate", Label: "delegate", DefaultValue: "Delegate()"},
			{Type: "Logger", Label: "logger"},
		},
	}
	edges := p.DependencyEdges()
	assert.Equal(t, []model.ID{model.NewID("", "Logger")}, edges)
}

func TestModuleInstanceNameLowercasesFirstLetter(t *testing.T) {
	m := model.Module{Name: "NetworkModule"}
	assert.Equal(t, "networkModule", m.InstanceName())
}

func TestParameterIsUnlabeled(t *testing.T) {
	p := model.Parameter{Label: "_", Type: "Logger"}
	assert.True(t, p.IsUnlabeled())

	labeled := model.Parameter{Label: "logger", Type: "Logger"}
	assert.False(t, labeled.IsUnlabeled())
}
