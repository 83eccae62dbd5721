package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowgen/arrowgen/internal/config"
	"github.com/arrowgen/arrowgen/internal/extractor"
	"github.com/arrowgen/arrowgen/internal/model"
	"github.com/arrowgen/arrowgen/internal/resolver"
	"github.com/arrowgen/arrowgen/internal/syntax"
)

// providersFrom parses src, extracts every module, and flattens their
// providers into the single list the resolver operates on.
func providersFrom(t *testing.T, src string) []model.Provider {
	t.Helper()
	f, err := syntax.Parse(src)
	require.NoError(t, err)

	cfg := config.Default()
	modules := extractor.ExtractModules(f, cfg)

	var providers []model.Provider
	for _, m := range modules {
		providers = append(providers, m.Providers...)
	}
	return providers
}

func assertOrderRespectsEdges(t *testing.T, order []model.ID, providers []model.Provider) {
	t.Helper()
	position := make(map[model.ID]int, len(order))
	for i, id := range order {
		position[id] = i
	}
	for _, p := range providers {
		for _, dep := range p.DependencyEdges() {
			assert.Lessf(t, position[dep], position[p.ID()],
				"expected %s to precede %s", dep, p.ID())
		}
	}
}

func TestResolveLinearChain(t *testing.T) {
	providers := providersFrom(t, `
class NetworkModule: SingletonModule {
    var apiClient: APIClient {
        APIClient()
    }
}

class ServiceModule: SingletonModule {
    func provideUserService(apiClient: APIClient) -> UserService {
        UserService(apiClient: apiClient)
    }
}
`)

	g, err := resolver.Build(providers)
	require.NoError(t, err)

	order, err := g.Resolve()
	require.NoError(t, err)
	require.Len(t, order, 2)
	assertOrderRespectsEdges(t, order, providers)
}

func TestResolveNamedDependency(t *testing.T) {
	providers := providersFrom(t, `
class APIModule: SingletonModule {
    @Named("Production")
    var productionClient: APIClient {
        APIClient()
    }

    func provideUserService(apiClient: @Named("Production") APIClient) -> UserService {
        UserService(apiClient: apiClient)
    }
}
`)

	g, err := resolver.Build(providers)
	require.NoError(t, err)

	order, err := g.Resolve()
	require.NoError(t, err)
	assertOrderRespectsEdges(t, order, providers)

	named, ok := g.Provider(model.ID("Production:APIClient"))
	require.True(t, ok)
	assert.Equal(t, "Production", named.OptionalName)
}

func TestResolveDefaultValuedParameterIsNotAnEdge(t *testing.T) {
	providers := providersFrom(t, `
class FactoryModule: TransientModule {
    func provideFactory(delegate: Delegate = Delegate()) -> Factory {
        Factory(delegate: delegate)
    }
}
`)

	g, err := resolver.Build(providers)
	require.NoError(t, err)

	order, err := g.Resolve()
	require.NoError(t, err)
	require.Len(t, order, 1)
	assert.Equal(t, model.ID("_:Factory"), order[0])
}

func TestBuildReportsMissingDependency(t *testing.T) {
	providers := providersFrom(t, `
class ServiceModule: SingletonModule {
    func provideUserService(apiClient: APIClient) -> UserService {
        UserService(apiClient: apiClient)
    }
}
`)

	_, err := resolver.Build(providers)
	require.Error(t, err)

	var missing *resolver.MissingDependenciesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []model.ID{"_:APIClient"}, missing.Missing)
	assert.Equal(t, "Missing dependencies: _:APIClient", err.Error())
}

func TestBuildReportsDuplicateDependency(t *testing.T) {
	providers := providersFrom(t, `
class FirstModule: SingletonModule {
    var logger: Logger {
        Logger()
    }
}

class SecondModule: SingletonModule {
    var logger: Logger {
        Logger()
    }
}
`)

	_, err := resolver.Build(providers)
	require.Error(t, err)

	var duplicate *resolver.DuplicateDependenciesError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, []model.ID{"_:Logger"}, duplicate.Duplicates)
	assert.Equal(t, "Duplicate dependencies found: _:Logger", err.Error())
}

func TestResolveReportsCircularDependency(t *testing.T) {
	providers := providersFrom(t, `
class CyclicModule: SingletonModule {
    func provideA(b: B) -> A {
        A(b: b)
    }
    func provideB(a: A) -> B {
        B(a: a)
    }
}
`)

	g, err := resolver.Build(providers)
	require.NoError(t, err)

	_, err = g.Resolve()
	require.Error(t, err)

	var cycle *resolver.CircularDependencyError
	require.ErrorAs(t, err, &cycle)
}
