package emitter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/arrowgen/arrowgen/internal/config"
	"github.com/arrowgen/arrowgen/internal/emitter"
	"github.com/arrowgen/arrowgen/internal/extractor"
	"github.com/arrowgen/arrowgen/internal/model"
	"github.com/arrowgen/arrowgen/internal/presenter"
	"github.com/arrowgen/arrowgen/internal/resolver"
	"github.com/arrowgen/arrowgen/internal/syntax"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	f, err := syntax.Parse(src)
	require.NoError(t, err)

	cfg := config.Default()
	modules := extractor.ExtractModules(f, cfg)

	var providers []model.Provider
	for _, m := range modules {
		providers = append(providers, m.Providers...)
	}

	g, err := resolver.Build(providers)
	require.NoError(t, err)
	order, err := g.Resolve()
	require.NoError(t, err)

	doc := presenter.Present(modules, order, cfg)
	return emitter.Emit(doc)
}

func TestEmitLinearChain(t *testing.T) {
	got := generate(t, `
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

	want := `import Swinject

extension Container {
  func register() {
    let networkModule = NetworkModule()
    let serviceModule = ServiceModule()

    self.register(APIClient.self, objectScope: .singleton) { resolver in
      networkModule.apiClient
    }

    self.register(UserService.self, objectScope: .singleton) { resolver in
      serviceModule.provideUserService(
        resolver.resolve(APIClient.self)!
      )
    }
  }
}
`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Emit mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitNamedDependencyUsesNamedResolve(t *testing.T) {
	got := generate(t, `
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

	want := `import Swinject

extension Container {
  func register() {
    let apiModule = APIModule()

    self.register(APIClient.self, name: "Production", objectScope: .singleton) { resolver in
      apiModule.productionClient
    }

    self.register(UserService.self, objectScope: .singleton) { resolver in
      apiModule.provideUserService(
        resolver.resolve(APIClient.self, name: "Production")!
      )
    }
  }
}
`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Emit mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitTransientScopeAndUnlabeledParameter(t *testing.T) {
	got := generate(t, `
class FactoryModule: TransientModule {
    func provideFactory(_ delegate: Delegate) -> Factory {
        Factory(delegate: delegate)
    }
}

class DelegateModule: TransientModule {
    func provideDelegate() -> Delegate {
        Delegate()
    }
}
`)

	want := `import Swinject

extension Container {
  func register() {
    let delegateModule = DelegateModule()
    let factoryModule = FactoryModule()

    self.register(Delegate.self, objectScope: .transient) { resolver in
      delegateModule.provideDelegate()
    }

    self.register(Factory.self, objectScope: .transient) { resolver in
      factoryModule.provideFactory(
        resolver.resolve(Delegate.self)!
      )
    }
  }
}
`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Emit mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitMultipleParametersOnSeparateLines(t *testing.T) {
	got := generate(t, `
class ServiceModule: SingletonModule {
    func provideUserService(_ apiClient: APIClient, logger: Logger) -> UserService {
        UserService(apiClient: apiClient, logger: logger)
    }
}

class NetworkModule: SingletonModule {
    var apiClient: APIClient {
        APIClient()
    }
}

class LoggingModule: SingletonModule {
    var logger: Logger {
        Logger()
    }
}
`)

	want := `import Swinject

extension Container {
  func register() {
    let networkModule = NetworkModule()
    let loggingModule = LoggingModule()
    let serviceModule = ServiceModule()

    self.register(APIClient.self, objectScope: .singleton) { resolver in
      networkModule.apiClient
    }

    self.register(Logger.self, objectScope: .singleton) { resolver in
      loggingModule.logger
    }

    self.register(UserService.self, objectScope: .singleton) { resolver in
      serviceModule.provideUserService(
        resolver.resolve(APIClient.self)!,
        logger: resolver.resolve(Logger.self)!
      )
    }
  }
}
`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Emit mismatch (-want +got):\n%s", diff)
	}
}
