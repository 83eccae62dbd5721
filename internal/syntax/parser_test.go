package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowgen/arrowgen/internal/syntax"
)

func TestParseImportsAndClass(t *testing.T) {
	src := `
import Foundation

class NetworkModule: SingletonModule {
    var apiClient: APIClient {
        APIClient()
    }
}
`
	f, err := syntax.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"Foundation"}, f.Imports)
	require.Len(t, f.Declarations, 1)

	td, ok := f.Declarations[0].(*syntax.TypeDecl)
	require.True(t, ok)
	assert.Equal(t, syntax.KeywordClass, td.Keyword)
	assert.Equal(t, "NetworkModule", td.Name)
	assert.Equal(t, []string{"SingletonModule"}, td.Inherits)
	require.Len(t, td.Members, 1)

	v, ok := td.Members[0].(*syntax.VariableDecl)
	require.True(t, ok)
	require.Len(t, v.Bindings, 1)
	assert.Equal(t, "apiClient", v.Bindings[0].Pattern)
	assert.Equal(t, "APIClient", v.Bindings[0].TypeAnnotation)
	assert.False(t, v.Bindings[0].HasInitializer)
}

func TestParseStoredPropertyIsDisqualified(t *testing.T) {
	src := `
struct ConfigModule: TransientModule {
    var flag: Bool = true
}
`
	f, err := syntax.Parse(src)
	require.NoError(t, err)
	td := f.Declarations[0].(*syntax.TypeDecl)
	v := td.Members[0].(*syntax.VariableDecl)
	assert.True(t, v.Bindings[0].HasInitializer)
}

func TestParseFunctionWithDefaultParameter(t *testing.T) {
	src := `
class FactoryModule: TransientModule {
    func provideFactory(delegate: Delegate = Delegate()) -> Factory {
        Factory(delegate: delegate)
    }
}
`
	f, err := syntax.Parse(src)
	require.NoError(t, err)
	td := f.Declarations[0].(*syntax.TypeDecl)
	fn := td.Members[0].(*syntax.FunctionDecl)
	assert.Equal(t, "provideFactory", fn.Name)
	assert.Equal(t, "Factory", fn.ReturnType)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "Delegate", fn.Parameters[0].Type)
	assert.Equal(t, "Delegate()", fn.Parameters[0].DefaultValue)
}

func TestParseNamedAttributeOnPropertyAndParameter(t *testing.T) {
	src := `
class APIModule: SingletonModule {
    @Named("Production")
    var productionClient: APIClient {
        APIClient()
    }

    func provideUserService(apiClient: @Named("Production") APIClient) -> UserService {
        UserService(apiClient: apiClient)
    }
}
`
	f, err := syntax.Parse(src)
	require.NoError(t, err)
	td := f.Declarations[0].(*syntax.TypeDecl)
	require.Len(t, td.Members, 2)

	v := td.Members[0].(*syntax.VariableDecl)
	require.Len(t, v.Attributes, 1)
	assert.Equal(t, "Named", v.Attributes[0].Name)
	assert.Equal(t, "Production", v.Attributes[0].StringArg)

	fn := td.Members[1].(*syntax.FunctionDecl)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "APIClient", fn.Parameters[0].Type)
	require.Len(t, fn.Parameters[0].Attributes, 1)
	assert.Equal(t, "Production", fn.Parameters[0].Attributes[0].StringArg)
}

func TestParseExtensionUsesExtendedTypeAsName(t *testing.T) {
	src := `
extension UserRepository: SingletonModule {
    func provideRepo() -> Repo {
        Repo()
    }
}
`
	f, err := syntax.Parse(src)
	require.NoError(t, err)
	td := f.Declarations[0].(*syntax.TypeDecl)
	assert.Equal(t, syntax.KeywordExtension, td.Keyword)
	assert.Equal(t, "UserRepository", td.Name)
}

func TestParseUnlabeledParameter(t *testing.T) {
	src := `
class Module: TransientModule {
    func make(_ logger: Logger) -> Service {
        Service(logger: logger)
    }
}
`
	f, err := syntax.Parse(src)
	require.NoError(t, err)
	td := f.Declarations[0].(*syntax.TypeDecl)
	fn := td.Members[0].(*syntax.FunctionDecl)
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "_", fn.Parameters[0].Label)
	assert.Equal(t, "logger", fn.Parameters[0].Name)
}
