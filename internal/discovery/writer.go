package discovery

import (
	"os"
	"path/filepath"
)

// GeneratedFileName is the sentinel output filename a generation run
// always writes to, regardless of target name.
const GeneratedFileName = "dependencies.generated.swift"

// OutputPath resolves where the generated file belongs. When isPackage
// is true the file is written under Sources/<targetName>, matching a
// Swift package target's own layout; otherwise it is written directly
// under projectPath.
func OutputPath(projectPath, targetName string, isPackage bool) string {
	if isPackage {
		return filepath.Join(projectPath, "Sources", targetName, GeneratedFileName)
	}
	return filepath.Join(projectPath, GeneratedFileName)
}

// Write renders contents to the resolved output path, creating any
// missing parent directories. When isPackage is true, the write also
// records a reference to the generated file in the project's minimal
// package manifest model (see manifest.go), keyed by targetName.
func Write(projectPath, targetName string, isPackage bool, contents string) (string, error) {
	path := OutputPath(projectPath, targetName, isPackage)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return "", err
	}

	if isPackage {
		if err := recordGeneratedFile(projectPath, targetName, path); err != nil {
			return "", err
		}
	}

	return path, nil
}
