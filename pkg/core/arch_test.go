package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/RamilHin/my-linter"

// importsOf returns the import paths of every non-test Go file in dir.
func importsOf(t *testing.T, dir string) map[string][]string {
	t.Helper()
	fset := token.NewFileSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	imports := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			imports[path] = append(imports[path], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return imports
}

// TestCoreImportsOnly verifies pkg/core only imports the standard library.
func TestCoreImportsOnly(t *testing.T) {
	for file, imports := range importsOf(t, ".") {
		for _, importPath := range imports {
			// Allow stdlib (no dots in path)
			if strings.Contains(importPath, ".") {
				t.Errorf("%s imports forbidden package: %s", file, importPath)
			}
		}
	}
}

// TestPkgDoesNotImportInternal verifies no public package depends on
// internal/ packages.
func TestPkgDoesNotImportInternal(t *testing.T) {
	err := filepath.WalkDir("..", func(dir string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		for file, imports := range importsOf(t, dir) {
			for _, importPath := range imports {
				if strings.HasPrefix(importPath, modulePath+"/internal") {
					t.Errorf("%s imports internal package: %s", file, importPath)
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk pkg: %v", err)
	}
}
