// Package storagetest provides a conformance test suite for validating
// storage.Storage implementations against the contract the steward relies on.
//
// The suite validates interface contracts, not backend-specific behavior.
// Every subtest receives a fresh storage and an absolute, existing base
// directory to work under, mirroring how the steward hands absolute in-root
// paths to its storage.
//
// Example usage:
//
//	func TestMyStorage(t *testing.T) {
//	    storagetest.TestSuite(t, func(t *testing.T) (storage.Storage, string) {
//	        return mystorage.New(), t.TempDir()
//	    })
//	}
package storagetest

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/jmgilman/go/steward/storage"
)

// Factory returns a fresh storage and an absolute base directory that
// already exists in it.
type Factory func(t *testing.T) (storage.Storage, string)

// Config configures the suite to match backend behavior characteristics.
type Config struct {
	// NoSymlinks indicates the backend cannot create symbolic links through
	// the test helper, so link-related checks are skipped.
	NoSymlinks bool

	// Symlink creates a symbolic link for link-related checks. Backends that
	// support links must provide it unless NoSymlinks is set.
	Symlink func(oldname, newname string) error

	// SkipTests lists specific test names to skip.
	// Format: "Group/SubTest" (e.g. "ManageFS/RenameAcrossDirectories").
	SkipTests []string
}

// TestSuite runs all conformance tests with a default configuration that
// skips symbolic link checks.
func TestSuite(t *testing.T, newStorage Factory) {
	TestSuiteWithConfig(t, newStorage, Config{NoSymlinks: true})
}

// TestSuiteWithConfig runs all conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newStorage Factory, config Config) {
	groups := []struct {
		name  string
		tests map[string]func(t *testing.T, store storage.Storage, base string, config Config)
	}{
		{"ReadFS", readTests},
		{"WriteFS", writeTests},
		{"ManageFS", manageTests},
	}

	for _, group := range groups {
		t.Run(group.name, func(t *testing.T) {
			names := make([]string, 0, len(group.tests))
			for name := range group.tests {
				names = append(names, name)
			}
			slices.Sort(names)

			for _, name := range names {
				t.Run(name, func(t *testing.T) {
					if slices.Contains(config.SkipTests, group.name+"/"+name) {
						t.Skip("Skipped by provider configuration")
						return
					}
					store, base := newStorage(t)
					group.tests[name](t, store, base, config)
				})
			}
		})
	}
}

// join builds an absolute path under base.
func join(base string, elem ...string) string {
	return filepath.Join(append([]string{base}, elem...)...)
}
