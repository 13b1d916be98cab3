// Package manifest loads and validates hail.toml, the per-package build
// manifest consumed by the hailc driver.
package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
)

// LanguageVersion is the toolchain version checked against a manifest's
// optional hail constraint.
const LanguageVersion = "0.1.0"

// SourceExt is the file extension of Hail source units.
const SourceExt = ".hl"

// Package identifies the package being built.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Hail    string `toml:"hail"` // optional toolchain constraint, e.g. ">= 0.1"
}

// Manifest is the decoded hail.toml.
type Manifest struct {
	Package Package  `toml:"package"`
	Sources []string `toml:"sources"` // directories searched for source units

	dir string
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Parse decodes and validates manifest text.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Package.Name == "" {
		return fmt.Errorf("package.name is required")
	}
	if strings.ContainsAny(m.Package.Name, " \t") {
		return fmt.Errorf("package.name %q must not contain whitespace", m.Package.Name)
	}

	if m.Package.Version == "" {
		return fmt.Errorf("package.version is required")
	}
	if _, err := semver.NewVersion(m.Package.Version); err != nil {
		return fmt.Errorf("package.version %q: %w", m.Package.Version, err)
	}

	if m.Package.Hail != "" {
		constraint, err := semver.NewConstraint(m.Package.Hail)
		if err != nil {
			return fmt.Errorf("package.hail %q: %w", m.Package.Hail, err)
		}
		if !constraint.Check(semver.MustParse(LanguageVersion)) {
			return fmt.Errorf("package.hail %q excludes toolchain version %s", m.Package.Hail, LanguageVersion)
		}
	}

	if len(m.Sources) == 0 {
		m.Sources = []string{"src"}
	}
	return nil
}

// SourceFiles walks the manifest's source directories and returns every
// Hail source unit, in lexical order per directory.
func (m *Manifest) SourceFiles() ([]string, error) {
	var files []string
	for _, src := range m.Sources {
		root := src
		if !filepath.IsAbs(root) {
			root = filepath.Join(m.dir, src)
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == SourceExt {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("source directory %s: %w", src, err)
		}
	}
	return files, nil
}
