package binding

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a parsed bindings file.
type File struct {
	Bindings []Binding `yaml:"bindings"`
}

// Binding binds one local project to a remote project.
type Binding struct {
	// Project is the local project name.
	Project string `yaml:"project"`

	// ProjectKey is the remote project key.
	ProjectKey string `yaml:"projectKey"`

	// ModuleKey identifies the project within the remote project and must be
	// unique per ProjectKey. Defaults to ProjectKey.
	ModuleKey string `yaml:"moduleKey,omitempty"`
}

// LoadError describes a bindings file that could not be loaded.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse parses and validates bindings from YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	seen := make(map[string]bool, len(f.Bindings))
	modules := make(map[[2]string]string, len(f.Bindings))
	for i := range f.Bindings {
		b := &f.Bindings[i]
		if b.Project == "" {
			return nil, &LoadError{Message: fmt.Sprintf("binding %d: project is required", i)}
		}
		if b.ProjectKey == "" {
			return nil, &LoadError{Message: fmt.Sprintf("binding %q: projectKey is required", b.Project)}
		}
		if seen[b.Project] {
			return nil, &LoadError{Message: fmt.Sprintf("binding %q: duplicate project", b.Project)}
		}
		seen[b.Project] = true

		if b.ModuleKey == "" {
			b.ModuleKey = b.ProjectKey
		}

		// Membership is counted per module key, so two projects sharing one
		// would release the remote subscription for each other.
		key := [2]string{b.ProjectKey, b.ModuleKey}
		if other, dup := modules[key]; dup {
			return nil, &LoadError{Message: fmt.Sprintf(
				"binding %q: moduleKey %q of projectKey %q already used by %q", b.Project, b.ModuleKey, b.ProjectKey, other)}
		}
		modules[key] = b.Project
	}

	return &f, nil
}

// Load reads and parses a bindings file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	f, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, err
	}
	return f, nil
}
