package preset

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rkohler/quadsheet/pkg/errors"
)

// Manager resolves presets by name, layering user-defined presets over the
// built-in registry.
type Manager struct {
	user map[string]Preset
}

// Load creates a Manager with user presets read from the YAML file at path.
// A missing file is not an error; the Manager then serves built-ins only.
func Load(path string) (*Manager, error) {
	m := &Manager{user: map[string]Preset{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err,
			"read presets file %s", path)
	}

	if err := yaml.Unmarshal(data, &m.user); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err,
			"parse presets file %s", path)
	}
	return m, nil
}

// Get returns the preset with the given name. User presets shadow built-ins.
func (m *Manager) Get(name string) (Preset, bool) {
	if p, ok := m.user[name]; ok {
		return p, true
	}
	p, ok := builtin[name]
	return p, ok
}

// Entry is one row of a preset listing.
type Entry struct {
	Name        string
	Description string
}

// List returns all available presets sorted by name, user presets shadowing
// built-ins of the same name.
func (m *Manager) List() []Entry {
	merged := make(map[string]string, len(builtin)+len(m.user))
	for name, p := range builtin {
		merged[name] = p.Description
	}
	for name, p := range m.user {
		desc := p.Description
		if desc == "" {
			desc = "Custom preset"
		}
		merged[name] = desc
	}

	entries := make([]Entry, 0, len(merged))
	for name, desc := range merged {
		entries = append(entries, Entry{Name: name, Description: desc})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Resolve applies a preset: the {input} placeholder is substituted with
// inputPath, absent pages default to "last", and any quadrant present in
// overrides replaces the preset's entry for that quadrant wholesale. The
// remaining preset quadrants are untouched. Unknown preset names fail with
// PRESET_NOT_FOUND.
func (m *Manager) Resolve(name, inputPath string, overrides map[int]Source) (map[int]Source, error) {
	p, ok := m.Get(name)
	if !ok {
		return nil, errors.New(errors.ErrCodePresetNotFound, "preset not found: %s", name)
	}

	result := make(map[int]Source, len(p.Quadrants)+len(overrides))
	for quad, src := range p.Quadrants {
		if _, overridden := overrides[quad]; overridden {
			continue
		}
		if src.Source == InputPlaceholder {
			src.Source = inputPath
		}
		if src.Page == "" {
			src.Page = "last"
		}
		result[quad] = src
	}
	for quad, src := range overrides {
		result[quad] = src
	}
	return result, nil
}
