// Package preset provides named quadrant configuration templates.
//
// A preset maps quadrant numbers (1–4) to a source document, a page
// selector, and a rotation. The source may be the {input} placeholder,
// replaced with the resolved input file when the preset is applied. User
// presets loaded from a YAML file shadow built-ins by name; there is no
// inheritance between presets.
package preset

// InputPlaceholder marks a preset source to be replaced with the resolved
// input file at generation time.
const InputPlaceholder = "{input}"

// Source describes one quadrant's input: where it comes from, which page to
// use, and how it is rotated (degrees, counter-clockwise positive).
type Source struct {
	Source   string `yaml:"source"`
	Page     string `yaml:"page"`
	Rotation int    `yaml:"rotation"`
}

// Preset is a named, reusable quadrant configuration template.
type Preset struct {
	Description string         `yaml:"description"`
	Quadrants   map[int]Source `yaml:"quadrants"`
}

// builtin is the immutable preset registry, loaded once at process start.
// These pair a shipping-label page with an optional rotated notes page.
var builtin = map[string]Preset{
	"standard": {
		Description: "UPS label (Q1,Q2) + notes (Q3 rotated -90°)",
		Quadrants: map[int]Source{
			1: {Source: InputPlaceholder, Page: "last"},
			2: {Source: InputPlaceholder, Page: "last"},
			3: {Source: InputPlaceholder, Page: "second-last", Rotation: -90},
		},
	},
	"label-only-q1-q2": {
		Description: "Just the shipping label in Q1 and Q2",
		Quadrants: map[int]Source{
			1: {Source: InputPlaceholder, Page: "last"},
			2: {Source: InputPlaceholder, Page: "last"},
		},
	},
	"notes-q4": {
		Description: "Notes in bottom-right quadrant",
		Quadrants: map[int]Source{
			4: {Source: InputPlaceholder, Page: "second-last"},
		},
	},
	"notes-q3": {
		Description: "Notes in bottom-left quadrant, rotated -90°",
		Quadrants: map[int]Source{
			3: {Source: InputPlaceholder, Page: "second-last", Rotation: -90},
		},
	},
}
