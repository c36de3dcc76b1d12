// Package suite defines declarative browser assertion suites:
// named, ordered collections of checks compiled into executable
// steps, plus the result and configuration types shared with
// the runner and reporting layers.
package suite

// ID uniquely identifies a suite.
type ID string

// Definition describes a suite declaratively. It captures all
// metadata needed to compile, run, and report a suite without
// requiring Go code. Definitions load from JSON or YAML files
// via the registry package.
type Definition struct {
	ID           ID         `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Description  string     `json:"description" yaml:"description"`
	Category     string     `json:"category" yaml:"category"`
	Dependencies []ID       `json:"dependencies" yaml:"dependencies"`
	StartURL     string     `json:"start_url" yaml:"start_url"`
	Checks       []CheckDef `json:"checks" yaml:"checks"`
}

// CheckDef defines a single declarative check inside a suite.
// Kind selects the step builder; the remaining fields feed the
// builder's arguments and expectation.
type CheckDef struct {
	// Kind is the check kind (e.g., "exists", "text",
	// "cookie", "element_count"). Unknown kinds are resolved
	// through the custom builders passed to Compile.
	Kind string `json:"kind" yaml:"kind"`

	// Selector is the css selector for element checks.
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty"`

	// Name is the cookie, attribute, or css property name for
	// the check kinds that take one.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Expect is a compact expectation string of the form
	// "op" or "op:value" (e.g., "equals:jon snow",
	// "at_least:2", "not_empty"). Boolean kinds ignore it.
	Expect string `json:"expect,omitempty" yaml:"expect,omitempty"`
}
