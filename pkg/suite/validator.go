package suite

import "fmt"

// Kinds that require a css selector.
var selectorKinds = map[string]bool{
	"element_html":            true,
	"text":                    true,
	"value":                   true,
	"element_count":           true,
	"attribute":               true,
	"css_property":            true,
	"exists":                  true,
	"input_enabled":           true,
	"visible":                 true,
	"visible_within_viewport": true,
	"option_selected":         true,
	"element_size":            true,
	"element_position":        true,
	"element_view_position":   true,
}

// Kinds that require a cookie/attribute/property name.
var nameKinds = map[string]bool{
	"cookie":            true,
	"attribute":         true,
	"css_property":      true,
	"cookie_exists":     true,
	"cookie_not_exists": true,
}

// ValidationError represents a validation issue found in a
// suite definition.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf(
			"checks[%d].%s: %s", e.Index, e.Field, e.Message,
		)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a suite definition for structural problems
// and returns all errors found. Kind names are not resolved
// here; unknown kinds surface at compile time because custom
// builders may supply them.
func Validate(def *Definition) []ValidationError {
	var errors []ValidationError

	if def.ID == "" {
		errors = append(errors, ValidationError{
			Field: "id", Message: "suite ID is required",
			Index: -1,
		})
	}

	if def.Name == "" {
		errors = append(errors, ValidationError{
			Field: "name", Message: "suite name is required",
			Index: -1,
		})
	}

	if len(def.Checks) == 0 {
		errors = append(errors, ValidationError{
			Field:   "checks",
			Message: "suite has no checks",
			Index:   -1,
		})
	}

	for i, check := range def.Checks {
		if check.Kind == "" {
			errors = append(errors, ValidationError{
				Field: "kind", Message: "check kind is required",
				Index: i,
			})
			continue
		}

		if selectorKinds[check.Kind] && check.Selector == "" {
			errors = append(errors, ValidationError{
				Field: "selector",
				Message: fmt.Sprintf(
					"kind %q requires a selector", check.Kind,
				),
				Index: i,
			})
		}

		if nameKinds[check.Kind] && check.Name == "" {
			errors = append(errors, ValidationError{
				Field: "name",
				Message: fmt.Sprintf(
					"kind %q requires a name", check.Kind,
				),
				Index: i,
			})
		}
	}

	return errors
}
