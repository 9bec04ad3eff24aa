package errors

import (
	goerrors "errors"
	"reflect"
	"strings"

	apperrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/errors"
)

// Classify returns a normalized error class suitable for tagging metrics and logs.
// Controller errors report their taxonomy code (e.g. "transport_failure"); anything
// else falls back to the innermost concrete type in snake_case-ish form.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	if code := apperrors.GetCode(err); code != "" {
		return string(code)
	}

	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	name := strings.ToLower(strings.ReplaceAll(t.String(), "*", ""))
	name = strings.ReplaceAll(name, ".", "_")
	if name == "" {
		return "unknown"
	}
	return name
}
