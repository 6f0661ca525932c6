package mapper

import (
	"reflect"
	"strings"
)

// ParseJSONTag parses a struct field's json tag into the field name and
// options (such as "omitempty").
func ParseJSONTag(tag string) (name string, opts []string) {
	if tag == "" {
		return "", nil
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if len(parts) > 1 {
		opts = parts[1:]
	}
	return name, opts
}

// ParseOASTag parses an oas struct tag into key-value pairs.
// Supports formats like: oas:"description=User ID,minLength=1,maxLength=100"
// Bare keys (e.g. "deprecated") are treated as boolean flags set to "true".
func ParseOASTag(tag string) map[string]string {
	result := make(map[string]string)
	if tag == "" {
		return result
	}

	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx := strings.Index(part, "="); idx > 0 {
			key := strings.TrimSpace(part[:idx])
			value := strings.TrimSpace(part[idx+1:])
			result[key] = value
		} else {
			result[part] = "true"
		}
	}

	return result
}

func hasOmitempty(opts []string) bool {
	for _, opt := range opts {
		if opt == "omitempty" {
			return true
		}
	}
	return false
}

// fieldRequired determines whether a struct field is required.
// Rules:
//  1. Fields with oas:"required=true" are explicitly required
//  2. Fields with oas:"required=false" are explicitly optional
//  3. Pointer fields are optional by default
//  4. Non-pointer fields without omitempty are required
func fieldRequired(field reflect.StructField, jsonOpts []string) bool {
	if oasTag := field.Tag.Get("oas"); oasTag != "" {
		if val, ok := ParseOASTag(oasTag)["required"]; ok {
			return val == "true"
		}
	}

	if field.Type.Kind() == reflect.Pointer {
		return false
	}

	return !hasOmitempty(jsonOpts)
}
