package schema

import "strings"

// RefPrefix is the reference path prefix for named schemas, following the
// OAS 3.x components layout.
const RefPrefix = "#/components/schemas/"

// RefTo returns the $ref string for a named schema.
func RefTo(name string) string {
	return RefPrefix + name
}

// RefName extracts the schema name from a $ref string, or returns "" if the
// ref does not use the components/schemas prefix.
func RefName(ref string) string {
	if strings.HasPrefix(ref, RefPrefix) {
		return ref[len(RefPrefix):]
	}
	return ""
}
