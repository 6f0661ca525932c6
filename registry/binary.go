package registry

import (
	"io"
	"mime/multipart"
	"reflect"

	"github.com/oasbridge/schemareg/schema"
)

// The binary-carrying types. None of them has a meaningful structural
// decomposition, so their schemas are fixed at construction time and the
// binary-override stage enforces the same shape when they appear nested
// inside composite types.
var (
	fileHeaderType     = reflect.TypeOf(multipart.FileHeader{})
	fileHeaderListType = reflect.TypeOf([]*multipart.FileHeader{})
	readerType         = reflect.TypeOf((*io.Reader)(nil)).Elem()
	pipeReaderType     = reflect.TypeOf(io.PipeReader{})
)

// binaryTypes is the membership set for the single-binary-string override.
// The collection variant is handled separately because it renders as an array.
var binaryTypes = map[reflect.Type]struct{}{
	fileHeaderType: {},
	readerType:     {},
	pipeReaderType: {},
}

// binarySchema returns a fresh {type: string, format: binary} schema.
func binarySchema() *schema.Schema {
	return &schema.Schema{Type: "string", Format: "binary"}
}

// binaryArraySchema returns a fresh array-of-binary-string schema.
func binaryArraySchema() *schema.Schema {
	return &schema.Schema{Type: "array", Items: binarySchema()}
}

// preseedBinarySchemas installs the fixed entries for the binary-carrying
// types into the cache and the reference registry. Pre-seeding guarantees
// these types are never expanded field by field, even when requested directly.
//
// Preseeded names are canonical "package.Type" identifiers for well-known
// wire payloads, independent of the configured naming strategy, so user
// naming cannot collide with or restyle them.
func (r *Registry) preseedBinarySchemas() {
	seed := func(t reflect.Type, name string, s *schema.Schema) {
		r.namesMu.Lock()
		r.nameByType[t] = name
		r.typeByName[name] = t
		r.namesMu.Unlock()

		s.SchemaID = name
		r.cache.put(schemaKey{typ: t}, s)
		r.refs.addOrUpdate(name, s)
	}

	canonical := func(t reflect.Type) string {
		return defaultName(buildNameContext(t))
	}

	seed(fileHeaderType, canonical(fileHeaderType), binarySchema())
	// The upload collection is an unnamed slice type; name it after its
	// element so the registry entry stays readable.
	seed(fileHeaderListType, canonical(fileHeaderType)+"List", binaryArraySchema())
	seed(readerType, canonical(readerType), binarySchema())
	seed(pipeReaderType, canonical(pipeReaderType), binarySchema())
}
