package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// ValidateRaw checks a loaded raw record against resume.schema.json. A
// failure here means the record needs migration or per-field coercion; it is
// never a reason to drop the record.
func ValidateRaw(m map[string]interface{}) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
