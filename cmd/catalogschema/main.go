// Command catalogschema prints the JSON Schema of the recipe catalog file
// format so catalog authors can validate their documents.
package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/invopop/jsonschema"

	"semainier/internal/catalog"
)

func main() {
	out, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}
	fmt.Println(string(out))
}

// buildSchema describes the catalog document: an array of recipe records.
func buildSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	record := r.Reflect(&catalog.Recipe{})
	record.Version = "" // only the outer document carries the dialect

	return &jsonschema.Schema{
		Version: jsonschema.Version,
		Type:    "array",
		Items:   record,
	}
}
