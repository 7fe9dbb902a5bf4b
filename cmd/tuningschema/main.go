// cmd/tuningschema/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Millie-beep/MillieStarDefender/internal/config"
	"github.com/invopop/jsonschema"
)

// Пишет JSON Schema для файла настроек, чтобы редакторы подсказывали поля.
func main() {
	out := flag.String("out", "tuning.schema.json", "output path for the schema")
	flag.Parse()

	if err := writeSchema(*out); err != nil {
		log.Fatalf("tuningschema: %v", err)
	}
	log.Printf("Wrote tuning schema to %s", *out)
}

func writeSchema(path string) error {
	// Частичный файл допустим: отсутствующие поля берутся из значений по умолчанию
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
	}
	schema := reflector.Reflect(&config.Tuning{})
	schema.Title = "Star Defender tuning"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
