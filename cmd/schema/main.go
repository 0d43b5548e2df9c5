// schema writes the JSON Schema of the WebSocket play protocol.
//
//	go run ./cmd/schema -out docs/protocol.schema.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"dungeon-kernel/internal/netplay"

	"github.com/invopop/jsonschema"
)

// protocol groups every message so one schema document describes both directions.
type protocol struct {
	Client netplay.ClientMessage `json:"client" jsonschema:"description=Sent by the client after every key press"`
	Frame  netplay.FrameMessage  `json:"frame" jsonschema:"description=Sent by the server on connect and after every client message"`
	Error  netplay.ErrorMessage  `json:"error" jsonschema:"description=Sent by the server for a malformed client message"`
}

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "-out is required")
		os.Exit(1)
	}
	if err := writeSchema(outPath, buildSchema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(protocol))
	schema.Title = "dungeon-kernel WebSocket protocol"
	schema.Description = "Messages exchanged on /ws"
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
