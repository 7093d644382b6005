package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

// schemaCmd creates the schema command
func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for config files",
		Run:   cmdSchema,
	}
}

// cmdSchema prints the config file JSON schema, for editor validation of
// dev.yml, prod.yml and friends
func cmdSchema(cmd *cobra.Command, args []string) {
	s := jsonschema.Reflect(&Config{})
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate config schema: %s", err)
	}
	fmt.Println(string(b))
}
