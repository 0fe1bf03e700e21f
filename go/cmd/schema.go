package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lunixbochs/asmcorn/go/models"
)

// Schemas describes the payloads a shell passes to assemble and disassemble.
func Schemas() map[string]*jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	return map[string]*jsonschema.Schema{
		"assemble":            reflector.Reflect(&models.AssembleRequest{}),
		"assembleResponse":    reflector.Reflect(&models.AssembleResponse{}),
		"disassemble":         reflector.Reflect(&models.DisassembleRequest{}),
		"disassembleResponse": reflector.Reflect(&models.DisassembleResponse{}),
		"config":              reflector.Reflect(&models.Config{}),
	}
}

var schemaCmd = &cobra.Command{
	Use:    "schema",
	Short:  "Generate JSON schema for the command payloads",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bts, err := json.MarshalIndent(Schemas(), "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal schema")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
