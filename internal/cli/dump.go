package cli

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/loom/mdl"
)

// ModelDump is the serializable form of a parsed model.
type ModelDump struct {
	Name    string      `json:"name" yaml:"name"`
	Alias   string      `json:"alias,omitempty" yaml:"alias,omitempty"`
	Options []string    `json:"options,omitempty" yaml:"options,omitempty"`
	Fields  []FieldDump `json:"fields" yaml:"fields"`
}

// FieldDump is the serializable form of a single model field.
type FieldDump struct {
	Kind      string `json:"kind" yaml:"kind"`
	Name      string `json:"name" yaml:"name"`
	Public    bool   `json:"public" yaml:"public"`
	Foreign   string `json:"foreign,omitempty" yaml:"foreign,omitempty"`
	Edge      string `json:"edge,omitempty" yaml:"edge,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Parse a model definition file and print its structure",
		Long: `Parse a model definition file and print the resulting model structure
as YAML, or as JSON when --format json is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runDump(opts *RootOptions, file string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	src, err := os.ReadFile(file)
	if err != nil {
		return &ExitError{Code: ExitCommandError, Message: "read " + file, Err: err}
	}

	model, err := mdl.Parse(string(src))
	if err != nil {
		return &ExitError{Code: ExitFailure, Message: file, Err: err}
	}

	dump := dumpModel(model)
	if formatter.JSON() {
		return formatter.PrintJSON(dump)
	}

	encoded, err := yaml.Marshal(dump)
	if err != nil {
		return err
	}
	formatter.Printf("%s", encoded)
	return nil
}

func dumpModel(m *mdl.Model) ModelDump {
	dump := ModelDump{
		Name:   m.Name.String(),
		Fields: []FieldDump{},
	}
	if m.Alias != nil {
		dump.Alias = m.Alias.String()
	}
	for _, opt := range m.Options {
		dump.Options = append(dump.Options, string(opt))
	}
	for _, field := range m.Fields {
		dump.Fields = append(dump.Fields, dumpField(field))
	}
	return dump
}

func dumpField(f mdl.Field) FieldDump {
	switch field := f.(type) {
	case mdl.Property:
		return FieldDump{
			Kind:   "property",
			Name:   field.Name.String(),
			Public: field.Pub,
		}
	case mdl.ForeignNode:
		return FieldDump{
			Kind:    "foreign",
			Name:    field.Name.String(),
			Public:  field.Pub,
			Foreign: field.Foreign.String(),
		}
	case mdl.Relation:
		return FieldDump{
			Kind:      "relation",
			Name:      field.Alias.String(),
			Public:    field.Pub,
			Foreign:   field.Foreign.String(),
			Edge:      field.Name.String(),
			Direction: field.Dir.String(),
		}
	}
	return FieldDump{}
}
