package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/loom/mdl"
)

// FmtOptions holds the flags of the fmt command.
type FmtOptions struct {
	Write bool
	List  bool
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FmtOptions{}
	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Reprint model definition files in canonical form",
		Long: `Reprint model definition files in canonical form. By default the
formatted source is written to stdout; with --write the files are
rewritten in place.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(rootOpts, opts, args, cmd)
		},
	}
	cmd.Flags().BoolVarP(&opts.Write, "write", "w", false, "rewrite files in place instead of printing")
	cmd.Flags().BoolVarP(&opts.List, "list", "l", false, "list files whose formatting differs")
	return cmd
}

func runFmt(rootOpts *RootOptions, opts *FmtOptions, files []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	changed := false
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return &ExitError{Code: ExitCommandError, Message: "read " + file, Err: err}
		}

		model, err := mdl.Parse(string(src))
		if err != nil {
			return &ExitError{Code: ExitFailure, Message: file, Err: err}
		}

		canonical := mdl.Print(model) + "\n"
		same := canonical == string(src)
		if !same {
			changed = true
		}

		switch {
		case opts.List:
			if !same {
				formatter.Printf("%s\n", file)
			}
		case opts.Write:
			if !same {
				if err := os.WriteFile(file, []byte(canonical), 0o644); err != nil {
					return &ExitError{Code: ExitCommandError, Message: "write " + file, Err: err}
				}
				formatter.VerboseLog("rewrote %s", file)
			}
		default:
			formatter.Printf("%s", canonical)
		}
	}

	if opts.List && changed {
		return &ExitError{Code: ExitFailure, Message: "files need formatting"}
	}
	return nil
}
