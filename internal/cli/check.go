package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/loom/mdl"
)

// FileResult holds the findings for one checked file.
type FileResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

// CheckResult holds the findings for a whole check run.
type CheckResult struct {
	Valid bool         `json:"valid"`
	Files []FileResult `json:"files"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse model definition files and report problems",
		Long: `Parse model definition files and report lexical errors, syntax errors
and post-parse diagnostics such as duplicate field names.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, files []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	result := CheckResult{Valid: true}
	for _, file := range files {
		fileResult, err := checkFile(file)
		if err != nil {
			return err
		}
		if !fileResult.Valid {
			result.Valid = false
		}
		result.Files = append(result.Files, fileResult)
	}

	if formatter.JSON() {
		if err := formatter.PrintJSON(result); err != nil {
			return err
		}
	} else {
		for _, fr := range result.Files {
			if fr.Valid {
				formatter.Printf("%s: ok\n", fr.File)
				continue
			}
			for _, problem := range fr.Problems {
				formatter.Printf("%s: %s\n", fr.File, problem)
			}
		}
	}

	if !result.Valid {
		return &ExitError{Code: ExitFailure, Message: "check failed"}
	}
	return nil
}

func checkFile(file string) (FileResult, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return FileResult{}, &ExitError{Code: ExitCommandError, Message: "read " + file, Err: err}
	}

	result := FileResult{File: file, Valid: true}

	model, err := mdl.Parse(string(src))
	if err != nil {
		if !mdl.IsSyntaxError(err) {
			return FileResult{}, err
		}
		result.Valid = false
		result.Problems = append(result.Problems, err.Error())
		return result, nil
	}

	for _, diag := range model.Check() {
		result.Valid = false
		result.Problems = append(result.Problems, diag.Error())
	}
	return result, nil
}
