package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-kg/pkg/analysis"
	"github.com/dd0wney/cluso-kg/pkg/input"
	"github.com/dd0wney/cluso-kg/pkg/logging"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input>",
		Short: "Check that a concept graph document is well formed",
		Long: `Validate checks the document structure, node names, edge fields,
edge endpoints and weights, and lists every problem found.

Exit code 0 means the document is valid; 2 means it is not, or the file
could not be read or parsed.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runValidate,
	}
}

func (a *app) runValidate(cmd *cobra.Command, args []string) error {
	in, err := input.Open(args[0])
	if err != nil {
		return usageError(err)
	}

	opts := a.analysisOptions()
	a.logInput(in)
	if _, err := analysis.Prepare(in.Doc, opts); err != nil {
		return a.reportAnalysisError(err)
	}

	a.logger.Info("input valid", logging.Path(args[0]))
	fmt.Fprintln(a.stdout, a.out.success.Render("Input is valid."))
	return nil
}

// reportAnalysisError prints problem lists itself and leaves other errors to
// the top-level handler.
func (a *app) reportAnalysisError(err error) error {
	var ve *analysis.ValidationError
	if errors.As(err, &ve) {
		printProblems(a.stderr, a.err, ve.Problems)
		return &exitError{code: exitUsage}
	}
	if errors.Is(err, analysis.ErrAnalysisFailed) {
		a.logger.Error("analysis failed", logging.Error(err))
		return failureError(err)
	}
	return usageError(err)
}

func (a *app) logInput(in *input.File) {
	a.logger.Debug("input loaded",
		logging.Path(in.Path),
		logging.Int("bytes", in.Size),
		logging.String("digest", in.Digest),
	)
}
