package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/scoretree/logging"
	"github.com/jsphweid/scoretree/model"
	"github.com/jsphweid/scoretree/parser"
	"github.com/jsphweid/scoretree/token"
	"github.com/jsphweid/scoretree/util"
	"github.com/spf13/cobra"
)

var outPath string

func init() {
	parseCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the score here instead of stdout")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <tokens.json>",
	Short: "Parses a token stream into a score",
	Long: `Parses a token stream (a JSON array of tokens, or an object with a
"tokens" array) and writes the score as JSON. Use - to read stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := loadScore(firstArg(args))
		if err != nil {
			return err
		}
		if outPath != "" {
			return writeScoreFile(outPath, score)
		}
		return writeScore(cmd.OutOrStdout(), score)
	},
}

func writeScoreFile(path string, score *model.Score) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return writeScore(f, score)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// loadScore decodes and parses the token stream at path. Recoverable parse
// errors are logged and the score is still returned.
func loadScore(path string) (*model.Score, error) {
	f, err := util.OpenFileOrStdin(path)
	if err != nil {
		return nil, err
	}
	if f != os.Stdin {
		defer f.Close()
	}
	return decodeAndParse(f)
}

func decodeAndParse(r io.Reader) (*model.Score, error) {
	logger := logging.Logger()
	tokens, err := token.Decode(r)
	if err != nil {
		return nil, err
	}
	score, err := parser.Parse(tokens, parser.WithLogger(logger))
	if score == nil {
		return nil, err
	}
	if err != nil {
		logger.Warn("score parsed with errors", "error", err)
	}
	for _, diag := range score.Diagnostics {
		logger.Info("token dropped", "diagnostic", diag.String())
	}
	return score, nil
}

func writeScore(w io.Writer, score *model.Score) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(score); err != nil {
		return fmt.Errorf("could not encode score: %w", err)
	}
	return nil
}

// parseErrors flattens a joined parse error into its messages.
func parseErrors(err error) []string {
	res := []string{}
	if err == nil {
		return res
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			res = append(res, e.Error())
		}
		return res
	}
	return append(res, err.Error())
}

func isFatal(err error) bool {
	return errors.Is(err, parser.ErrMalformedToken)
}
