package cmd

import (
	"github.com/jsphweid/scoretree/constants"
	"github.com/jsphweid/scoretree/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "scoretree",
	Short: "Builds rhythm trees from notation token streams",
	Long: `scoretree turns the token stream of a notation tokenizer into a score:
normalized rhythm trees with offsets and durations, measures, performers
and the events attached to every leaf.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		format, err := logging.ParseFormat(logFormat)
		if err != nil {
			return err
		}
		logging.Init(level, format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", constants.GetLogFormat(), "text or json")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
