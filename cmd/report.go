package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/jsphweid/scoretree/chord"
	"github.com/jsphweid/scoretree/component"
	"github.com/jsphweid/scoretree/model"
	"github.com/jsphweid/scoretree/node"
	"github.com/jsphweid/scoretree/util"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <tokens.json>",
	Short: "Creates a report",
	Long:  `Counts trees, nodes, events, measures, performers and sonorities of a token stream.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := loadScore(firstArg(args))
		if err != nil {
			return err
		}
		writeReport(cmd.OutOrStdout(), analyze(score))
		return nil
	},
}

type scoreReport struct {
	numRoots       int
	numNodes       int
	numLeaves      int
	numMeasures    int
	numPerformers  int
	numInstruments int
	numSonorities  int
	numDiagnostics int
	components     map[component.Kind]int
	duration       string
}

func analyze(score *model.Score) scoreReport {
	report := scoreReport{
		numRoots:       len(score.Nodes),
		numMeasures:    len(score.Measures),
		numPerformers:  score.Instruments.Len(),
		numSonorities:  len(chord.Sonorities(score)),
		numDiagnostics: len(score.Diagnostics),
		components:     make(map[component.Kind]int),
		duration:       score.Duration().String(),
	}
	for _, root := range score.Nodes {
		root.Walk(func(n *node.Node) bool {
			report.numNodes += 1
			if n.IsLeaf() {
				report.numLeaves += 1
			}
			for _, c := range n.Components() {
				report.components[c.Kind()] += 1
			}
			return true
		})
	}
	for pair := score.Instruments.Oldest(); pair != nil; pair = pair.Next() {
		report.numInstruments += pair.Value.Len()
	}
	return report
}

func writeReport(w io.Writer, report scoreReport) {
	fmt.Fprintf(w, "duration: %v\n", report.duration)
	fmt.Fprintf(w, "roots: %v\n", humanize.Comma(int64(report.numRoots)))
	fmt.Fprintf(w, "nodes: %v\n", humanize.Comma(int64(report.numNodes)))
	fmt.Fprintf(w, "leaves: %v\n", humanize.Comma(int64(report.numLeaves)))
	fmt.Fprintf(w, "measures: %v\n", humanize.Comma(int64(report.numMeasures)))
	fmt.Fprintf(w, "performers: %v (%v)\n", report.numPerformers, english.Plural(report.numInstruments, "instrument", ""))
	fmt.Fprintf(w, "sonorities: %v\n", humanize.Comma(int64(report.numSonorities)))
	fmt.Fprintf(w, "diagnostics: %v\n", humanize.Comma(int64(report.numDiagnostics)))

	kinds := util.GetKeys(report.components)
	slices.Sort(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(w, "  %v: %v\n", kind, humanize.Comma(int64(report.components[kind])))
	}
}
