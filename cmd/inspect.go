package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/scoretree/component"
	"github.com/jsphweid/scoretree/midi"
	"github.com/jsphweid/scoretree/model"
	"github.com/jsphweid/scoretree/node"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <tokens.json>",
	Short: "Prints the rhythm trees of a token stream",
	Long:  `Prints every rhythm tree with offsets, durations and the events on each leaf.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := loadScore(firstArg(args))
		if err != nil {
			return err
		}
		inspect(cmd.OutOrStdout(), score)
		return nil
	},
}

func inspect(w io.Writer, score *model.Score) {
	if score.Title != "" {
		fmt.Fprintf(w, "title: %v\n", score.Title)
	}
	for _, m := range score.Measures {
		fmt.Fprintf(w, "measure %d: %v\n", m.Number, m.Span())
	}
	for i, root := range score.Nodes {
		fmt.Fprintf(w, "root %d\n", i)
		root.Walk(func(n *node.Node) bool {
			indent := strings.Repeat("  ", n.Depth()+1)
			fmt.Fprintf(w, "%s%v @ %v", indent, n.Duration(), n.Offset())
			if !n.IsRoot() {
				fmt.Fprintf(w, " (%d beats)", n.Beats())
			}
			fmt.Fprintln(w)
			for _, c := range n.Components() {
				fmt.Fprintf(w, "%s  - %s\n", indent, describe(c))
			}
			return true
		})
	}
}

func describe(c component.Component) string {
	var detail string
	switch c := c.(type) {
	case component.Pitch:
		detail = strings.Join(midi.PitchNames(c.Values), " ")
	case component.DynamicMarking:
		detail = c.Value
	case component.Articulation:
		detail = strings.Join(c.Values, " ")
	}
	res := fmt.Sprintf("%v [%s/%s]", c.Kind(), c.Performer(), c.Instrument())
	if detail != "" {
		res += " " + detail
	}
	return res
}
