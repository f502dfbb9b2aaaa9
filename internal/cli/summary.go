package cli

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/matzehuels/strprof/pkg/profile"
)

// summaryCommand creates the summary command.
func (c *CLI) summaryCommand() *cobra.Command {
	var (
		input  string
		clocks bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-series statistics of CSV timing data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			csv, err := readInput(cmd, input)
			if err != nil {
				return err
			}
			sums, err := pipelineRunner(c).Summarize(cmd.Context(), csv, clocks)
			if err != nil {
				return err
			}
			renderSummary(cmd.OutOrStdout(), sums)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input CSV file (stdin if empty)")
	cmd.Flags().BoolVar(&clocks, "clocks", false, "convert clock ticks to seconds")

	return cmd
}

func renderSummary(w io.Writer, sums []profile.SeriesSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Series", "Points", "Min", "Max", "Mean", "Median", "StdDev"})
	for _, s := range sums {
		table.Append([]string{
			s.Label,
			strconv.Itoa(s.Points),
			formatStat(s.Min),
			formatStat(s.Max),
			formatStat(s.Mean),
			formatStat(s.Median),
			formatStat(s.StdDev),
		})
	}
	table.Render()
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
