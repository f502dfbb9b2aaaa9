package cli

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/matzehuels/strprof/pkg/pipeline"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [corpus]",
		Short: "Compare a generated corpus with its preamble",
		Long: `Read a corpus written by "strprof generate" and report the observed string
count and length moments next to the ones declared in its preamble.

Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			in, err := openInput(cmd, path)
			if err != nil {
				return err
			}
			defer in.Close()

			res, err := pipelineRunner(c).Inspect(cmd.Context(), in)
			if err != nil {
				return err
			}
			renderInspect(cmd.OutOrStdout(), res)
			if !res.CountMatches() {
				printWarning("corpus has %d strings, preamble declares %d", res.Lines, res.Declared.Count)
			}
			if res.Declared == nil {
				printInfo("No preamble found")
			}
			return nil
		},
	}
}

func renderInspect(w io.Writer, res *pipeline.InspectResult) {
	declared := func(f func() string) string {
		if res.Declared == nil {
			return "-"
		}
		return f()
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"", "Declared", "Observed"})
	table.Append([]string{"count",
		declared(func() string { return strconv.Itoa(res.Declared.Count) }),
		strconv.Itoa(res.Lines)})
	table.Append([]string{"mean",
		declared(func() string { return formatStat(res.Declared.Mean) }),
		formatStat(res.Mean)})
	table.Append([]string{"variance",
		declared(func() string { return formatStat(res.Declared.Variance) }),
		formatStat(res.Variance)})
	table.Append([]string{"length range", "-",
		strconv.Itoa(res.MinLen) + ".." + strconv.Itoa(res.MaxLen)})
	table.Render()
}

// pipelineRunner returns a runner for operations that never touch the cache.
func pipelineRunner(c *CLI) *pipeline.Runner {
	return pipeline.NewRunner(nil, nil, c.Logger)
}
