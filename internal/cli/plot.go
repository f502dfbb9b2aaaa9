package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/strprof/pkg/errors"
	"github.com/matzehuels/strprof/pkg/pipeline"
	"github.com/matzehuels/strprof/pkg/plot"
)

// plotOpts holds the command-line flags for the plot command.
type plotOpts struct {
	input   string
	format  string // comma-separated; inferred from the output extension when unset
	title   string
	xlabel  string
	ylabel  string
	clocks  bool
	width   float64
	height  float64
	scale   float64
	noCache bool
}

// plotCommand creates the plot command.
func (c *CLI) plotCommand() *cobra.Command {
	var opts plotOpts

	cmd := &cobra.Command{
		Use:   "plot <output_file>",
		Short: "Plot CSV timing data as a line chart",
		Long: `Plot every column of a CSV file against its first column.

The first CSV row holds the series labels. Each following row holds one
measurement per column. With --clocks the measured columns are divided by
1,000,000 to turn clock ticks into seconds.`,
		Example: `  strprof plot timings.svg -i timings.csv -t "Iteration" -x "block size" -y "s" --clocks
  strprof plot timings -f svg,png -i timings.csv -t "Append" -x n -y ticks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlot(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input CSV file (stdin if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format(s): svg, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "chart title")
	cmd.Flags().StringVarP(&opts.xlabel, "xlabel", "x", "", "x axis label")
	cmd.Flags().StringVarP(&opts.ylabel, "ylabel", "y", "", "y axis label")
	cmd.Flags().BoolVar(&opts.clocks, "clocks", false, "convert clock ticks to seconds")
	cmd.Flags().Float64Var(&opts.width, "width", plot.DefaultWidth, "chart width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", plot.DefaultHeight, "chart height in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", plot.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plot cache")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("xlabel")
	_ = cmd.MarkFlagRequired("ylabel")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{plot.FormatSVG, plot.FormatPNG, plot.FormatPDF}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runPlot(cmd *cobra.Command, output string, opts *plotOpts) error {
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}
	c.applyPlotConfig(cmd, output, opts)
	formats := parseFormats(opts.format)

	prog := newProgress(c.Logger)
	csv, err := readInput(cmd, opts.input)
	if err != nil {
		return err
	}

	runner := c.newRunner(cmd.Context(), opts.noCache)
	defer runner.Close()

	res, err := runner.Plot(cmd.Context(), csv, pipeline.PlotOptions{
		Formats: formats,
		Options: plot.Options{
			Title:  opts.title,
			XLabel: opts.xlabel,
			YLabel: opts.ylabel,
			Width:  opts.width,
			Height: opts.height,
			Scale:  opts.scale,
		},
		Clocks: opts.clocks,
	})
	if err != nil {
		return err
	}

	paths := outputPaths(output, formats)
	for _, format := range formats {
		if err := os.WriteFile(paths[format], res.Artifacts[format], 0644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", paths[format])
		}
	}
	prog.done("Plotted timings")

	printSuccess("Plotted %s series", StyleNumber.Render(strconv.Itoa(res.Series)))
	printStats(res.Series, res.Rows, res.CacheHit)
	for _, format := range formats {
		printFile(paths[format])
	}
	return nil
}

// applyPlotConfig fills flags the user did not set from the config file.
func (c *CLI) applyPlotConfig(cmd *cobra.Command, output string, opts *plotOpts) {
	cfg := c.config().Plot
	flags := cmd.Flags()
	if !flags.Changed("width") {
		opts.width = cfg.Width
	}
	if !flags.Changed("height") {
		opts.height = cfg.Height
	}
	if !flags.Changed("scale") {
		opts.scale = cfg.Scale
	}
	if !flags.Changed("format") {
		if f, ok := formatFromPath(output); ok {
			opts.format = f
		} else {
			opts.format = cfg.Format
		}
	}
}

// outputPaths maps each format to its file. A single format writes to output
// as given; several formats share output's base name.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
