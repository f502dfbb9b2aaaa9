package cli

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/strprof/pkg/buildinfo"
	"github.com/matzehuels/strprof/pkg/dist"
	"github.com/matzehuels/strprof/pkg/errors"
	"github.com/matzehuels/strprof/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	seed     uint64
	preamble bool
	output   string // "-" or empty for stdout
	manifest string // JSON sidecar path, skipped when empty
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <count> <identical|uniform|binomial> <params>...",
		Short: "Generate a random string corpus",
		Long: `Generate count random alphanumeric strings, one per line, whose lengths follow
a distribution:

  identical <length>        every string has the same length
  uniform <lower> <upper>   lengths uniform over [lower, upper]
  binomial <trials> <p>     lengths drawn from Binomial(trials, p)

With --preamble the corpus starts with "# <count> <mean> <variance>", the
theoretical moments of the length distribution.`,
		Example: `  strprof generate 1000 uniform 1 64 --preamble > corpus.txt
  strprof generate 100 binomial 32 0.5 --seed 42 -o corpus.txt --manifest run.json`,
		Args: cobra.MinimumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			kinds := make([]string, len(dist.Kinds))
			for i, k := range dist.Kinds {
				kinds[i] = string(k)
			}
			return kinds, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, args, &opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (random when unset)")
	cmd.Flags().BoolVar(&opts.preamble, "preamble", false, "write the '# count mean variance' line first")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.manifest, "manifest", "", "write a JSON manifest of the run to this file")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string, opts *generateOpts) error {
	count, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, err, "count %q is not an integer", args[0])
	}
	spec, err := dist.Parse(args[1], args[2:])
	if err != nil {
		return err
	}

	cfg := c.config().Generate
	seed, seedSet := opts.seed, cmd.Flags().Changed("seed")
	if !seedSet && cfg.SeedSet {
		seed, seedSet = cfg.Seed, true
	}
	preamble := opts.preamble
	if !cmd.Flags().Changed("preamble") {
		preamble = cfg.Preamble
	}

	gopts := pipeline.GenerateOptions{
		Spec:     spec,
		Count:    count,
		Seed:     seed,
		SeedSet:  seedSet,
		Preamble: preamble,
	}
	if err := gopts.Validate(); err != nil {
		return err
	}

	out, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	res, err := runner.Generate(cmd.Context(), out, gopts)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = errors.Wrap(errors.ErrCodeInternal, cerr, "close %s", opts.output)
	}
	if err != nil {
		return err
	}

	if !seedSet {
		c.Logger.Info("used random seed", "seed", res.Seed)
	}
	if opts.manifest != "" {
		if err := writeManifest(opts.manifest, res); err != nil {
			return err
		}
	}

	if opts.output != "" && opts.output != stdioPath {
		printSuccess("Generated %s strings", StyleNumber.Render(strconv.Itoa(res.Written)))
		printFile(opts.output)
		if opts.manifest != "" {
			printFile(opts.manifest)
		}
	}
	return nil
}

func writeManifest(path string, res *pipeline.GenerateResult) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	m := struct {
		*pipeline.GenerateResult
		Build buildinfo.Info `json:"build"`
	}{res, buildinfo.Current()}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write manifest %s", path)
	}
	return nil
}
