package cmd

import (
	"msforge/feature/threshold"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var thresholdFlags threshold.Config

// thresholdCmd removes low (or high) intensity points from every spectrum.
var thresholdCmd = &cobra.Command{
	Use:   "threshold <in> <out>",
	Short: "Threshold spectrum data points by intensity",
	Long: `Keeps the data points selected by the policy and writes the result.
Flags left unset fall back to the threshold section of the configuration.

Policies: count, count-after-ties, absolute, fraction-of-max,
fraction-of-total, fraction-of-total-cutoff.

Examples:
  threshold --policy count --value 50 in.json out.json
  threshold --policy fraction-of-max --value 0.01 --ms-levels 2- in.json out.msgpack`,
	Args: cobra.ExactArgs(2),
	RunE: runThreshold,
}

func init() {
	f := thresholdCmd.Flags()
	f.StringVar(&thresholdFlags.Policy, "policy", "", "threshold policy")
	f.StringVar(&thresholdFlags.Orientation, "orientation", "", "most-intense or least-intense")
	f.Float64Var(&thresholdFlags.Value, "value", 0, "threshold value (count, absolute or fraction)")
	f.StringVar(&thresholdFlags.MSLevels, "ms-levels", "", "ms levels to threshold, e.g. 2-")

	RootCmd.AddCommand(thresholdCmd)
}

func runThreshold(cmd *cobra.Command, args []string) error {
	e, err := newEnv(args...)
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	cfg := e.cfg.Threshold
	f := cmd.Flags()
	if f.Changed("policy") {
		cfg.Policy = thresholdFlags.Policy
	}
	if f.Changed("orientation") {
		cfg.Orientation = thresholdFlags.Orientation
	}
	if f.Changed("value") {
		cfg.Value = thresholdFlags.Value
	}
	if f.Changed("ms-levels") {
		cfg.MSLevels = thresholdFlags.MSLevels
	}

	th, err := cfg.Thresholder()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	doc, err := e.store.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	list, err := threshold.New(doc.Run.SpectrumList, th, append(opts, threshold.WithLogger(e.logger))...)
	if err != nil {
		return err
	}
	doc.Run.SpectrumList = list

	if err := e.store.Save(cmd.Context(), args[1], doc); err != nil {
		return err
	}
	e.logger.Info("Spectra thresholded",
		zap.String("policy", th.Policy.String()),
		zap.Float64("value", th.Threshold),
		zap.Int("spectra", list.Size()),
		zap.String("out", args[1]),
	)
	return nil
}
