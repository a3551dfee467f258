// Command actussim runs ACTUS JSON test vectors through the engine and
// reports any mismatch against the vector's reference events.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meenmo/actuskit/actusjson"
	"github.com/meenmo/actuskit/engine"
	"github.com/meenmo/actuskit/observer"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "actussim",
		Short: "Simulate and cross-validate ACTUS contracts",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./actussim.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "emit per-event debug logs")
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [test-vector.json]",
		Short: "Simulate a single ACTUS JSON test vector and diff it against its reference events",
		Args:  cobra.ExactArgs(1),
		RunE:  runVector,
	}
	return cmd
}

func runVector(cmd *cobra.Command, args []string) error {
	loadConfig()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading test vector: %w", err)
	}

	tc, err := actusjson.Decode(raw)
	if err != nil {
		return err
	}

	attrs, err := actusjson.ToAttributes(tc.Terms)
	if err != nil {
		return err
	}

	series, err := actusjson.LoadObservers(tc)
	if err != nil {
		return err
	}
	market := observer.Composite{Observers: []observer.Market{series}}

	var opts []engine.Option
	if verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts, engine.WithLogger(logger))
	}

	c, err := engine.Create(attrs, market, nil, opts...)
	if err != nil {
		return fmt.Errorf("creating contract %s: %w", tc.Identifier, err)
	}

	result, err := c.Simulate()
	if err != nil {
		return fmt.Errorf("simulating contract %s: %w", tc.Identifier, err)
	}

	fmt.Printf("%s: simulated %d events (run %s)\n", tc.Identifier, len(result.Events), result.RunID)
	for _, e := range result.Events {
		fmt.Printf("  %s  %-5s  payoff=%.4f  notional=%.4f\n", e.EventTime.Format("2006-01-02"), e.Kind, e.Payoff, e.StatePost.Notional)
	}

	if len(tc.Results) == 0 {
		return nil
	}
	diffs, err := actusjson.Compare(tc, result.Events)
	if err != nil {
		return err
	}
	if len(diffs) == 0 {
		fmt.Println("cross-validation: OK")
		return nil
	}
	fmt.Printf("cross-validation: %d mismatch(es)\n", len(diffs))
	for _, d := range diffs {
		fmt.Printf("  row %d field=%s expected=%.4f actual=%.4f\n", d.Index, d.Field, d.Expected, d.Actual)
	}
	return fmt.Errorf("cross-validation failed for %s", tc.Identifier)
}

func loadConfig() {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("actussim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	// Config is optional: actussim runs fine on flags/defaults alone. Any
	// ReadInConfig error, a malformed file included, is discarded, and the
	// values read are not copied into config.Config.
	_ = v.ReadInConfig()
}
