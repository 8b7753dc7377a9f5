package main

import (
	"encoding/json"
	"fmt"

	"github.com/blaisecz/better-rest/internal/api/validation"
	"github.com/blaisecz/better-rest/internal/config"
	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/models"
	"github.com/blaisecz/better-rest/internal/service"
	"github.com/spf13/cobra"
)

type estimateOptions struct {
	wake    string
	sleep   float64
	coffee  int
	backend string
	model   string
	format  string
	json    bool
}

func newEstimateCmd(loadConfig func() *config.Config) *cobra.Command {
	opts := estimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print the ideal bedtime",
		Example: `  bedtime estimate
  bedtime estimate --wake 06:30 --sleep 7.5 --coffee 3
  bedtime estimate --format 24h --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if cmd.Flags().Changed("backend") {
				cfg.ModelBackend = opts.backend
			}
			if cmd.Flags().Changed("model") {
				cfg.ModelPath = opts.model
			}
			if cmd.Flags().Changed("format") {
				cfg.TimeFormat = opts.format
			}
			return runEstimate(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.wake, "wake", "w", domain.DefaultWakeTime.String(), "Wake-up time (HH:MM)")
	cmd.Flags().Float64VarP(&opts.sleep, "sleep", "s", domain.DefaultSleepHours, "Desired hours of sleep (4-12, step 0.25)")
	cmd.Flags().IntVarP(&opts.coffee, "coffee", "c", domain.DefaultCoffeeCups, "Daily cups of coffee (1-20)")
	cmd.Flags().StringVar(&opts.backend, "backend", config.ModelBackendLinear, "Model backend (linear or openai)")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "Linear model file (defaults to built-in coefficients)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "12h", "Time format (12h or 24h)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the full estimate as JSON")

	return cmd
}

func runEstimate(cmd *cobra.Command, cfg *config.Config, opts estimateOptions) error {
	req := domain.EstimateRequest{WakeTime: opts.wake, SleepHours: opts.sleep, CoffeeCups: opts.coffee}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		for _, fe := range fieldErrors {
			cmd.PrintErrf("%s %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%w: invalid estimate inputs", domain.ErrInvalidInput)
	}

	wake, err := domain.ParseClock(opts.wake)
	if err != nil {
		return err
	}

	bedtime := service.NewBedtimeService(models.NewProvider(cfg), service.LayoutFor(cfg.TimeFormat))
	b, err := bedtime.Compute(cmd.Context(), wake, opts.sleep, opts.coffee)
	if err != nil {
		cmd.PrintErrln("estimation failed:", err)
	}
	response := domain.NewEstimateResponse(b, err)

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}

	if !response.Estimated {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), response.Bedtime)
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Your ideal bedtime is %s\n", response.Bedtime)
	return err
}
