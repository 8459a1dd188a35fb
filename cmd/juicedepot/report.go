package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/erazemk/juicedepot/internal/bootstrap"
	"github.com/erazemk/juicedepot/internal/config"
	"github.com/erazemk/juicedepot/internal/depot"
	"github.com/erazemk/juicedepot/internal/model"
	"github.com/erazemk/juicedepot/internal/report"
)

type reportFlags struct {
	from   string
	to     string
	format string
}

func newReportCmd(cfg *config.Config) *cobra.Command {
	var rf reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a periodical report",
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&rf.from, "from", "", "first day of the period (YYYY-MM-DD)")
	pf.StringVar(&rf.to, "to", "", "last day of the period (YYYY-MM-DD)")
	pf.StringVarP(&rf.format, "format", "f", "text", "output format: text, csv, html or markdown")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "general",
			Short: "Purchases, sales and remaining stock of every product",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printReport(cmd.Context(), cmd.OutOrStdout(), *cfg, rf,
					func(ctx context.Context, svc *depot.Service, r model.DateRange) (*model.Report, error) {
						return svc.GeneralReport(ctx, r)
					})
			},
		},
		&cobra.Command{
			Use:   "product <id>",
			Short: "Day-by-day purchases and sales of one product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid product id %q", args[0])
				}
				return printReport(cmd.Context(), cmd.OutOrStdout(), *cfg, rf,
					func(ctx context.Context, svc *depot.Service, r model.DateRange) (*model.Report, error) {
						return svc.ProductReport(ctx, id, r)
					})
			},
		},
	)
	return cmd
}

type buildFunc func(context.Context, *depot.Service, model.DateRange) (*model.Report, error)

func printReport(ctx context.Context, w io.Writer, cfg config.Config, rf reportFlags, build buildFunc) error {
	format, err := report.ParseFormat(rf.format)
	if err != nil {
		return err
	}
	rng, err := depot.ParseRange(rf.from, rf.to)
	if err != nil {
		return err
	}
	locale, err := cfg.Language()
	if err != nil {
		return err
	}

	st, svc, err := bootstrap.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	rep, err := build(ctx, svc, rng)
	if err != nil {
		return err
	}
	return report.NewRenderer(locale).Render(w, rep, format)
}
