package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/erazemk/juicedepot/internal/bootstrap"
	"github.com/erazemk/juicedepot/internal/config"
)

func newInventoryCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Print the stock available for every product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, svc, err := bootstrap.Open(ctx, *cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			rows, err := svc.Availability(ctx)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Product", "Received", "Sold", "Available"})
			for _, r := range rows {
				t.AppendRow(table.Row{r.ProductID, r.ProductName, r.TotalQuantity, r.SoldQuantity, r.DisplayQuantity()})
			}
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 3, Align: text.AlignRight},
				{Number: 4, Align: text.AlignRight},
				{Number: 5, Align: text.AlignRight},
			})
			t.Render()
			return nil
		},
	}
}
