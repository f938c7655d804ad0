package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"admindash/controllers"
	"admindash/models"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, recent transactions and chart series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := controllers.NewDashboard(a.sess, a.svc)
			d.Load(cmd.Context())
			if err := gate(d.State); err != nil {
				return err
			}
			s := d.State.Data()

			tw := table(cmd.OutOrStdout())
			fmt.Fprintf(tw, "Products:\t%d\n", s.TotalProducts)
			fmt.Fprintf(tw, "Categories:\t%d\n", s.TotalCategories)
			fmt.Fprintf(tw, "Transactions:\t%d\n", s.TotalTransactions)

			fmt.Fprintln(tw, "\nRECENT\tTYPE\tSTATUS\tTOTAL\tDATE")
			for _, t := range s.RecentTransactions {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", t.DisplayCode(), t.TransactionType.Label(),
					t.Status.Label(), controllers.FormatMoney(t.TotalAmount), controllers.FormatDate(t.CreatedAt))
			}

			printSlices(tw, "BY TYPE", s.TransactionsByType)
			printSlices(tw, "BY CATEGORY", s.ProductsByCategory)

			fmt.Fprintln(tw, "\nSALES\tAMOUNT")
			for _, p := range s.SalesTrend {
				fmt.Fprintf(tw, "%s\t%s\n", p.Date, controllers.FormatMoney(p.Amount))
			}
			return tw.Flush()
		},
	}
}

func printSlices(w io.Writer, title string, slices []models.ChartSlice) {
	fmt.Fprintf(w, "\n%s\tCOUNT\n", title)
	for _, s := range slices {
		fmt.Fprintf(w, "%s\t%d\n", s.Name, s.Value)
	}
}

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controllers.NewProfile(a.sess, a.svc)
			c.Load(cmd.Context())
			if err := gate(c.State); err != nil {
				return err
			}
			printProfile(cmd, c.State.Data())
			return nil
		},
	}

	var firstName, bio string
	update := &cobra.Command{
		Use:   "update",
		Short: "Change first name or bio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controllers.NewProfile(a.sess, a.svc)
			c.Load(cmd.Context())
			if err := gate(c.State); err != nil {
				return err
			}
			input := c.Input
			if cmd.Flags().Changed("first-name") {
				input.FirstName = firstName
			}
			if cmd.Flags().Changed("bio") {
				input.Bio = bio
			}
			c.Edit()
			notice, ok := c.Save(cmd.Context(), input)
			if err := gate(c.State); err != nil {
				return err
			}
			if !ok {
				return errors.New(c.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), notice)
			printProfile(cmd, c.State.Data())
			return nil
		},
	}
	update.Flags().StringVar(&firstName, "first-name", "", "first name")
	update.Flags().StringVar(&bio, "bio", "", "short bio")

	cmd.AddCommand(update)
	return cmd
}

func printProfile(cmd *cobra.Command, p *models.Profile) {
	if p == nil {
		return
	}
	tw := table(cmd.OutOrStdout())
	fmt.Fprintf(tw, "Email:\t%s\n", p.Email)
	fmt.Fprintf(tw, "First name:\t%s\n", p.FirstName)
	fmt.Fprintf(tw, "Bio:\t%s\n", p.Bio)
	tw.Flush()
}
