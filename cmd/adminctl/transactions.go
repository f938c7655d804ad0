package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"admindash/controllers"
	"admindash/models"
)

func newTransactionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "tx"},
		Short:   "List and create transactions",
	}

	var filter models.TransactionFilter
	var txType, status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Type = models.TransactionType(txType)
			filter.Status = models.TransactionStatus(status)
			c := controllers.NewTransactionList(a.sess, a.svc)
			c.Load(cmd.Context(), filter)
			if err := gate(c.State); err != nil {
				return err
			}
			if c.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions found.")
				return nil
			}
			tw := table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tTOTAL\tDATE\tNOTES")
			for _, t := range c.State.Data() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					t.DisplayCode(), t.TransactionType.Label(), t.Status.Label(),
					controllers.FormatMoney(t.TotalAmount), controllers.FormatDateTime(t.CreatedAt), t.Notes)
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&filter.Search, "search", "", "search code or notes")
	list.Flags().StringVar(&txType, "type", "", "sale or purchase")
	list.Flags().StringVar(&status, "status", "", "pending, completed or cancelled")
	list.Flags().StringVar(&filter.DateFrom, "from", "", "earliest date")
	list.Flags().StringVar(&filter.DateTo, "to", "", "latest date")

	var (
		createType, createStatus, notes string
		items                           []string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a transaction from --item PRODUCT_ID:QUANTITY[:UNIT_PRICE] lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := controllers.NewTransactionBuilder(a.sess, a.svc)
			b.LoadProducts(cmd.Context())
			if err := gate(b.Products); err != nil {
				return err
			}

			b.Type = models.TransactionType(createType)
			if !b.Type.Valid() {
				return fmt.Errorf("invalid type %q", createType)
			}
			b.Status = models.TransactionStatus(createStatus)
			if !b.Status.Valid() {
				return fmt.Errorf("invalid status %q", createStatus)
			}
			b.Notes = notes

			lines, priced, err := parseItems(items)
			if err != nil {
				return err
			}
			b.SetItems(lines)
			for i, line := range lines {
				if !priced[i] {
					b.SelectProduct(i, line.Product)
				}
			}

			if err := b.Submit(cmd.Context()); err != nil {
				if gateErr := gate(b.Products); gateErr != nil {
					return gateErr
				}
				if b.Error != "" {
					return errors.New(b.Error)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), b.SuccessNotice())
			return nil
		},
	}
	create.Flags().StringVar(&createType, "type", string(models.TransactionSale), "sale or purchase")
	create.Flags().StringVar(&createStatus, "status", string(models.StatusPending), "pending, completed or cancelled")
	create.Flags().StringVar(&notes, "notes", "", "free-form notes")
	create.Flags().StringArrayVar(&items, "item", nil, "PRODUCT_ID:QUANTITY[:UNIT_PRICE], repeatable")

	cmd.AddCommand(list, create)
	return cmd
}

// parseItems reads PRODUCT:QUANTITY[:PRICE] values. priced marks lines with
// an explicit price; the rest take the product's current price.
func parseItems(args []string) ([]controllers.LineItem, []bool, error) {
	lines := make([]controllers.LineItem, 0, len(args))
	priced := make([]bool, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, nil, fmt.Errorf("invalid item %q: want PRODUCT_ID:QUANTITY[:UNIT_PRICE]", arg)
		}
		price := "0"
		if len(parts) == 3 {
			price = parts[2]
		}
		lines = append(lines, controllers.ParseLine(parts[0], parts[1], price))
		priced = append(priced, len(parts) == 3)
	}
	return lines, priced, nil
}
