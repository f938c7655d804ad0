package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"admindash/controllers"
	"admindash/models"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "List and edit categories",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controllers.NewCategoryList(a.sess, a.svc)
			c.Load(cmd.Context(), search)
			if err := gate(c.State); err != nil {
				return err
			}
			tw := table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "SLUG\tNAME\tDESCRIPTION")
			for _, cat := range c.State.Data() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", cat.Slug, cat.Name, cat.Description)
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&search, "search", "", "filter by name")

	var input models.CategoryInput
	// edit passes the slug as its argument; add has none
	save := func(cmd *cobra.Command, args []string) error {
		slug := ""
		if len(args) > 0 {
			slug = args[0]
		}
		f := controllers.NewCategoryForm(a.sess, a.svc, slug)
		notice, ok := f.Save(cmd.Context(), input)
		if err := gate(f.State); err != nil {
			return err
		}
		if !ok {
			return errors.New(f.Error)
		}
		fmt.Fprintln(cmd.OutOrStdout(), notice)
		return nil
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a category",
		Args:  cobra.NoArgs,
		RunE:  save,
	}
	edit := &cobra.Command{
		Use:   "edit SLUG",
		Short: "Rename or describe a category",
		Args:  cobra.ExactArgs(1),
		RunE:  save,
	}
	for _, c := range []*cobra.Command{add, edit} {
		c.Flags().StringVar(&input.Name, "name", "", "category name")
		c.Flags().StringVar(&input.Description, "description", "", "category description")
	}

	del := &cobra.Command{
		Use:   "delete SLUG",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controllers.NewCategoryList(a.sess, a.svc)
			message, ok := c.Delete(cmd.Context(), args[0])
			if err := gate(c.State); err != nil {
				return err
			}
			if !ok {
				return errors.New(message)
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.AddCommand(list, add, edit, del)
	return cmd
}

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Browse products",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controllers.NewProductList(a.sess, a.svc)
			c.Load(cmd.Context(), search)
			if err := gate(c.State); err != nil {
				return err
			}
			if c.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No products found.")
				return nil
			}
			tw := table(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tSLUG\tNAME\tPRICE\tSTOCK")
			for _, p := range c.State.Data() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Slug, p.Name, controllers.FormatMoney(p.Price), p.Stock)
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&search, "search", "", "free-text search")

	show := &cobra.Command{
		Use:   "show SLUG",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controllers.NewProductDetail(a.sess, a.svc, args[0])
			c.Load(cmd.Context())
			if err := gate(c.State); err != nil {
				return err
			}
			p := c.State.Data()
			tw := table(cmd.OutOrStdout())
			fmt.Fprintf(tw, "Name:\t%s\n", p.Name)
			fmt.Fprintf(tw, "Category:\t%s\n", p.CategoryName)
			fmt.Fprintf(tw, "Price:\t%s\n", controllers.FormatMoney(p.Price))
			fmt.Fprintf(tw, "Stock:\t%d\n", p.Stock)
			fmt.Fprintf(tw, "Description:\t%s\n", p.Description)
			fmt.Fprintf(tw, "Last updated:\t%s\n", controllers.FormatDate(p.UpdatedAt))
			return tw.Flush()
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}
