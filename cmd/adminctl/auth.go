package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"admindash/controllers"
	"admindash/models"
)

func newLoginCmd(a *app) *cobra.Command {
	var creds models.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and keep the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controllers.NewLogin(a.sess, a.svc)
			if !c.Submit(cmd.Context(), creds) {
				return errors.New(c.Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", creds.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&creds.Email, "email", "", "account email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var reg models.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controllers.NewRegister(a.sess, a.svc)
			if !c.Submit(cmd.Context(), reg) {
				return errors.New(c.Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Success)
			return nil
		},
	}
	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&reg.Username, "username", "", "user name")
	cmd.Flags().StringVar(&reg.Password, "password", "", "account password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), controllers.Logout(a.sess))
			return nil
		},
	}
}
