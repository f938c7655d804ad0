// Command adminctl is the terminal front-end of the dashboard. The session
// token is kept encrypted in the local state database.
package main

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"admindash/apiclient"
	"admindash/config"
	"admindash/controllers"
	"admindash/database"
	"admindash/logging"
	"admindash/security"
	"admindash/services"
	"admindash/session"
)

var errNotLoggedIn = errors.New("not logged in: run `adminctl login` first")

type app struct {
	cfg    config.Config
	db     *sql.DB
	logger *zap.Logger
	sess   *session.Session
	svc    *services.Services
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Manage categories, products and transactions from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newCategoriesCmd(a),
		newProductsCmd(a),
		newTransactionsCmd(a),
		newDashboardCmd(a),
		newProfileCmd(a),
	)
	return root
}

func (a *app) open() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.EncryptionKey == "" {
		return errors.New("ENCRYPTION_KEY must be set to keep the session token")
	}
	if err := cfg.ApplyLocation(); err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		return errors.Wrap(err, "initializing logging")
	}

	db, err := database.Open(cfg.StateDB)
	if err != nil {
		return err
	}

	client, err := apiclient.New(cfg.APIURL, &http.Client{Timeout: cfg.HTTPTimeout})
	if err != nil {
		db.Close()
		return err
	}

	a.cfg = cfg
	a.db = db
	a.logger = logger
	a.sess = session.New(session.NewSQLiteStorage(db, security.NewCipher(cfg.EncryptionKey)))
	a.svc = services.New(client.WithTokens(a.sess))
	return nil
}

func (a *app) close() error {
	if a.logger != nil {
		a.logger.Sync()
	}
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// gate turns a screen's terminal phase into the command's error.
func gate[T any](state *controllers.ViewState[T]) error {
	switch state.Phase() {
	case controllers.PhaseRedirect:
		if state.Expired() {
			return errors.New(controllers.ErrorMessage(state.Err(), ""))
		}
		return errNotLoggedIn
	case controllers.PhaseError:
		return errors.New(state.Message())
	}
	return nil
}

func table(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}
