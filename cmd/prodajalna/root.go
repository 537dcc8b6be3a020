package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erazemk/prodajalna/internal/auth"
	"github.com/erazemk/prodajalna/internal/cli"
	"github.com/erazemk/prodajalna/internal/config"
	"github.com/erazemk/prodajalna/internal/store"
)

// app carries what PersistentPreRunE prepared to the subcommands.
type app struct {
	cfg      *config.Config
	inv      *store.Inventory
	closeLog func()
}

// close releases the log file. It is safe to call more than once.
func (a *app) close() {
	if a.closeLog != nil {
		a.closeLog()
		a.closeLog = nil
	}
}

// execute runs cmd and closes the log file whether or not it failed.
func execute(cmd *cobra.Command, a *app) error {
	defer a.close()
	return cmd.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	var (
		storeFile string
		usersFile string
		logFile   string
		logLevel  string
	)

	root := &cobra.Command{
		Use:          "prodajalna",
		Short:        "Inventory, sales and purchase ledger for a single shop",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			// Flags win over the environment.
			flags := cmd.Flags()
			if flags.Changed("store") {
				cfg.StoreFile = storeFile
			}
			if flags.Changed("users") {
				cfg.UsersFile = usersFile
			}
			if flags.Changed("log") {
				cfg.Log.File = logFile
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}

			// The menu owns stdout, so the interactive command logs to stderr only.
			logOut := cmd.OutOrStdout()
			if cmd == cmd.Root() {
				logOut = cmd.ErrOrStderr()
			}
			closeLog, err := setupLogger(cfg.Log.File, cfg.Log.Level, logOut, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.closeLog = closeLog
			a.cfg = cfg

			a.inv = store.New()
			if err := a.inv.Load(cfg.StoreFile); err != nil {
				return fmt.Errorf("loading inventory: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.interactive(cmd)
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&storeFile, "store", "s", "store.json", "inventory file (env PRODAJALNA_STORE_FILE)")
	pf.StringVarP(&usersFile, "users", "u", "users.json", "users file (env PRODAJALNA_USERS_FILE)")
	pf.StringVarP(&logFile, "log", "l", "", "also write logs to this file (env PRODAJALNA_LOG_FILE)")
	pf.StringVar(&logLevel, "log-level", "warn", "debug, info, warn or error (env PRODAJALNA_LOG_LEVEL)")

	root.AddCommand(newReportCmd(a), newExportCmd(a))
	return root
}

// interactive runs the text menu until the operator exits.
func (a *app) interactive(cmd *cobra.Command) error {
	creds, err := auth.Open(auth.Config{
		File:       a.cfg.UsersFile,
		SessionTTL: a.cfg.SessionTTL,
		Cost:       a.cfg.BcryptCost,
	})
	if err != nil {
		return err
	}

	created, err := creds.EnsureAdmin(a.cfg.AdminUsername, a.cfg.AdminPassword)
	if err != nil {
		slog.Warn("could not create default admin user", "error", err)
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Created default admin user %q\n", a.cfg.AdminUsername)
	}

	menu := cli.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.inv, creds, a.cfg.StoreFile)
	return menu.Run()
}
