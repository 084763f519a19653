package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"admintable/internal/client"
	"admintable/internal/config"
	"admintable/internal/logging"
	"admintable/internal/members"
	"admintable/internal/ui"
	"admintable/internal/ui/users"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "admintable",
		Short:         "admintable – browse and manage the member list in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&configPath, "config", "", "Path to the config file (default $XDG_CONFIG_HOME/admintable/config.yaml)")
	f.String(config.KeyEndpoint, client.DefaultEndpoint, "URL of the members JSON document")
	f.Int(config.KeyPageSize, members.DefaultPageSize, "Rows per page")
	f.Int(config.KeyPagesToDisplay, members.DefaultPagesToDisplay, "Page numbers shown in the pagination bar")
	f.Duration(config.KeyTimeout, config.DefaultTimeout, "Fetch timeout, 0 for none")
	f.Duration(config.KeyCacheTTL, config.DefaultCacheTTL, "How long a fetched list is reused")
	f.String(config.KeyLogFile, "", "Write JSON logs to this file")
	f.Bool(config.KeyDebug, false, "Enable debug logging")

	rootCmd.AddCommand(newDumpCmd())
	return rootCmd
}

// app bundles what both commands need.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	client client.MembersClient
	state  *members.State
}

func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	log := logging.New(logging.Options{File: cfg.LogFile, Debug: cfg.Debug})
	log.Debug("config loaded",
		zap.String("endpoint", cfg.Endpoint),
		zap.Int("page_size", cfg.PageSize),
		zap.Duration("timeout", cfg.Timeout))

	mc, err := client.NewMembersClient(client.Options{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
		CacheTTL: cfg.CacheTTL,
		Logger:   log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create members client")
	}
	state := members.New(members.Config{
		PageSize:       cfg.PageSize,
		PagesToDisplay: cfg.PagesToDisplay,
	}, log.Named("members"))
	return &app{cfg: cfg, log: log, client: mc, state: state}, nil
}

func run(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	// Start the Bubble Tea TUI
	p := tea.NewProgram(ui.NewModel(a.state, a.client, users.Options{
		Timeout: a.cfg.Timeout,
		Logger:  a.log,
	}), tea.WithAltScreen(), tea.WithContext(contextOrBackground(cmd)))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "error running TUI")
	}
	return nil
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
