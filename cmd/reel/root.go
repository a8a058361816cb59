package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/mailbox"
	"github.com/mmcdole/reel/internal/store"
	"github.com/mmcdole/reel/internal/tui"
)

type rootFlags struct {
	configFile  string
	catalogFile string
	noSnap      bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "reel",
		Short:         "A snapping carousel browser for catalogs",
		Long:          "reel shows a catalog as a horizontal strip of cards. Drag, swipe or jump between items; the focused item is remembered between runs.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default is $HOME/.config/reel/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.catalogFile, "catalog", "", "TOML catalog file (overrides catalog.file)")
	rootCmd.Flags().BoolVar(&flags.noSnap, "no-snap", false, "start in free scroll mode")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd(&flags))
	rootCmd.AddCommand(newForgetCmd(&flags))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reel %s\n", Version)
		},
	}
}

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := adapter.LoadConfig(flags.configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path, err := adapter.SaveConfig(cfg)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration saved to %s\n", path)
			return nil
		},
	}
}

func newForgetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Forget the remembered focus for the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := adapter.LoadConfig(flags.configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if flags.catalogFile != "" {
				cfg.Catalog.File = flags.catalogFile
			}

			cat, err := catalogLoader(cfg.Catalog)()
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			focusStore, err := store.NewFocusStore(cfg.Store.Path)
			if err != nil {
				return fmt.Errorf("failed to open focus store: %w", err)
			}
			defer focusStore.Close()

			if err := focusStore.ClearFocus(cat.Name); err != nil {
				return fmt.Errorf("failed to clear focus: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Forgot focus for %s\n", cat.Name)
			return nil
		},
	}
}

func run(out io.Writer, flags rootFlags) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(flags.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flags.catalogFile != "" {
		cfg.Catalog.File = flags.catalogFile
	}
	if flags.noSnap {
		cfg.Carousel.Snap = false
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	load := catalogLoader(cfg.Catalog)

	// Piped output gets a plain listing instead of the TUI
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printCatalog(out, load)
	}

	focusStore, err := store.NewFocusStore(cfg.Store.Path)
	if err != nil {
		logger.Warn("focus store unavailable, focus will not persist", "error", err)
		focusStore, _ = store.NewFocusStore("")
	}
	defer focusStore.Close()

	model := tui.NewModel(tui.Options{
		Loader:       load,
		Store:        focusStore,
		Snap:         cfg.Carousel.Snap,
		ItemWidth:    cfg.Carousel.ItemWidth,
		RestoreFocus: cfg.Carousel.RestoreFocus,
		Logger:       logger,
	})

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Config edits while running toggle snap mode
	box := mailbox.NewProgram(p)
	adapter.WatchConfig(logger, func(next *adapter.Config) {
		if flags.noSnap {
			return
		}
		box.Dispatch(tui.SnapChangedMsg{Snap: next.Carousel.Snap})
	})

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// catalogLoader reads the configured catalog file, or the built-in sample
// when none is set
func catalogLoader(cfg adapter.CatalogConfig) tui.CatalogLoader {
	return func() (*domain.Catalog, error) {
		if cfg.File == "" {
			return adapter.SampleCatalog(cfg.Hidden)
		}
		return adapter.LoadCatalog(cfg.File, cfg.Hidden)
	}
}

func printCatalog(out io.Writer, load tui.CatalogLoader) error {
	cat, err := load()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, cat.Name)
	for _, item := range cat.Items {
		fmt.Fprintf(out, "  %s\t%s\n", item.ID, item.DisplayTitle())
	}
	return nil
}
