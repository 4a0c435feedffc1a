package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rhystmorgan/veContacts/internal/audio"
	"rhystmorgan/veContacts/internal/config"
	"rhystmorgan/veContacts/internal/contacts"
	"rhystmorgan/veContacts/internal/logging"
	"rhystmorgan/veContacts/internal/models"
	"rhystmorgan/veContacts/internal/simulator"
	"rhystmorgan/veContacts/internal/storage"
	"rhystmorgan/veContacts/internal/views"
)

var (
	configPath  string
	dataDir     string
	backendName string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "vecontacts",
	Short: "A terminal contact book",
	Long: `vecontacts lists, searches and adds contacts in the terminal and
simulates calls, messages and video calls with them.

Run without a subcommand to open the interactive UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default <data dir>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding contacts and logs (default ~/.vecontacts)")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "Storage backend: file, sqlite or memory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// runtime holds everything a command needs once config is resolved.
type runtime struct {
	cfg     *config.Config
	logger  *logging.Logger
	backend storage.Backend
	store   *contacts.Store
}

func setup() (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if backendName != "" {
		cfg.Backend = backendName
	}
	if verbose {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{FilePath: cfg.LogFile(), Debug: cfg.Debug})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	backend, err := openBackend(cfg)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	logger.Debug("Runtime ready",
		zap.String("backend", cfg.Backend),
		zap.String("data_dir", cfg.DataDir),
		zap.String("form_rule", cfg.FormRule))

	persister := storage.NewContactStorage(backend, cfg.StorageKey, logger.Logger)
	return &runtime{
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		store:   contacts.NewStore(persister, models.BuiltinContacts(), logger.Logger),
	}, nil
}

func openBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return storage.NewSQLiteBackend(cfg.DataDir)
	case config.BackendMemory:
		return storage.NewMemoryBackend(), nil
	default:
		return storage.NewFileBackend(cfg.DataDir)
	}
}

func (r *runtime) Close() {
	if err := r.backend.Close(); err != nil {
		r.logger.Warn("Failed to close storage", zap.Error(err))
	}
	_ = r.logger.Close()
}

func newPlayer(cfg *config.Config) audio.Player {
	if cfg.Audio == config.AudioOff {
		return audio.NopPlayer{}
	}
	// The renderer owns stdout; ring on stderr so the bell cannot split an
	// escape sequence.
	return audio.NewBellPlayer(os.Stderr)
}

func runTUI(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	sim := simulator.New(newPlayer(rt.cfg), rt.logger.Logger)
	app := views.NewAppModel(rt.store, sim, rt.logger.Logger, views.Options{
		LoadDelay:  rt.cfg.LoadDelay,
		CloseDelay: rt.cfg.CloseDelay,
		Rule:       rt.cfg.Rule(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	app.Shutdown()
	if err != nil {
		rt.logger.Error("Program exited with error", zap.Error(err))
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}
