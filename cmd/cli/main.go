package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nutriplan/diet-service/config"
	"github.com/nutriplan/diet-service/internal/catalog"
	"github.com/nutriplan/diet-service/internal/database"
)

var (
	cfgFile     string
	catalogFile string
	cfg         *config.Config
	logger      *zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "diet-service",
	Short: "Diet Service CLI - Cost-optimized menu planning tool",
	Long: `A CLI tool for inspecting the food catalog, dietary reference intakes, and
running cost-minimizing diet optimizations against a local catalog file or the
configured database.`,
	PersistentPreRunE: persistentPreRun,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog file (.csv or .xlsx), overrides the configured source")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config is optional when a catalog file is given, don't fail here
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

// persistentPreRun runs before each command and initializes dependencies
func persistentPreRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || cmd.Name() == "completion" {
		return nil
	}

	logger = initLogger()
	return nil
}

func initLogger() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if cfg != nil && cfg.Logging.Level != "" {
		if parsedLevel, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsedLevel
		}
	}

	// Always use console format for CLI
	noColor := false
	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: noColor}
	if cfg != nil {
		if cfg.Logging.Format == "json" {
			output = os.Stderr
		} else {
			output = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.Logging.NoColor}
		}
	}

	log := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &log
}

// loadCatalog builds and loads a catalog from the --catalog flag or, failing
// that, the configured source.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	loader, err := buildLoader(ctx)
	if err != nil {
		return nil, err
	}

	cat := catalog.New(loader)
	if err := cat.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

func buildLoader(ctx context.Context) (catalog.Loader, error) {
	if catalogFile != "" {
		switch strings.ToLower(filepath.Ext(catalogFile)) {
		case ".csv":
			return catalog.NewCSVLoader(catalogFile), nil
		case ".xlsx":
			return catalog.NewXLSXLoader(catalogFile), nil
		default:
			return nil, fmt.Errorf("unsupported catalog file type: %s", catalogFile)
		}
	}

	if cfg == nil {
		return nil, fmt.Errorf("no --catalog file given and no config loaded")
	}

	switch cfg.Catalog.Source {
	case "csv":
		return catalog.NewCSVLoader(cfg.Catalog.Path), nil
	case "xlsx":
		loader := catalog.NewXLSXLoader(cfg.Catalog.Path)
		loader.SheetName = cfg.Catalog.Sheet
		return loader, nil
	case "postgres":
		dbURL := config.GetDatabaseURL()
		if dbURL == "" {
			return nil, fmt.Errorf("catalog source is postgres but DATABASE_URL is not set")
		}
		if err := database.Connect(
			ctx,
			dbURL,
			cfg.Database.MaxConnections,
			cfg.Database.MinConnections,
			cfg.Database.MaxConnLifetime,
			cfg.Database.MaxConnIdleTime,
		); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return catalog.NewPostgresLoader(database.Pool()), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func main() {
	defer database.Close()
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
