package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"magazine-press/internal/config"
	"magazine-press/internal/infra/adapter/persistence/postgres"
	"magazine-press/internal/infra/adapter/persistence/sqlite"
	"magazine-press/internal/infra/db"
	"magazine-press/internal/observability/logging"
	"magazine-press/internal/repository"
	"magazine-press/internal/resilience/circuitbreaker"
	artUC "magazine-press/internal/usecase/article"
	authorUC "magazine-press/internal/usecase/author"
	magUC "magazine-press/internal/usecase/magazine"
)

var (
	cfgFile      string
	driverFlag   string
	dsnFlag      string
	logFormat    string
	outputFormat string
	verbose      bool

	logger *slog.Logger
	app    *application
)

// application holds what one invocation needs: the open database and the use cases over it.
type application struct {
	db        *sql.DB
	dialect   string
	authors   *authorUC.Service
	magazines *magUC.Service
	articles  *artUC.Service
}

var rootCmd = &cobra.Command{
	Use:   "magazinectl",
	Short: "Manage authors, magazines and articles",
	Long: `magazinectl reads and writes the magazine store.

The store is selected by DB_DRIVER / DATABASE_URL, an optional YAML file
(--config) or the --driver / --dsn flags, in increasing precedence.

Example usage:
  magazinectl schema init
  magazinectl author create 1 "Jane Doe"
  magazinectl magazine create 1 Wired Technology
  magazinectl article create 1 1 "Hello world" --content "..."
  magazinectl magazine contributing-authors 1`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "database driver: sqlite or postgres (overrides DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "data source name (overrides DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(logging.FormatJSON), "log format: json or text")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", outputText, "output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// setup resolves configuration, builds the logger and opens the store.
func setup(cmd *cobra.Command, _ []string) error {
	if outputFormat != outputText && outputFormat != outputJSON {
		return fmt.Errorf("--output must be %s or %s", outputText, outputJSON)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	logger = logging.WithRunID(logging.New(cmd.ErrOrStderr(), logging.Format(logFormat), level), uuid.NewString())
	ctx := logging.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	sqlDB, err := db.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	var connector db.Connector = db.NewSQLConnector(sqlDB)
	if cfg.CircuitBreaker.Enabled {
		connector = circuitbreaker.NewConnector(connector, circuitbreaker.DBConfig(cfg.CircuitBreaker.Timeout))
	}

	authors, magazines, articles := newRepositories(cfg.Driver, connector)
	app = &application{
		db:        sqlDB,
		dialect:   cfg.Driver,
		authors:   &authorUC.Service{Repo: authors},
		magazines: &magUC.Service{Repo: magazines},
		articles:  &artUC.Service{Repo: articles, Authors: authors, Magazines: magazines},
	}

	logger.Debug("store opened",
		slog.String("driver", cfg.Driver),
		slog.Bool("circuit_breaker", cfg.CircuitBreaker.Enabled))
	return nil
}

// loadConfig layers environment, then the config file, then flags, and only
// then fills defaults and validates.
func loadConfig() (*config.DatabaseConfig, error) {
	cfg := config.DatabaseConfigFromEnv()
	if cfgFile != "" {
		if err := cfg.LoadFile(cfgFile); err != nil {
			return nil, err
		}
	}
	if driverFlag != "" {
		cfg.Driver = driverFlag
	}
	if dsnFlag != "" {
		cfg.DSN = dsnFlag
	}
	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	return cfg, nil
}

func newRepositories(dialect string, c db.Connector) (repository.AuthorRepository, repository.MagazineRepository, repository.ArticleRepository) {
	if dialect == db.DialectPostgres {
		return postgres.NewAuthorRepo(c), postgres.NewMagazineRepo(c), postgres.NewArticleRepo(c)
	}
	return sqlite.NewAuthorRepo(c), sqlite.NewMagazineRepo(c), sqlite.NewArticleRepo(c)
}

// closeApp releases the store opened by setup. Safe to call when setup never ran.
func closeApp() {
	if app == nil {
		return
	}
	if err := app.db.Close(); err != nil && logger != nil {
		logger.Warn("failed to close database", slog.Any("error", err))
	}
	app = nil
}
