// Package main provides the CLI entrypoint for the library lending service.
// It wires subcommands (serve, migrate, borrow, return), loads configuration,
// and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"library/internal/config"
	"library/internal/lending"
	"library/pkg/logger"
	"library/pkg/storage/postgres"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getLending builds the lending rules on top of storage from the config.
func getLending(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL) lending.Lending {
	options, err := lending.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "invalid lending config", zap.Error(err))
	}

	l, err := lending.New(pgsql, options)
	if err != nil {
		logger.Fatal(ctx, "could not create lending", zap.Error(err))
	}

	return l
}

// exitCode is returned by a command's RunE to exit with a specific status.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:           "library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		borrowCommand(cfg),
		returnCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()

	var code exitCode
	switch {
	case err == nil:
	case errors.As(err, &code):
		os.Exit(int(code)) //nolint: gocritic
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configArgs picks the -c/--config flag out of args so the config can be
// loaded before cobra parses the command line.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch {
		case (arg == "-c" || arg == "--config") && i+1 < len(args):
			return []string{"-c", args[i+1]}
		case len(arg) > 3 && arg[:3] == "-c=":
			return []string{arg}
		case len(arg) > 9 && arg[:9] == "--config=":
			return []string{"-c=" + arg[9:]}
		}
	}

	return nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
