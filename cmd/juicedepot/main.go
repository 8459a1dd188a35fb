// Command juicedepot runs the depot's HTTP API and prints reports from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erazemk/juicedepot/internal/config"
)

// flags are the raw command-line values. Only flags the user set override
// the loaded config.
type flags struct {
	envFile       string
	backend       string
	dbPath        string
	postgresDSN   string
	redisAddr     string
	redisDB       int
	addr          string
	logPath       string
	logLevel      string
	locale        string
	hashPasswords bool
	reseed        bool
}

func main() {
	root, cleanup := newRootCmd()
	err := root.Execute()
	cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd returns the root command and a func that releases the logger
// it sets up. Call it after Execute whether or not the command failed.
func newRootCmd() (*cobra.Command, func()) {
	var f flags
	var cfg config.Config
	closeLog := func() {}

	root := &cobra.Command{
		Use:           "juicedepot",
		Short:         "Juice depot stock and sales bookkeeping",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(f.envFile)
			if err != nil {
				return err
			}
			cfg = applyFlags(cmd, loaded, f)
			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			cleanup, err := setupLogger(cfg.LogPath, level)
			if err != nil {
				return err
			}
			closeLog = cleanup
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.envFile, "env-file", ".env", "dotenv file with JUICEDEPOT_* settings")
	pf.StringVar(&f.backend, "backend", config.BackendSQLite, "storage backend: sqlite, postgres, redis or memory")
	pf.StringVarP(&f.dbPath, "db", "d", "juicedepot.sqlite3", "SQLite database path")
	pf.StringVar(&f.postgresDSN, "postgres-dsn", "", "PostgreSQL connection string")
	pf.StringVar(&f.redisAddr, "redis-addr", "", "Redis address (host:port)")
	pf.IntVar(&f.redisDB, "redis-db", 0, "Redis database number")
	pf.StringVarP(&f.logPath, "log", "l", "", "log file path (default: stdout/stderr only)")
	pf.StringVar(&f.logLevel, "log-level", "info", "lowest level logged: debug, info, warn or error")
	pf.StringVar(&f.locale, "locale", "en", "locale for numbers in printed reports")
	pf.BoolVar(&f.hashPasswords, "hash-passwords", false, "store bcrypt hashes for new accounts")
	pf.BoolVar(&f.reseed, "reseed-corrupt", true, "replace unreadable collections with seed data")

	root.AddCommand(
		newServeCmd(&cfg, &f),
		newReportCmd(&cfg),
		newInventoryCmd(&cfg),
	)
	return root, func() { closeLog() }
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, cfg config.Config, f flags) config.Config {
	set := cmd.Flags().Changed
	if set("backend") {
		cfg.Backend = f.backend
	}
	if set("db") {
		cfg.DBPath = f.dbPath
	}
	if set("postgres-dsn") {
		cfg.PostgresDSN = f.postgresDSN
	}
	if set("redis-addr") {
		cfg.RedisAddr = f.redisAddr
	}
	if set("redis-db") {
		cfg.RedisDB = f.redisDB
	}
	if set("addr") {
		cfg.Addr = f.addr
	}
	if set("log") {
		cfg.LogPath = f.logPath
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if set("locale") {
		cfg.Locale = f.locale
	}
	if set("hash-passwords") {
		cfg.HashPasswords = f.hashPasswords
	}
	if set("reseed-corrupt") {
		cfg.ReseedCorrupt = f.reseed
	}
	return cfg
}
