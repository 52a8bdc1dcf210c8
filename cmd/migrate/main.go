package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/infrastructure/config"
	"github.com/wms/backend/internal/infrastructure/logger"
	"github.com/wms/backend/internal/infrastructure/migration"
)

const usage = `Usage: migrate [flags] <command> [args]

Commands:
  up                  Apply all pending migrations
  down                Roll back all migrations
  step <n>            Apply n migrations (negative rolls back)
  goto <version>      Migrate to an exact schema version
  version             Print the current schema version
  force <version>     Overwrite the recorded version (dirty-state recovery)
  drop -confirm       Drop everything in the schema
  create <name>       Create an empty up/down migration pair
  list                List migration files

Flags:
  -path string        Migrations directory (default "migrations")
  -log-level string   Log level (default "info")
`

func main() {
	var (
		path     = flag.String("path", "migrations", "migrations directory")
		logLevel = flag.String("log-level", "info", "log level")
	)
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	log := logger.New(logger.Config{Level: *logLevel, Format: "console", Output: "stdout"})
	defer func() {
		_ = log.Sync()
	}()

	// create and list only touch the filesystem, no database needed.
	switch command {
	case "create":
		if flag.NArg() < 2 {
			log.Fatal("Usage: migrate create <name>")
		}
		mf, err := migration.CreateMigration(*path, flag.Arg(1))
		if err != nil {
			log.Fatal("Failed to create migration", zap.Error(err))
		}
		log.Info("Migration created",
			zap.String("up", mf.UpPath),
			zap.String("down", mf.DownPath),
		)
		return
	case "list":
		migrations, err := migration.ListMigrations(*path)
		if err != nil {
			log.Fatal("Failed to list migrations", zap.Error(err))
		}
		if len(migrations) == 0 {
			log.Info("No migrations found", zap.String("path", *path))
			return
		}
		for _, m := range migrations {
			fmt.Println(m)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := migration.New(db, *path, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Error("Failed to close migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "step":
		n, perr := intArg(1)
		if perr != nil {
			log.Fatal("Usage: migrate step <n>", zap.Error(perr))
		}
		err = migrator.Steps(n)
	case "goto":
		v, perr := intArg(1)
		if perr != nil || v < 0 {
			log.Fatal("Usage: migrate goto <version>")
		}
		err = migrator.GoTo(uint(v))
	case "version":
		version, dirty, verr := migrator.Version()
		if verr != nil {
			log.Fatal("Failed to read version", zap.Error(verr))
		}
		log.Info("Current schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	case "force":
		v, perr := intArg(1)
		if perr != nil {
			log.Fatal("Usage: migrate force <version>", zap.Error(perr))
		}
		err = migrator.Force(v)
	case "drop":
		if flag.NArg() < 2 || flag.Arg(1) != "-confirm" {
			log.Fatal("Refusing to drop schema without -confirm")
		}
		err = migrator.Drop()
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal("Migration command failed", zap.String("command", command), zap.Error(err))
	}
}

func intArg(i int) (int, error) {
	if flag.NArg() < i+1 {
		return 0, fmt.Errorf("missing argument")
	}
	return strconv.Atoi(flag.Arg(i))
}
