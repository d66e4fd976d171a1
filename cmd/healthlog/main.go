package main

import (
	"errors"
	"fmt"
	"os"

	"healthlog/auth"
	"healthlog/cli"
	"healthlog/config"
	"healthlog/db"
	"healthlog/db/mongo"
	"healthlog/db/postgres"
	"healthlog/logger"
	"healthlog/report"
	"healthlog/repository"
	"healthlog/setup"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "healthlog",
	Short: "Bitácora de salud personal (SQL + Mongo)",
	Long: `healthlog is a personal health-log CLI. Daily metrics live in a
relational store, free-form notes and attachment metadata in a document
store, and logins are checked against a flat credential file.

On a fresh install (no credential file) it provisions both stores from the
seed files before starting the interactive session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision both stores from the seed files, ignoring the first-run marker",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.orch.Run()
		if err != nil {
			return err
		}
		fmt.Printf("Instalación completada: %d de %d notas cargadas.\n",
			res.NotesInserted, res.NotesTotal)
		return nil
	},
}

var reportUser string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the JSON health report for one user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.connectSQL(); err != nil {
			return err
		}
		path, err := a.reports().Generate(reportUser)
		if errors.Is(err, report.ErrNoData) {
			fmt.Println(err)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Reporte generado exitosamente: %s\n", path)
		return nil
	},
}

// app bundles the wired components shared by the subcommands.
type app struct {
	cfg   *config.Config
	creds *repository.CSVCredentialStore
	mg    *mongo.MongoDB
	pg    *postgres.PostgresDB
	notes *repository.MongoNotesRepo
	orch  *setup.Orchestrator
}

func newApp() (*app, error) {
	cfg := config.LoadConfig()
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, err
	}

	creds := repository.NewCSVCredentialStore(cfg.CredentialFile())

	// The document store shares the database name with the relational one.
	mg := mongo.NewMongoDB(cfg.MongoURL, cfg.PGDatabase)
	if err := mg.Connect(); err != nil {
		if mg.Client == nil {
			return nil, fmt.Errorf("mongo url unusable: %w", err)
		}
		// Document-store failures never abort; operations will surface
		// their own errors.
		logger.Log.Warnw("document store unreachable", "error", err)
	}

	notes := repository.NewMongoNotesRepo(mg.Database())
	orch := setup.NewOrchestrator(cfg, creds, notes)

	return &app{cfg: cfg, creds: creds, mg: mg, notes: notes, orch: orch}, nil
}

func (a *app) connectSQL() error {
	dsn := postgres.DSN(a.cfg.PGHost, a.cfg.PGPort, a.cfg.PGUser, a.cfg.PGPassword, a.cfg.PGDatabase)
	a.pg = postgres.NewPostgresDB(dsn)
	if err := a.pg.Connect(); err != nil {
		return fmt.Errorf("relational store: %w", err)
	}
	return nil
}

func (a *app) reports() *report.Generator {
	return report.NewGenerator(repository.NewPostgresHealthRepo(a.pg.Conn), a.cfg.ReportDir)
}

func (a *app) close() {
	var conns []db.DB
	if a.pg != nil {
		conns = append(conns, a.pg)
	}
	if a.mg != nil && a.mg.Client != nil {
		conns = append(conns, a.mg)
	}
	for _, c := range conns {
		c.Disconnect()
	}
}

func runInteractive() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	// First-run provisioning; a fatal failure has already prompted for a
	// keypress inside AutoSetup.
	if err := a.orch.AutoSetup(); err != nil {
		os.Exit(1)
	}

	if err := a.creds.Initialize(); err != nil {
		return fmt.Errorf("credential file: %w", err)
	}

	if err := a.connectSQL(); err != nil {
		return err
	}

	healthRepo := repository.NewPostgresHealthRepo(a.pg.Conn)
	authSvc := auth.NewService(a.creds, healthRepo)
	reports := report.NewGenerator(healthRepo, a.cfg.ReportDir)

	session := cli.NewSession(authSvc, healthRepo, a.notes, a.creds, reports)
	return session.Run()
}

func main() {
	reportCmd.Flags().StringVar(&reportUser, "user", "", "user id to report on")
	reportCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(setupCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
