package setup

import (
	"fmt"
	"os"

	"healthlog/db/postgres"
	"healthlog/logger"

	"github.com/lib/pq"
	"golang.org/x/term"
)

// maintenanceDB is where the bootstrap connects before the application
// database exists.
const maintenanceDB = "postgres"

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// EnsurePrincipal verifies the application role can connect. When the role
// does not exist it prompts once for the superuser password and creates the
// role with login and database-creation rights. Every other connection
// failure is fatal; elevation cannot fix a wrong password or a dead server.
func (o *Orchestrator) EnsurePrincipal() error {
	dsn := postgres.DSN(o.Cfg.PGHost, o.Cfg.PGPort, o.Cfg.PGUser, o.Cfg.PGPassword, maintenanceDB)
	err := o.pingDSN(dsn)

	switch kind := postgres.ClassifyConnectError(err); kind {
	case postgres.ConnectOK:
		logger.Log.Infow("database principal detected", "user", o.Cfg.PGUser)
		return nil
	case postgres.ConnectPrincipalMissing:
		return o.createPrincipal()
	default:
		return fmt.Errorf("connection check (%s): %w", kind, err)
	}
}

func (o *Orchestrator) createPrincipal() error {
	fmt.Printf("\nEl usuario '%s' no existe. Se requiere acceso temporal de superusuario.\n", o.Cfg.PGUser)
	fmt.Printf("Contraseña de '%s': ", o.Cfg.PGSuperuser)
	pw, err := readPassword()
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading superuser password: %w", err)
	}

	dsn := postgres.DSN(o.Cfg.PGHost, o.Cfg.PGPort, o.Cfg.PGSuperuser, string(pw), maintenanceDB)
	conn, err := o.openDB(dsn)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("superuser connection: %w", err)
	}

	// DDL cannot take placeholders; quote explicitly.
	stmt := fmt.Sprintf("CREATE ROLE %s LOGIN PASSWORD %s CREATEDB",
		pq.QuoteIdentifier(o.Cfg.PGUser), pq.QuoteLiteral(o.Cfg.PGPassword))
	if _, err := conn.Exec(stmt); err != nil {
		return fmt.Errorf("creating role %s: %w", o.Cfg.PGUser, err)
	}

	logger.Log.Infow("database principal created", "user", o.Cfg.PGUser)
	return nil
}

// EnsureDatabase creates the application database when absent. The role owns
// what it creates, which stands in for the original's blanket grant.
func (o *Orchestrator) EnsureDatabase() error {
	dsn := postgres.DSN(o.Cfg.PGHost, o.Cfg.PGPort, o.Cfg.PGUser, o.Cfg.PGPassword, maintenanceDB)
	conn, err := o.openDB(dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	var exists bool
	err = conn.QueryRow(`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname=$1)`,
		o.Cfg.PGDatabase).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = conn.Exec("CREATE DATABASE " + pq.QuoteIdentifier(o.Cfg.PGDatabase))
	if err != nil {
		return err
	}
	logger.Log.Infow("database created", "name", o.Cfg.PGDatabase)
	return nil
}

func (o *Orchestrator) pingDSN(dsn string) error {
	conn, err := o.openDB(dsn)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.Ping()
}
