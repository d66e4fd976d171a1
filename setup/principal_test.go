package setup

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsurePrincipal_AlreadyExists(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()

	o := &Orchestrator{
		Cfg: testConfig(t),
		openDB: func(dsn string) (*sql.DB, error) {
			return db, nil
		},
	}

	assert.NoError(t, o.EnsurePrincipal())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsurePrincipal_MissingRoleTriggersElevation(t *testing.T) {
	orig := readPassword
	readPassword = func() ([]byte, error) { return []byte("rootpw"), nil }
	defer func() { readPassword = orig }()

	appDB, appMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	appMock.ExpectPing().WillReturnError(&pq.Error{Code: "28000"})

	superDB, superMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	superMock.ExpectPing()
	superMock.ExpectExec("CREATE ROLE").WillReturnResult(sqlmock.NewResult(0, 0))

	conns := []*sql.DB{appDB, superDB}
	dsns := []string{}
	o := &Orchestrator{
		Cfg: testConfig(t),
		openDB: func(dsn string) (*sql.DB, error) {
			dsns = append(dsns, dsn)
			db := conns[0]
			conns = conns[1:]
			return db, nil
		},
	}

	require.NoError(t, o.EnsurePrincipal())

	require.Len(t, dsns, 2)
	assert.Contains(t, dsns[0], "user=informatica1")
	assert.Contains(t, dsns[1], "user=postgres")
	assert.Contains(t, dsns[1], "password=rootpw")
	assert.NoError(t, appMock.ExpectationsWereMet())
	assert.NoError(t, superMock.ExpectationsWereMet())
}

func TestEnsurePrincipal_WrongPasswordIsFatal(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(&pq.Error{Code: "28P01"})

	calls := 0
	o := &Orchestrator{
		Cfg: testConfig(t),
		openDB: func(dsn string) (*sql.DB, error) {
			calls++
			return db, nil
		},
	}

	err = o.EnsurePrincipal()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth rejected")
	// No elevation attempt on a bad password.
	assert.Equal(t, 1, calls)
}

func TestEnsureDatabase_CreatesWhenAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("fp_info1_2025_2").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`CREATE DATABASE "fp_info1_2025_2"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	o := &Orchestrator{
		Cfg: testConfig(t),
		openDB: func(dsn string) (*sql.DB, error) {
			return db, nil
		},
	}

	assert.NoError(t, o.EnsureDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}
