package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"product-categories/internal/config"
)

func TestBuildDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "localhost",
		DBUser:     "test_user",
		DBPassword: "test_password",
		DBName:     "test_db",
		DBPort:     "5432",
	}

	assert.Equal(t,
		"host=localhost user=test_user password=test_password dbname=test_db port=5432 sslmode=disable",
		buildDSN(cfg))

	cfg.DBSSLMode = "require"
	assert.Contains(t, buildDSN(cfg), "sslmode=require")
}

func TestNewDatabase_InvalidDriver(t *testing.T) {
	// "invalid_driver_name" is not registered, so sql.Open returns an error.
	db, err := newDatabaseWithDriver(&config.Config{}, "invalid_driver_name")

	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to connect to DB")
}

// --- Mock drivers ---
// They let sql.Open and db.Ping run without a real database.

type mockDriver struct {
	openErr error
}

func (m *mockDriver) Open(name string) (driver.Conn, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	return &mockConn{}, nil
}

type mockConn struct{}

func (c *mockConn) Prepare(query string) (driver.Stmt, error) { return nil, errors.New("not supported") }
func (c *mockConn) Close() error                              { return nil }
func (c *mockConn) Begin() (driver.Tx, error)                 { return nil, errors.New("not supported") }

func init() {
	sql.Register("mock_driver_success", &mockDriver{})
	sql.Register("mock_driver_unreachable", &mockDriver{openErr: errors.New("connection refused")})
}

func TestNewDatabase_Success(t *testing.T) {
	db, err := newDatabaseWithDriver(&config.Config{DBHost: "localhost"}, "mock_driver_success")
	assert.NoError(t, err)
	assert.NotNil(t, db)
	db.Close()
}

func TestNewDatabase_PingFailure(t *testing.T) {
	db, err := newDatabaseWithDriver(&config.Config{DBHost: "invalid_host"}, "mock_driver_unreachable")

	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to ping DB")
}
