// Package testutil provides test helpers including container management
// and test client utilities.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tinyxi/pethatch/internal/config"
	"github.com/tinyxi/pethatch/internal/storage/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container testcontainers.Container
	Pool      *postgres.Pool
	RawPool   *pgxpool.Pool
	Config    config.DatabaseConfig
}

// NewPostgresContainer starts a PostgreSQL test container and returns
// a connected Pool.
//
// Precondition: Docker must be available.
// Postcondition: Returns a running container with a connected pool,
// or fails the test.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("starting postgres container: %v [%s]", err, time.Since(start))
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("getting container host: %v", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("getting mapped port: %v", err)
	}

	dbCfg := config.DatabaseConfig{
		Host:            host,
		Port:            mappedPort.Int(),
		User:            "test",
		Password:        "test",
		Name:            "test",
		SSLMode:         "disable",
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
	}

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		t.Fatalf("connecting to test postgres: %v [%s]", err, time.Since(start))
	}

	t.Logf("postgres container started [%s]", time.Since(start))

	pc := &PostgresContainer{
		container: container,
		Pool:      pool,
		RawPool:   pool.DB(),
		Config:    dbCfg,
	}

	t.Cleanup(func() {
		pool.Close()
		_ = container.Terminate(ctx)
	})

	return pc
}

// ApplyMigrations runs the schema creation SQL directly for tests.
// This avoids requiring the migrate tool in the test environment.
//
// Precondition: Pool must be connected.
// Postcondition: The pets, inventories, and shop_items tables exist in the
// test database.
func (pc *PostgresContainer) ApplyMigrations(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	schema := `
		CREATE TABLE IF NOT EXISTS pets (
			owner_id            TEXT             PRIMARY KEY,
			owner_name          TEXT             NOT NULL DEFAULT '',
			nickname            TEXT             NOT NULL DEFAULT '',
			species_id          TEXT             NOT NULL,
			stage               SMALLINT         NOT NULL DEFAULT 0,
			level               INTEGER          NOT NULL DEFAULT 1,
			exp                 INTEGER          NOT NULL DEFAULT 0,
			hp                  INTEGER          NOT NULL,
			max_hp              INTEGER          NOT NULL,
			attack              INTEGER          NOT NULL,
			defense             INTEGER          NOT NULL,
			speed               INTEGER          NOT NULL,
			crit_rate           DOUBLE PRECISION NOT NULL DEFAULT 0.05,
			crit_damage         DOUBLE PRECISION NOT NULL DEFAULT 1.5,
			hunger              INTEGER          NOT NULL DEFAULT 50,
			mood                INTEGER          NOT NULL DEFAULT 50,
			coins               INTEGER          NOT NULL DEFAULT 0,
			auto_heal_threshold INTEGER          NOT NULL DEFAULT 0,
			skills              TEXT[]           NOT NULL DEFAULT '{}',
			last_battle_time    TIMESTAMPTZ      NOT NULL DEFAULT 'epoch',
			last_updated        TIMESTAMPTZ      NOT NULL,
			created_at          TIMESTAMPTZ      NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_pets_species_id ON pets (species_id);

		CREATE TABLE IF NOT EXISTS inventories (
			owner_id  TEXT    NOT NULL,
			item_name TEXT    NOT NULL,
			quantity  INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			PRIMARY KEY (owner_id, item_name)
		);

		CREATE TABLE IF NOT EXISTS shop_items (
			id            TEXT    PRIMARY KEY,
			name          TEXT    NOT NULL UNIQUE,
			price         INTEGER NOT NULL CHECK (price >= 0),
			effect_hunger INTEGER NOT NULL DEFAULT 0,
			effect_mood   INTEGER NOT NULL DEFAULT 0,
			effect_hp     INTEGER NOT NULL DEFAULT 0,
			display_order INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := pc.RawPool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("applying migrations: %v", err)
	}
	t.Logf("migrations applied [%s]", time.Since(start))
}

// NewPool starts a disposable PostgreSQL container with the schema applied
// and returns its raw connection pool.
//
// Precondition: Docker must be available.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pc := NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return pc.RawPool
}

// DSN returns the connection string for the test database.
func (pc *PostgresContainer) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.Config.User, pc.Config.Password,
		pc.Config.Host, pc.Config.Port,
		pc.Config.Name, pc.Config.SSLMode,
	)
}
