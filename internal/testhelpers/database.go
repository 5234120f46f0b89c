package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/sqlite"
	gormlogger "gorm.io/gorm/logger"

	"github.com/recipfy/recipe-service/config"
	"github.com/recipfy/recipe-service/internal/database"
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresUser     = "recipes"
	postgresPassword = "recipes"
	postgresDB       = "recipes"
)

// SetupSQLite returns a migrated in-memory database closed with the test
func SetupSQLite(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), gormlogger.Discard)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(db.DB, zerolog.Nop()); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return db
}

// SetupPostgres starts a PostgreSQL container and returns a migrated
// connection built from the same config the service uses. It skips when
// docker is missing or tests run with -short.
func SetupPostgres(t *testing.T) (*database.DB, *config.Config) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     postgresUser,
				"POSTGRES_PASSWORD": postgresPassword,
				"POSTGRES_DB":       postgresDB,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
						postgresUser, postgresPassword, host, port.Port(), postgresDB)
				}),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	cfg := config.Default()
	cfg.Env = config.Test
	cfg.DB.Host = host
	cfg.DB.Port = mappedPort.Port()
	cfg.DB.User = postgresUser
	cfg.DB.Password = postgresPassword
	cfg.DB.Name = postgresDB

	db, err := database.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(db.DB, zerolog.Nop()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db, cfg
}
