//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// exerciseCatalogStore imports, inspects, browses and rolls back a catalog store.
func exerciseCatalogStore(t *testing.T, env []string) {
	t.Helper()

	out, err := runCommand(t, env, "", "catalog", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "version 3")

	out, err = runCommand(t, env, "", "catalog", "import")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 59 languages")

	out, err = runCommand(t, env, "", "catalog", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Languages: 59")

	out, err = runCommand(t, env, "", "compare", "c", "python", "--output", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Performans,9.5,3.0")

	out, err = runCommand(t, env, "", "list", "--sort", "performance", "--limit", "1", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "assembly"`)

	out, err = runCommand(t, env, "", "catalog", "migrate", "--target-version", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "to version 0")
}

// TestCatalogWithMySQL tests the langradar CLI with a MySQL catalog store.
func TestCatalogWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "langradar",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/langradar", host, port.Port())
	exerciseCatalogStore(t, []string{
		"LANGRADAR_CATALOG_BACKEND=mysql",
		"LANGRADAR_CATALOG_SOURCE=" + connStr,
	})
}

// TestCatalogWithPostgres tests the langradar CLI with a PostgreSQL catalog store.
func TestCatalogWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	exerciseCatalogStore(t, []string{
		"LANGRADAR_CATALOG_BACKEND=postgresql",
		"LANGRADAR_CATALOG_SOURCE=" + connStr,
	})
}
