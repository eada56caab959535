package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/yokva-landing/internal/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupSignupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect(migrations.DriverPostgres, dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Up(context.Background(), db.DB, migrations.DriverPostgres))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestSignupRepositories_Postgres(t *testing.T) {
	db, teardown := setupSignupPostgresContainer(t)
	defer teardown()

	writeRepo := NewSignupWriteRepository(db)
	readRepo := NewSignupReadRepository(db)
	ctx := context.Background()

	t.Run("InsertIfAbsent", func(t *testing.T) {
		created, err := writeRepo.InsertIfAbsent(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.True(t, created)

		created, err = writeRepo.InsertIfAbsent(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("Window", func(t *testing.T) {
		for i := 0; i < MaxRecentSignups; i++ {
			_, err := writeRepo.InsertIfAbsent(ctx, fmt.Sprintf("user%02d@example.com", i))
			require.NoError(t, err)
		}

		count, err := readRepo.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, MaxRecentSignups+1, count)

		emails, err := readRepo.ListRecent(ctx)
		assert.NoError(t, err)
		assert.Len(t, emails, MaxRecentSignups)
		assert.Equal(t, "user00@example.com", emails[0])
		assert.Equal(t, fmt.Sprintf("user%02d@example.com", MaxRecentSignups-1), emails[len(emails)-1])
	})
}
