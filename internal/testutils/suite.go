package testutils

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"assignment-workflow-backend/internal/config"
	"assignment-workflow-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "workflow"
	pgPassword = "workflow"
	pgDatabase = "assignments"
)

// One postgres container serves every integration suite of a test binary.
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite hands a migrated assignment schema to a test suite
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// RepositoryTestSuite adds factories bound to the shared DB
type RepositoryTestSuite struct {
	*BaseTestSuite
	Factories *Factories
}

// NewRepositoryTestSuite wraps a base suite with factories bound to its DB
func NewRepositoryTestSuite(t *testing.T) *RepositoryTestSuite {
	base := SetupTestSuite(t)
	return &RepositoryTestSuite{BaseTestSuite: base, Factories: NewFactories(base.DB)}
}

// SetupTestSuite starts the shared container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and purges the container. TestMain calls it.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	name := sharedResource.Container.Name
	if err := sharedPool.Purge(sharedResource); err != nil {
		logrus.WithError(err).WithField("container", name).Warn("could not purge postgres container")
	} else {
		logrus.WithField("container", name).Info("postgres container purged")
	}
	sharedResource = nil
	sharedPool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// CleanTestDB empties every migrated table, owned entities first
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := migratedTables()
	m := s.DB.Migrator()
	s.DB.Exec(`SET session_replication_role = replica;`)
	for i := len(tables) - 1; i >= 0; i-- {
		if m.HasTable(tables[i]) {
			s.DB.Exec(`TRUNCATE TABLE "` + tables[i] + `" RESTART IDENTITY CASCADE;`)
		}
	}
	s.DB.Exec(`SET session_replication_role = DEFAULT;`)
}

// migratedTables lists table names in database.Models order
func migratedTables() []string {
	var tables []string
	for _, model := range database.Models() {
		if named, ok := model.(interface{ TableName() string }); ok {
			tables = append(tables, named.TableName())
		}
	}
	return tables
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	if err := pool.Retry(func() error { return ping(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate assignment schema: %w", err)
	}
	if err := verifySchema(db); err != nil {
		return err
	}
	sharedDB = db

	sharedConfig = &config.Config{
		DatabaseURL:         dsn,
		Port:                "8080",
		LogLevel:            "debug",
		Environment:         "test",
		LockBackend:         "memory",
		NotifyBackend:       "log",
		DirectoryBackend:    "static",
		DefaultWindowHours:  8,
		DefaultForecastDays: 30,
		MaxForecastDays:     90,
		TxMaxAttempts:       3,
	}

	logrus.WithField("port", port).Info("shared postgres ready")
	return nil
}

// ping is one readiness probe through database/sql; pool.Retry repeats it
func ping(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()
	return std.Ping()
}

// verifySchema fails fast when a model did not produce its table
func verifySchema(db *gorm.DB) error {
	m := db.Migrator()
	for _, table := range migratedTables() {
		if !m.HasTable(table) {
			return fmt.Errorf("table %s missing after migration", table)
		}
	}
	return nil
}
