package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"permitpro-backend/internal/config"
	"permitpro-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// Shared, process-wide Postgres container
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "permitpro_test"
)

// cleanTables lists every table CleanTestDB empties
var cleanTables = []string{
	"package_checklist_items",
	"package_checklists",
	"checklist_items",
	"checklist_templates",
	"package_subcontractors",
	"documents",
	"packages",
	"subcontractors",
	"contractors",
	"users",
}

// BaseTestSuite gives integration suites a migrated database that is emptied around every test
type BaseTestSuite struct {
	suite.Suite
	DB       *gorm.DB
	Config   *config.Config
	Ctx      context.Context
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// SetupTestSuite starts the shared Postgres container on first use and returns a per-suite wrapper
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPGContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{
		DB:       sharedDB,
		Config:   sharedConfig,
		Ctx:      context.Background(),
		pool:     sharedPool,
		resource: sharedResource,
	}
}

// CleanupSharedContainer tears down Docker resources when the whole test run ends
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		}
		sharedResource = nil
		sharedPool = nil
		sharedDB = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// CleanTestDB empties every application table in one statement and resets identities
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	present := make([]string, 0, len(cleanTables))
	for _, t := range cleanTables {
		if m.HasTable(t) {
			present = append(present, `"`+t+`"`)
		}
	}
	if len(present) > 0 {
		s.DB.Exec("TRUNCATE TABLE " + strings.Join(present, ", ") + " RESTART IDENTITY CASCADE")
	}
}

func initSharedPGContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, dsn, err := startPostgres(pool)
	if err != nil {
		return err
	}
	sharedResource = resource

	db, err := waitForDatabase(pool, dsn)
	if err != nil {
		return err
	}
	sharedDB = db

	sharedConfig = &config.Config{
		DatabaseURL:   dsn,
		Port:          "8000",
		LogLevel:      "debug",
		Environment:   "test",
		StorageDriver: "filesystem",
		UploadsDir:    "uploads",
		MaxUploadMB:   10,
	}
	log.Printf("Shared Postgres ready at %s", resource.GetHostPort("5432/tcp"))
	return nil
}

// startPostgres runs a throwaway Postgres that Docker removes on stop and that expires after ten minutes
func startPostgres(pool *dockertest.Pool) (*dockertest.Resource, string, error) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + testDBUser,
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not start postgres: %w", err)
	}
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		testDBUser, testDBPassword, resource.GetHostPort("5432/tcp"), testDBName)
	return resource, dsn, nil
}

// waitForDatabase retries a plain database/sql ping until Postgres accepts connections, then opens and migrates GORM
func waitForDatabase(pool *dockertest.Pool, dsn string) (*gorm.DB, error) {
	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}); err != nil {
		return nil, fmt.Errorf("could not connect to docker database: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return nil, fmt.Errorf("could not migrate test database: %w", err)
	}
	return db, nil
}
