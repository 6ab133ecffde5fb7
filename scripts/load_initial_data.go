package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"permitpro-backend/internal/config"
	"permitpro-backend/internal/database"
	"permitpro-backend/internal/database/models"
	"permitpro-backend/internal/repository"
	"permitpro-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type UserData struct {
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
}

type ContractorData struct {
	CompanyName   string `yaml:"company_name"`
	LicenseNumber string `yaml:"license_number"`
	Address       string `yaml:"address"`
	PhoneNumber   string `yaml:"phone_number"`
	Email         string `yaml:"email,omitempty"`
	ContactPerson string `yaml:"contact_person,omitempty"`
}

type PackageData struct {
	CustomerName      string `yaml:"customer_name"`
	PropertyAddress   string `yaml:"property_address"`
	County            string `yaml:"county"`
	PermitType        string `yaml:"permit_type"`
	Status            string `yaml:"status"`
	ContractorLicense string `yaml:"contractor_license,omitempty"`
}

type SeedFile struct {
	Users       []UserData       `yaml:"users"`
	Contractors []ContractorData `yaml:"contractors"`
	Packages    []PackageData    `yaml:"packages"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Postgres may still be starting when run from docker compose
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(context.Background(), db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func readSeedFiles(dataDir string) (*SeedFile, error) {
	var all SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		all.Users = append(all.Users, file.Users...)
		all.Contractors = append(all.Contractors, file.Contractors...)
		all.Packages = append(all.Packages, file.Packages...)
		return nil
	})

	return &all, err
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, dataDir string) error {
	seed, err := readSeedFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to read seed files: %w", err)
	}

	usersCreated := 0
	for _, u := range seed.Users {
		created, err := createUser(ctx, db, u)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		if created {
			usersCreated++
		}
	}
	log.Printf("Users: %d created, %d total", usersCreated, len(seed.Users))

	contractorsCreated := 0
	for _, c := range seed.Contractors {
		created, err := createContractor(ctx, db, c)
		if err != nil {
			return fmt.Errorf("failed to create contractor %s: %w", c.LicenseNumber, err)
		}
		if created {
			contractorsCreated++
		}
	}
	log.Printf("Contractors: %d created, %d total", contractorsCreated, len(seed.Contractors))

	// Packages go through the service layer so each gets its checklist
	validate := validator.New()
	packageRepo := repository.NewPackageRepository(db)
	templates := service.NewChecklistTemplateService(repository.NewChecklistTemplateRepository(db), validate)
	packages := service.NewPackageService(packageRepo, repository.NewContractorRepository(db), templates, validate)

	packagesCreated := 0
	for _, p := range seed.Packages {
		created, err := createPackage(ctx, db, packages, p)
		if err != nil {
			log.Printf("Warning: failed to create package for %s: %v", p.CustomerName, err)
			continue
		}
		if created {
			packagesCreated++
		}
	}
	log.Printf("Packages: %d created, %d total", packagesCreated, len(seed.Packages))

	return nil
}

func createUser(ctx context.Context, db *gorm.DB, data UserData) (bool, error) {
	role := data.Role
	if role == "" {
		role = models.UserRoleAdministrator
	}
	user := models.User{Email: strings.ToLower(data.Email), Name: data.Name, Role: role}

	result := db.WithContext(ctx).Where("email = ?", user.Email).FirstOrCreate(&user)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func createContractor(ctx context.Context, db *gorm.DB, data ContractorData) (bool, error) {
	contractor := models.Contractor{
		CompanyName:   data.CompanyName,
		LicenseNumber: data.LicenseNumber,
		Address:       data.Address,
		PhoneNumber:   data.PhoneNumber,
		Email:         data.Email,
		ContactPerson: data.ContactPerson,
	}

	result := db.WithContext(ctx).Where("license_number = ?", data.LicenseNumber).FirstOrCreate(&contractor)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func createPackage(ctx context.Context, db *gorm.DB, packages *service.PackageService, data PackageData) (bool, error) {
	var existing models.Package
	err := db.WithContext(ctx).
		Where("customer_name = ? AND property_address = ?", data.CustomerName, data.PropertyAddress).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	pkg, err := packages.Create(ctx, &service.CreatePackageRequest{
		CustomerName:    data.CustomerName,
		PropertyAddress: data.PropertyAddress,
		County:          data.County,
		PermitType:      models.PermitType(data.PermitType),
		ContractorRef:   service.ContractorRef{ContractorLicense: data.ContractorLicense},
	})
	if err != nil {
		return false, err
	}

	status := models.PackageStatus(data.Status)
	if status != "" && status != pkg.Status {
		if _, err := packages.UpdateStatus(ctx, pkg.ID, status); err != nil {
			return true, err
		}
	}
	return true, nil
}
