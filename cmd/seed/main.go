package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"staffdesk/internal/config"
	"staffdesk/internal/db"
	apperrors "staffdesk/internal/errors"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
	"staffdesk/internal/service"
)

// SeedEmployeeData represents one record of the seed file.
type SeedEmployeeData struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Position    string `json:"position"`
	Salary      string `json:"salary"`
	HireDate    string `json:"hireDate"`
}

func main() {
	file := flag.String("file", "employees.json", "path to the employee seed file")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Employee{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	records, err := readSeedFile(*file)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}
	log.Printf("Read %d employees from %s", len(records), *file)

	employeeService := service.NewEmployeeService(repository.NewEmployeeRepository(gormDB))
	created, skipped := seedEmployees(context.Background(), employeeService, records)

	log.Printf("Seed completed successfully!")
	log.Printf("  - Employees created: %d", created)
	log.Printf("  - Records skipped:   %d", skipped)
}

// readSeedFile parses the JSON seed file.
func readSeedFile(path string) ([]SeedEmployeeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var records []SeedEmployeeData
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// seedEmployees creates employees through the service so that all field and
// uniqueness rules apply; rejected records are skipped, not fatal.
func seedEmployees(ctx context.Context, svc *service.EmployeeService, records []SeedEmployeeData) (created, skipped int) {
	for _, item := range records {
		salary, err := decimal.NewFromString(item.Salary)
		if err != nil {
			log.Printf("Skipping %s %s: invalid salary %q", item.FirstName, item.LastName, item.Salary)
			skipped++
			continue
		}
		hireDate, err := model.ParseDate(item.HireDate)
		if err != nil {
			log.Printf("Skipping %s %s: invalid hire date %q", item.FirstName, item.LastName, item.HireDate)
			skipped++
			continue
		}

		_, err = svc.Create(ctx, service.EmployeeDraft{
			FirstName:   item.FirstName,
			LastName:    item.LastName,
			Email:       item.Email,
			PhoneNumber: item.PhoneNumber,
			Position:    item.Position,
			Salary:      salary,
			HireDate:    hireDate,
		})
		if err != nil {
			if typed, ok := err.(*apperrors.Error); ok {
				log.Printf("Skipping %s %s: %s", item.FirstName, item.LastName, typed.Message)
				skipped++
				continue
			}
			log.Fatalf("Failed to seed employee %s %s: %v", item.FirstName, item.LastName, err)
		}
		created++
	}
	return created, skipped
}
