package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tanasitp/timesheet-management/internal"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := initGormDB(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		ctx, cancel := internal.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		db = db.WithContext(ctx)

		if clearData {
			for _, table := range []string{"time_entries", "companies", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		demoUsers := []struct {
			Email  string
			Name   string
			Prefix string
		}{
			{"demo@example.com", "Demo User", "Mr."},
			{"admin@example.com", "Admin User", "Ms."},
		}

		demoCompanies := []struct {
			Name        string
			Code        string
			Description string
			ApprovedBy  string
		}{
			{"ABC Corporation", "ABC", "Technology Solutions Company", "John Smith (Manager)"},
			{"XYZ Enterprise", "XYZ", "Consulting Services", "Sarah Johnson (Director)"},
			{"StartupTech", "ST", "Software Development Startup", "Mike Chen (CEO)"},
		}

		for _, u := range demoUsers {
			userID, created := ensureUser(db, u.Email, u.Name, u.Prefix, string(hash))
			if created {
				fmt.Println("Seeded user:", u.Email)
			} else {
				fmt.Println("User already exists:", u.Email)
			}

			var firstCompanyID int64
			for i, c := range demoCompanies {
				companyID := ensureCompany(db, userID, c.Name, c.Code, c.Description, c.ApprovedBy)
				if i == 0 {
					firstCompanyID = companyID
				}
			}

			if err := db.Exec("UPDATE users SET selected_company_id = ? WHERE id = ? AND selected_company_id IS NULL", firstCompanyID, userID).Error; err != nil {
				log.Fatalf("failed to set selected company for %s: %v", u.Email, err)
			}
		}

		fmt.Println("Seed data created successfully")
	},
}

func ensureUser(db *gorm.DB, email, name, prefix, passwordHash string) (int64, bool) {
	var userID int64
	if err := db.Raw("SELECT id FROM users WHERE email = ?", email).Row().Scan(&userID); err == nil {
		return userID, false
	}

	row := db.Raw(
		"INSERT INTO users (email, name, prefix, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now()) RETURNING id",
		email, name, prefix, passwordHash,
	).Row()
	if err := row.Scan(&userID); err != nil {
		log.Fatalf("failed to insert user %s: %v", email, err)
	}
	return userID, true
}

func ensureCompany(db *gorm.DB, userID int64, name, code, description, approvedBy string) int64 {
	var companyID int64
	if err := db.Raw("SELECT id FROM companies WHERE user_id = ? AND name = ?", userID, name).Row().Scan(&companyID); err == nil {
		return companyID
	}

	row := db.Raw(
		"INSERT INTO companies (user_id, name, code, description, approved_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now()) RETURNING id",
		userID, name, code, description, approvedBy,
	).Row()
	if err := row.Scan(&companyID); err != nil {
		log.Fatalf("failed to insert company %s: %v", name, err)
	}
	return companyID
}
