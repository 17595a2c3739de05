// Migration runner: creates the schema and seeds the admin account.
package main

import (
	"fmt"
	"os"

	"vznx/config"
	"vznx/dao"
	"vznx/model"

	"github.com/go-gormigrate/gormigrate/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func connectPostgres() *gorm.DB {
	pg := config.GetConfig().Postgres
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		pg.Host, pg.User, pg.Password, pg.DBName, pg.Port, pg.SSLMode, pg.TimeZone)
	db, err := gorm.Open(postgres.Open(dsn))
	if err != nil {
		panic(fmt.Errorf("connect to postgres: %w", err))
	}
	return db
}

func main() {
	db := connectPostgres()

	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			// add optional attributes to team members
			ID: "2025083101",
			Migrate: func(tx *gorm.DB) error {
				// it's a good practice to copy the struct inside the function,
				// so side effects are prevented if the original struct changes during the time
				type TeamMember struct {
					Attributes []byte `gorm:"type:jsonb"`
				}
				return tx.Migrator().AddColumn(&TeamMember{}, "Attributes")
			},
			Rollback: func(tx *gorm.DB) error {
				type TeamMember struct {
					Attributes []byte `gorm:"type:jsonb"`
				}
				return tx.Migrator().DropColumn(&TeamMember{}, "Attributes")
			},
		},
	})

	m.InitSchema(func(tx *gorm.DB) error {
		err := tx.AutoMigrate(dao.Entities()...)
		if err != nil {
			return err
		}

		password := os.Getenv("VZNX_ADMIN_PASSWORD")
		if password == "" {
			password = "admin"
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		admin := model.User{
			Name:     "admin",
			Password: &hashed,
			Role:     model.RoleAdmin,
		}

		res := tx.Create(&admin)
		if res.Error != nil {
			return res.Error
		}
		return nil
	})

	if err := m.Migrate(); err != nil {
		panic(fmt.Errorf("could not migrate: %w", err))
	}
}
