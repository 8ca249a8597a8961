package mysql

import (
	"time"

	"shopfront/internal/config"
	"shopfront/internal/domain"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func New(cfg config.MySQLConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&domain.Product{}, &domain.Order{}, &domain.OrderItem{}); err != nil {
		return nil, err
	}

	return db, nil
}

// Connect keeps retrying until the database is reachable. Startup blocks on
// this the same way the storefront blocks on its database.
func Connect(cfg config.MySQLConfig, log *zap.SugaredLogger) *gorm.DB {
	for {
		db, err := New(cfg)
		if err == nil {
			log.Infow("mysql connected", "host", cfg.Host, "database", cfg.Database)
			return db
		}
		log.Errorw("mysql connection failed, retrying in 5s", "error", err)
		time.Sleep(5 * time.Second)
	}
}
