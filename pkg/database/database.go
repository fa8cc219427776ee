package database

import (
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormopentracing "gorm.io/plugin/opentracing"

	"vidtube.com/cmd/model"
)

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// GormConfig is shared by the MySQL pool and the test databases.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}
}

// Open connects to MySQL, installs the tracing plugin and migrates the schema.
func Open(dsn string, pool PoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), GormConfig())
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	if err = Setup(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Setup installs plugins on an opened handle and migrates every table.
func Setup(db *gorm.DB) error {
	if err := db.Use(gormopentracing.New()); err != nil {
		return errors.Wrap(err, "install opentracing plugin")
	}
	hlog.Info("Starting tables migration...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		hlog.Errorf("Failed to migrate tables: %v", err)
		return errors.Wrap(err, "auto migrate")
	}
	hlog.Info("Tables migration completed successfully")
	return nil
}

// Ping reports whether the pool can reach the server.
func Ping(db *gorm.DB) error {
	if db == nil {
		return errors.New("database not initialised")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
