// Package dao 实现数据访问层
package dao

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/securenotes/secure-notes-service/internal/model"
	"github.com/securenotes/secure-notes-service/pkg/fileurl"
	"github.com/securenotes/secure-notes-service/pkg/util"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DatabaseConfig 数据库配置（与 AppConfig 解耦，便于独立测试）
type DatabaseConfig struct {
	Type            string
	Path            string
	UserName        string
	Password        string
	Host            string
	Name            string
	TablePrefix     string
	AutoMigrate     bool
	Charset         string
	ParseTime       bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime string
	ConnMaxIdleTime string
	RunMode         string
}

// Dao 数据访问对象，封装数据库连接
type Dao struct {
	db     *gorm.DB
	ctx    context.Context
	logger *zap.Logger
}

// Option Dao 构造选项
type Option func(*Dao)

// WithLogger 注入日志器
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dao) {
		d.logger = logger
	}
}

// New 创建 Dao 实例
func New(db *gorm.DB, ctx context.Context, opts ...Option) *Dao {
	d := &Dao{
		db:     db,
		ctx:    ctx,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DB 获取底层数据库连接
func (d *Dao) DB() *gorm.DB {
	return d.db
}

// NewDBEngineWithConfig initializes the gorm engine (using injected config)
// NewDBEngineWithConfig 初始化 gorm 数据库引擎（使用注入的配置）
func NewDBEngineWithConfig(c DatabaseConfig, lg *zap.Logger) (*gorm.DB, error) {

	dialector := dbDialector(c)
	if dialector == nil {
		return nil, fmt.Errorf("unsupported database type: %s", c.Type)
	}

	logMode := gormlogger.Default.LogMode(gormlogger.Silent)
	if c.RunMode == "debug" {
		logMode = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logMode,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   c.TablePrefix,
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	// 获取通用数据库对象 sql.DB，配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(util.MustParseDuration(c.ConnMaxLifetime, 30*time.Minute))
	sqlDB.SetConnMaxIdleTime(util.MustParseDuration(c.ConnMaxIdleTime, 10*time.Minute))

	if c.AutoMigrate {
		if err := model.AutoMigrateAll(db); err != nil {
			return nil, fmt.Errorf("auto migrate failed: %w", err)
		}
		if lg != nil {
			lg.Info("database migrated", zap.String("type", c.Type))
		}
	}

	return db, nil
}

func dbDialector(c DatabaseConfig) gorm.Dialector {
	if c.Type == "mysql" {
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=%s&parseTime=%t&loc=Local",
			c.UserName,
			c.Password,
			c.Host,
			c.Name,
			c.Charset,
			c.ParseTime,
		))
	} else if c.Type == "sqlite" {
		if c.Path != ":memory:" && !fileurl.IsExist(c.Path) {
			_ = fileurl.CreatePath(c.Path, os.ModePerm)
		}
		return sqlite.Open(c.Path)
	}
	return nil
}
