//go:build !no_pgsql

package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yeisme/destvault/pkg/configs"
)

// createPgSQLDialector 创建PostgreSQL dialector.
func createPgSQLDialector(dsn string) gorm.Dialector {
	return postgres.Open(dsn)
}

// 注册PostgreSQL dialector工厂函数.
func init() {
	RegisterDialectorFactory(configs.PostgreSQL, createPgSQLDialector)
	RegisterDialectorFactory(configs.Postgres, createPgSQLDialector)
	RegisterDialectorFactory(configs.Pg, createPgSQLDialector)
}
