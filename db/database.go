package db

import (
	"context"

	"gorm.io/gorm"
)

// Database hands out gorm handles. Session returns a handle scoped to one
// request; GetDB returns the shared root used at startup.
type Database interface {
	GetDB() *gorm.DB
	Session(ctx context.Context) *gorm.DB
	Close() error
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }

// Session starts a fresh statement chain bound to ctx. Nothing set on the
// returned handle leaks into other requests, and pooled connections are
// returned by database/sql once each statement finishes.
func (g *GormDatabase) Session(ctx context.Context) *gorm.DB {
	return g.DB.Session(&gorm.Session{NewDB: true, Context: ctx})
}

func (g *GormDatabase) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
