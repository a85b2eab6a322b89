package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ChangeNotifier is notified after every committed write to a table.
// It is implemented by the watch hub; a nil notifier disables
// change notifications.
type ChangeNotifier interface {
	Notify(table string)
}

// Connect opens the SQLite database, migrates the schema and configures
// the connection pool.
//
// The returned handle is passed explicitly to the ledgers, there is no
// package level database instance.
func Connect(dsn string, notifier ChangeNotifier) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Cascade deletes on the allocation table depend on foreign keys
	// being enforced
	if !strings.Contains(dsn, "_pragma=foreign_keys") {
		dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(Part{}, Project{}, Allocation{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	// Query callbacks
	err = db.Callback().Query().After("*").Register("bazooka:after_query", queryCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Query().After("*").Register("bazooka:after_query_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Create().After("*").Register("bazooka:after_create_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Update().After("*").Register("bazooka:after_update_general", generalCallback)
	if err != nil {
		return nil, err
	}

	err = db.Callback().Delete().After("*").Register("bazooka:after_delete_general", generalCallback)
	if err != nil {
		return nil, err
	}

	// Change notifications for live queries
	if notifier != nil {
		notify := notifyCallback(notifier)

		err = db.Callback().Create().After("*").Register("bazooka:after_create_notify", notify)
		if err != nil {
			return nil, err
		}

		err = db.Callback().Update().After("*").Register("bazooka:after_update_notify", notify)
		if err != nil {
			return nil, err
		}

		err = db.Callback().Delete().After("*").Register("bazooka:after_delete_notify", notify)
		if err != nil {
			return nil, err
		}
	}

	return db, nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// notifyCallback pushes a change notification for the written table.
//
// Writes inside a transaction that is rolled back later still notify.
// Live queries then recompute against the unchanged state, which is
// harmless.
func notifyCallback(notifier ChangeNotifier) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error != nil || db.Statement.Table == "" || db.RowsAffected == 0 {
			return
		}

		notifier.Notify(db.Statement.Table)
	}
}
