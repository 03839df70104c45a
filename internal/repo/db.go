package repo

import (
	"JewelryStore/internal/model"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Ошибки уровня хранилища. Сервисы переводят их в apperr.
var (
	ErrNegativeQuantity = errors.New("quantity would become negative")
	ErrNotPending       = errors.New("transfer request is not pending")
	ErrUsernameTaken    = errors.New("username already taken")
)

// Models — все модели, которые мигрирует InitDB.
var Models = []any{
	&model.Account{},
	&model.Branch{},
	&model.Jewelry{},
	&model.TransferRequest{},
}

// InitDB открывает базу по DSN и применяет миграции.
// postgres://, postgresql:// и DSN вида "host=..." открываются через pgx,
// всё остальное считается путём к файлу SQLite (modernc.org/sqlite, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	if IsPostgresDSN(dsn) {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		db, err = OpenSQLite(sqliteDSN(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// OpenSQLite открывает SQLite с одним соединением: SQLite допускает одного писателя,
// а транзакции одобрения заявок должны выполняться строго по очереди.
func OpenSQLite(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = "jewelry.db"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// validID сообщает, может ли id быть ключом записи. Ключи — UUID, а postgres
// отвергает чужой текст в uuid-колонке ошибкой запроса, поэтому такой id
// считается просто отсутствующим.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
