package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Store is the query surface the repository layer builds on. Transaction
// hands the callback a Store scoped to the open transaction so every call
// made inside it commits or rolls back as one unit.
type Store interface {
	MigrateTable(tbl ...any) error
	CreateRecord(ctx context.Context, record any) error
	SaveToTable(ctx context.Context, records any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	GetAll(ctx context.Context, entities any) error
	GetAllWhere(ctx context.Context, entities any, query string, args ...any) error
	UpdateColumns(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error)
	DeleteWhere(ctx context.Context, model any, query string, args ...any) error
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	err := p.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (p *PostgresDB) CreateRecord(ctx context.Context, record any) error {
	if err := p.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (p *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	if err := p.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (p *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entities any) error {
	tx := p.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (p *PostgresDB) GetAll(ctx context.Context, entities any) error {
	tx := p.DB.WithContext(ctx).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

func (p *PostgresDB) GetAllWhere(ctx context.Context, entities any, query string, args ...any) error {
	tx := p.DB.WithContext(ctx).Where(query, args...).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records where %q: %w", query, tx.Error)
	}
	return nil
}

func (p *PostgresDB) UpdateColumns(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error) {
	tx := p.DB.WithContext(ctx).Model(model).Where(query, args...).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records where %q: %w", query, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (p *PostgresDB) DeleteWhere(ctx context.Context, model any, query string, args ...any) error {
	tx := p.DB.WithContext(ctx).Where(query, args...).Delete(model)
	if tx.Error != nil {
		return fmt.Errorf("deleting records where %q: %w", query, tx.Error)
	}
	return nil
}

func (p *PostgresDB) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresDB{DB: tx})
	})
}
