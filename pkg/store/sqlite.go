package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kass/go-school-locator/pkg/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// schoolRow is the gorm mapping of the schools table
type schoolRow struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Address   string    `gorm:"column:address;not null"`
	Latitude  float64   `gorm:"column:latitude;not null"`
	Longitude float64   `gorm:"column:longitude;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (schoolRow) TableName() string {
	return "schools"
}

func (r schoolRow) toModel() models.School {
	return models.School{
		ID:        r.ID,
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		CreatedAt: r.CreatedAt,
	}
}

// SQLiteStore keeps schools in a SQLite file through gorm, for local runs
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens path. ":memory:" gives a private database that lives
// as long as the store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %q: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite pool: %w", err)
	}
	// ":memory:" databases are per connection
	sqlDB.SetMaxOpenConns(1)

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&schoolRow{}); err != nil {
		return opError("migrate", err)
	}
	return nil
}

func (s *SQLiteStore) Insert(ctx context.Context, in models.NewSchool) (int64, error) {
	row := schoolRow{
		Name:      in.Name,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, opError("insert", err)
	}
	return row.ID, nil
}

func (s *SQLiteStore) ListAll(ctx context.Context) ([]models.School, error) {
	var rows []schoolRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, opError("list", err)
	}

	schools := make([]models.School, len(rows))
	for i, r := range rows {
		schools[i] = r.toModel()
	}
	return schools, nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schoolRow{}).Count(&count).Error; err != nil {
		return 0, opError("count", err)
	}
	return count, nil
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
