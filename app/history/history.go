// Package history 将每次上传尝试记录到本地 sqlite，便于事后排查。
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Record 是一条上传记录
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	JobID     string `gorm:"size:36;index"`
	Platform  string `gorm:"size:16;index"`
	Account   string `gorm:"size:64;index"`
	FilePath  string
	Title     string
	PublishAt *time.Time // 为空表示立即发布
	Status    string     `gorm:"size:16"` // success 或 failed
	Error     string
	CreatedAt time.Time
}

func (Record) TableName() string {
	return "upload_records"
}

// Store 封装上传历史数据库
type Store struct {
	db *gorm.DB
}

// Open 打开（必要时创建）历史数据库并迁移表结构
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("打开历史数据库失败: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("迁移历史表失败: %w", err)
	}

	return &Store{db: db}, nil
}

// Append 追加一条上传记录
func (s *Store) Append(rec *Record) error {
	if err := s.db.Create(rec).Error; err != nil {
		return fmt.Errorf("写入上传记录失败: %w", err)
	}
	return nil
}

// ListByAccount 返回某平台账号的全部记录，新的在前
func (s *Store) ListByAccount(platform, account string) ([]Record, error) {
	var records []Record
	err := s.db.Where("platform = ? AND account = ?", platform, account).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("查询上传记录失败: %w", err)
	}
	return records, nil
}

// Close 关闭底层数据库连接
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
