// Package journal — локальный durable-журнал намерений удаления.
// Между удалением изображения и удалением документа модели нет транзакции;
// запись о намерении делается до первого шага и снимается после последнего,
// чтобы незавершённое удаление можно было догнать после рестарта.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// DeleteIntent — одна запись журнала: модель, которую договорились удалить.
type DeleteIntent struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	ModelID   string    `gorm:"not null;index"`
	ImageDone bool      `gorm:"not null;default:false"` // координатор подтвердил удаление изображения
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Journal — контракт журнала для слоя сервиса.
type Journal interface {
	// Begin фиксирует намерение удалить модель до первого шага удаления.
	Begin(ctx context.Context, modelID string) (string, error)

	// MarkImageDone отмечает, что изображение удалено (или его не было).
	MarkImageDone(ctx context.Context, intentID string) error

	// Resolve снимает намерение после удаления документа модели.
	Resolve(ctx context.Context, intentID string) error

	// Pending возвращает незавершённые намерения (для повтора на старте).
	Pending(ctx context.Context) ([]DeleteIntent, error)
}

type gormJournal struct {
	db *gorm.DB
}

// Open открывает (или создаёт) SQLite-журнал по указанному пути.
// Используется cgo-free драйвер modernc.org/sqlite.
func Open(path string) (Journal, error) {
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: path}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := db.AutoMigrate(&DeleteIntent{}); err != nil {
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &gormJournal{db: db}, nil
}

func (j *gormJournal) Begin(ctx context.Context, modelID string) (string, error) {
	intent := &DeleteIntent{ID: uuid.NewString(), ModelID: modelID}
	if err := j.db.WithContext(ctx).Create(intent).Error; err != nil {
		return "", fmt.Errorf("journal begin: %w", err)
	}
	return intent.ID, nil
}

func (j *gormJournal) MarkImageDone(ctx context.Context, intentID string) error {
	tx := j.db.WithContext(ctx).Model(&DeleteIntent{}).
		Where("id = ?", intentID).
		Update("image_done", true)
	if tx.Error != nil {
		return fmt.Errorf("journal mark image done: %w", tx.Error)
	}
	return nil
}

func (j *gormJournal) Resolve(ctx context.Context, intentID string) error {
	tx := j.db.WithContext(ctx).Delete(&DeleteIntent{}, "id = ?", intentID)
	if tx.Error != nil {
		return fmt.Errorf("journal resolve: %w", tx.Error)
	}
	return nil
}

func (j *gormJournal) Pending(ctx context.Context) ([]DeleteIntent, error) {
	var intents []DeleteIntent
	if err := j.db.WithContext(ctx).Order("created_at").Find(&intents).Error; err != nil {
		return nil, fmt.Errorf("journal pending: %w", err)
	}
	return intents, nil
}
