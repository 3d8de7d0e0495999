package repository

import (
	"context"
	"errors"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/entity"
	domainRepo "github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postgresSlotRepository struct {
	db *gorm.DB
}

func NewPostgresSlotRepository(db *gorm.DB) domainRepo.SlotRepository {
	return &postgresSlotRepository{db: db}
}

func (r *postgresSlotRepository) Read(ctx context.Context, slot string) ([]byte, error) {
	var row entity.StorageSlot
	err := r.db.WithContext(ctx).Where("name = ?", slot).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.Payload, nil
}

func (r *postgresSlotRepository) Write(ctx context.Context, slot string, data []byte) error {
	row := &entity.StorageSlot{Name: slot, Payload: data}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(row).Error
}
