package repository

import (
	"encoding/json"
	"errors"

	"team-schedule-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScheduleRepository handles database operations for schedule documents
type ScheduleRepository struct {
	db *gorm.DB
}

// Ensure ScheduleRepository implements ScheduleRepositoryInterface
var _ ScheduleRepositoryInterface = (*ScheduleRepository)(nil)

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Get retrieves the document blob stored under key. A missing row is
// not an error: it returns (nil, nil) so the caller can persist the
// empty skeleton.
func (r *ScheduleRepository) Get(key string) (json.RawMessage, error) {
	var record models.ScheduleRecord
	err := r.db.First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.Doc, nil
}

// Put replaces the document blob stored under key, inserting the row
// on first write.
func (r *ScheduleRepository) Put(key string, doc json.RawMessage) error {
	record := models.ScheduleRecord{Key: key, Doc: doc}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
	}).Create(&record).Error
}
