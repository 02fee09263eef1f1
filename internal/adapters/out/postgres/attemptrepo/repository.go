package attemptrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/attempt"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAttemptRepository implements AttemptRepository using GORM.
type GormAttemptRepository struct {
	db *gorm.DB
}

// NewGormAttemptRepository creates a new GORM attempt repository.
func NewGormAttemptRepository(db *gorm.DB) *GormAttemptRepository {
	return &GormAttemptRepository{db: db}
}

// GetByTaskAndCourier retrieves the attempt counter for a task/courier
// pair. Returns ObjectNotFoundError when no attempts were recorded yet.
func (r *GormAttemptRepository) GetByTaskAndCourier(
	ctx context.Context,
	taskID, courierID kernel.UUID,
) (*attempt.Attempt, error) {
	if err := errors.Join(taskID.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}

	var dto AttemptDTO
	err := r.db.WithContext(ctx).
		First(&dto, "task_id = ? AND courier_id = ?", taskID.Bytes(), courierID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"attempt", fmt.Sprintf("%s/%s", taskID.String(), courierID.String()))
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert writes the counter, inserting on the first attempt and updating
// the count on subsequent ones.
func (r *GormAttemptRepository) Upsert(ctx context.Context, aggregate *attempt.Attempt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "task_id"}, {Name: "courier_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"count", "last_attempt_at"}),
		}).
		Create(&dto).Error
}

// DeleteByTask removes all attempt counters recorded for a task.
func (r *GormAttemptRepository) DeleteByTask(ctx context.Context, taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("task_id = ?", taskID.Bytes()).
		Delete(&AttemptDTO{}).Error
}

// DeleteOlderThan removes counters whose last attempt predates the cutoff
// and returns how many rows were deleted.
func (r *GormAttemptRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("last_attempt_at < ?", cutoff).
		Delete(&AttemptDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
