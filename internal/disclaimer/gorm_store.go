package disclaimer

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"advocate_site/internal/models"
)

// GormStore keeps acknowledgements in the disclaimer_acknowledgements table
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) HasSeen(ctx context.Context, visitorID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.DisclaimerAcknowledgement{}).
		Where("visitor_id = ?", visitorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count acknowledgements: %w", err)
	}
	return count > 0, nil
}

func (s *GormStore) MarkSeen(ctx context.Context, visitorID string) error {
	ack := models.DisclaimerAcknowledgement{}
	err := s.db.WithContext(ctx).
		Where(models.DisclaimerAcknowledgement{VisitorID: visitorID}).
		Attrs(models.DisclaimerAcknowledgement{AcknowledgedAt: s.now().UTC()}).
		FirstOrCreate(&ack).Error
	if err != nil {
		return fmt.Errorf("save acknowledgement: %w", err)
	}
	return nil
}

// Prune deletes acknowledgements older than the cutoff and returns how many were removed
func (s *GormStore) Prune(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("acknowledged_at < ?", before).
		Delete(&models.DisclaimerAcknowledgement{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune acknowledgements: %w", res.Error)
	}
	return res.RowsAffected, nil
}
