package profilerepo

import (
	"context"

	"reco/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProfileDirectory looks up contact data outside any unit of work.
type GormProfileDirectory struct {
	db *gorm.DB
}

func NewGormProfileDirectory(db *gorm.DB) *GormProfileDirectory {
	return &GormProfileDirectory{db: db}
}

// EmailsByID returns the non-empty addresses of the given profiles.
func (d *GormProfileDirectory) EmailsByID(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]string, error) {
	out := make(map[kernel.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var rows []ProfileDTO
	err := d.db.WithContext(ctx).
		Select("id", "email").
		Where("id IN ? AND email <> ''", raw).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		id, err := kernel.UUIDFromGoogle(row.ID)
		if err != nil {
			return nil, err
		}
		out[id] = row.Email
	}
	return out, nil
}
