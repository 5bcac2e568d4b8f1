package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"soundvibe/compatibility-api/internal/models"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrMissingProfileID = errors.New("profile id is required")
)

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	FindCandidates(ctx context.Context, excludeID uuid.UUID, limit int) ([]models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID implements ProfileRepository.
func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return &profile, nil
}

// FindCandidates implements ProfileRepository.
func (r *profileRepository) FindCandidates(ctx context.Context, excludeID uuid.UUID, limit int) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&profiles).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find candidate profiles: %w", err)
	}

	return profiles, nil
}

// Upsert implements ProfileRepository. The caller owns the id so repeated
// upserts of the same record hit the same row.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	if profile.ID == uuid.Nil {
		return ErrMissingProfileID
	}
	profile.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username",
			"full_name",
			"professional_roles",
			"skills",
			"software_proficiencies",
			"collaboration_styles",
			"location",
			"updated_at",
		}),
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
