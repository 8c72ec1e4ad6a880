package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/memora-app/memora-api/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string, exclude uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? AND id <> ?", email, exclude).
		Count(&n).Error
	return n > 0, err
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Names maps user ids to display names for the ids that are registered
// users. Ids that are not UUIDs are skipped.
func (r *UserRepository) Names(ctx context.Context, ids []string) (map[string]string, error) {
	byUUID := make(map[uuid.UUID][]string, len(ids))
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		if _, seen := byUUID[u]; !seen {
			parsed = append(parsed, u)
		}
		byUUID[u] = append(byUUID[u], id)
	}
	names := make(map[string]string, len(parsed))
	if len(parsed) == 0 {
		return names, nil
	}

	var users []models.User
	if err := r.db.WithContext(ctx).Select("id", "name").Where("id IN ?", parsed).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Name == "" {
			continue
		}
		for _, id := range byUUID[u.ID] {
			names[id] = u.Name
		}
	}
	return names, nil
}
