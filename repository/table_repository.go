package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/neggmmm/brandbite-sub000/models"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

type TableFilter struct {
	RestaurantID uint
	Status       string
	ActiveOnly   bool
	MinCapacity  int
}

func (r *TableRepository) Create(t *models.Table) error {
	return r.DB.Create(t).Error
}

// Find lists tables matching the filter. RestaurantID is mandatory so no
// query can leak tables across restaurants.
func (r *TableRepository) Find(f TableFilter) ([]models.Table, error) {
	if f.RestaurantID == 0 {
		return nil, errors.New("table filter requires a restaurant id")
	}
	q := r.DB.Where("restaurant_id = ?", f.RestaurantID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.MinCapacity > 0 {
		q = q.Where("capacity >= ?", f.MinCapacity)
	}

	var tables []models.Table
	err := q.Order("capacity ASC, id ASC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*models.Table, error) {
	var t models.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Update applies the given fields as a single UPDATE statement so concurrent
// status writes cannot interleave a read-modify-write.
func (r *TableRepository) Update(tx *gorm.DB, id uint, fields map[string]interface{}) (*models.Table, error) {
	if tx == nil {
		tx = r.DB
	}
	res := tx.Model(&models.Table{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var t models.Table
	if err := tx.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateStatus sets the cached status hint on one table.
func (r *TableRepository) UpdateStatus(tx *gorm.DB, id uint, status string) (*models.Table, error) {
	return r.Update(tx, id, map[string]interface{}{"status": status})
}

func (r *TableRepository) Delete(id uint) (*models.Table, error) {
	t, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.DB.Delete(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// CountByStatus returns table counts keyed by status for one restaurant.
func (r *TableRepository) CountByStatus(restaurantID uint) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := r.DB.Model(&models.Table{}).
		Select("status, COUNT(*) AS total").
		Where("restaurant_id = ?", restaurantID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
