package repositories

import (
	"errors"
	"fmt"

	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
	"gorm.io/gorm"
)

// DefaultCategoryName backs products whose category was removed or never set.
const DefaultCategoryName = "Uncategorized"

// CategoryView is a category row with its live product count.
type CategoryView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count"`
}

func countProductsInCategory(db *gorm.DB, id uint) (int64, error) {
	var count int64
	err := db.Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}

// FindCategoryByID returns a category by primary key
func FindCategoryByID(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("Category with ID %d not found", id), err)
		}
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a category, rejecting case-insensitive duplicates
func CreateCategory(db *gorm.DB, category *models.Category) error {
	var existing models.Category
	err := db.Where("LOWER(name) = LOWER(?)", category.Name).First(&existing).Error
	if err == nil {
		return utils.ConflictError(fmt.Sprintf("Category '%s' already exists", category.Name), nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.Create(category).Error
}

// UpdateCategory renames a category, rejecting a name held by another row
func UpdateCategory(db *gorm.DB, id uint, name string) (*models.Category, error) {
	category, err := FindCategoryByID(db, id)
	if err != nil {
		return nil, err
	}

	var existing models.Category
	err = db.Where("id <> ? AND LOWER(name) = LOWER(?)", id, name).First(&existing).Error
	if err == nil {
		return nil, utils.ConflictError(fmt.Sprintf("Another category with name '%s' already exists", name), nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category.Name = name
	if err := db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. Deletion is blocked while any product
// references it; the error message carries the blocking count.
func DeleteCategory(db *gorm.DB, id uint) error {
	category, err := FindCategoryByID(db, id)
	if err != nil {
		return err
	}

	productCount, err := countProductsInCategory(db, id)
	if err != nil {
		return err
	}
	if productCount > 0 {
		return utils.BadRequestError(
			fmt.Sprintf("Cannot delete category '%s' as it has %d products associated with it", category.Name, productCount), nil)
	}

	return db.Delete(category).Error
}

// ListCategories returns all categories ordered by name
func ListCategories(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name").Find(&categories).Error
	return categories, err
}

// ListCategoryViews returns every category with its product count, ordered
// by name.
func ListCategoryViews(db *gorm.DB) ([]CategoryView, error) {
	categories, err := ListCategories(db)
	if err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		count, err := countProductsInCategory(db, category.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, CategoryView{
			ID:           category.ID,
			Name:         category.Name,
			ProductCount: count,
		})
	}
	return views, nil
}

// GetCategoryView returns one category with its product count
func GetCategoryView(db *gorm.DB, id uint) (*CategoryView, error) {
	category, err := FindCategoryByID(db, id)
	if err != nil {
		return nil, err
	}
	count, err := countProductsInCategory(db, id)
	if err != nil {
		return nil, err
	}
	return &CategoryView{ID: category.ID, Name: category.Name, ProductCount: count}, nil
}

// EnsureDefaultCategory creates the default category when none exists
func EnsureDefaultCategory(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&models.Category{Name: DefaultCategoryName}).Error
}
