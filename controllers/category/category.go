package categoryController

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zahraaAed/Douluxme-Backend/config"
	"github.com/zahraaAed/Douluxme-Backend/models"
	"gorm.io/gorm"
)

// saveCategoryImage stores an uploaded file under UPLOAD_DIR/categories with
// a generated name and returns the stored filename.
func saveCategoryImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(config.App.UploadDir, "categories")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// POST /api/categories/create
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
			return
		}

		var existing models.Category
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		filename, err := saveCategoryImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		category := models.Category{Name: name, Image: filename}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category already exists"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "CategoryId": category.ID})
	}
}

// GET /api/categories/get
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /api/categories/get/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// PATCH /api/categories/update/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}

		if name := c.PostForm("name"); name != "" {
			category.Name = name
		}

		if file, err := c.FormFile("image"); err == nil {
			// Replace the stored file: the old one is orphaned otherwise.
			if category.Image != "" {
				oldPath := filepath.Join(config.App.UploadDir, "categories", filepath.Base(category.Image))
				_ = os.Remove(oldPath)
			}
			filename, err := saveCategoryImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			category.Image = filename
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "category": category})
	}
}

// DELETE /api/categories/delete/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
			return
		}

		if category.Image != "" {
			imagePath := filepath.Join(config.App.UploadDir, "categories", filepath.Base(category.Image))
			_ = os.Remove(imagePath)
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
