package productController

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zahraaAed/Douluxme-Backend/config"
)

// saveProductImage stores an uploaded file under UPLOAD_DIR/products with a
// generated name; only the filename is persisted on the product row.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(config.App.UploadDir, "products")
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// parseIDList parses a comma-separated list of ids from a form field.
func parseIDList(raw string) ([]uint, error) {
	var ids []uint
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
