package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/aromahub/perfume-api/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/products/export-excel
// Dumps the whole catalog, inactive rows included, for back-office use.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Brand").Preload("Category").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Brand", "Category", "Price", "Stock", "Active", "Seller"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetString(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetString(strconv.FormatUint(uint64(p.ID), 10))
			row.AddCell().SetString(p.Name)
			row.AddCell().SetString(p.Brand.Name)
			row.AddCell().SetString(p.Category.Name)
			row.AddCell().SetFloat(p.Price)
			row.AddCell().SetInt(p.Quantity)
			row.AddCell().SetBool(p.IsActive)
			row.AddCell().SetString(p.SellerID)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
