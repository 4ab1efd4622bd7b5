package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/elegante-tailoring/storefront-api/models"
	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// POST /admin/products/import-excel
// Replaces the catalog from an uploaded sheet in the export-excel column
// layout. Color cells hold comma-separated names; every imported color gets
// the product image as its swatch image so the variant stays renderable.
func ImportProductsFromExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		var products []models.Product
		skippedCount := 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			price, err1 := strconv.ParseFloat(get(2), 64)
			originalPrice, _ := strconv.ParseFloat(get(3), 64)
			category := get(4)
			gender := get(5)
			sizes := splitParam(get(6))
			colorNames := splitParam(get(7))
			description := get(8)
			useCases := splitParam(get(9))
			image := get(10)
			isNewArrival, _ := strconv.ParseBool(get(11))
			isOnSale, _ := strconv.ParseBool(get(12))
			featured, _ := strconv.ParseBool(get(13))
			rating, _ := strconv.ParseFloat(get(14), 64)
			reviewCount, _ := strconv.Atoi(get(15))

			if id == "" || name == "" || err1 != nil {
				skippedCount++
				continue
			}

			var colors []models.ProductColor
			for _, colorName := range colorNames {
				colors = append(colors, models.ProductColor{
					Name:   colorName,
					Images: []string{image},
				})
			}

			products = append(products, models.Product{
				ID:            id,
				Name:          name,
				Price:         price,
				OriginalPrice: originalPrice,
				Category:      category,
				Gender:        models.Gender(gender),
				Sizes:         sizes,
				Colors:        colors,
				Description:   description,
				UseCases:      useCases,
				Image:         image,
				IsNewArrival:  isNewArrival,
				IsOnSale:      isOnSale,
				Featured:      featured,
				Rating:        rating,
				ReviewCount:   reviewCount,
			})
		}

		imported := s.ReplaceCatalog(products)
		if imported == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No valid product rows found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Catalog replaced from Excel",
			"imported": imported,
			"skipped":  skippedCount,
		})
	}
}
