package productcontroller

import (
	"net/http"
	"strings"

	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := s.Products()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Price", "OriginalPrice", "Category", "Gender",
			"Sizes", "Colors", "Description", "UseCases", "Image",
			"IsNewArrival", "IsOnSale", "Featured", "Rating", "ReviewCount",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.OriginalPrice)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(string(p.Gender))
			row.AddCell().SetValue(strings.Join(p.Sizes, ","))

			var colorNames []string
			for _, color := range p.Colors {
				colorNames = append(colorNames, color.Name)
			}
			row.AddCell().SetValue(strings.Join(colorNames, ","))

			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(strings.Join(p.UseCases, ","))
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.IsNewArrival)
			row.AddCell().SetValue(p.IsOnSale)
			row.AddCell().SetValue(p.Featured)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.ReviewCount)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
