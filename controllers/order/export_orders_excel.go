package orderControllers

import (
	"net/http"

	"github.com/elegante-tailoring/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/orders/export-excel
func ExportOrdersToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := s.Orders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Status", "Customer", "Email", "City", "Country",
			"PaymentMethod", "Items", "Subtotal", "Shipping", "Tax", "Total",
			"TrackingNumber", "OrderDate", "EstimatedDelivery",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range orders {
			itemCount := 0
			for _, item := range order.Items {
				itemCount += item.Quantity
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(order.ID)
			row.AddCell().SetValue(string(order.Status))
			row.AddCell().SetValue(order.ShippingInfo.FirstName + " " + order.ShippingInfo.LastName)
			row.AddCell().SetValue(order.ShippingInfo.Email)
			row.AddCell().SetValue(order.ShippingInfo.City)
			row.AddCell().SetValue(order.ShippingInfo.Country)
			row.AddCell().SetValue(order.PaymentMethod)
			row.AddCell().SetValue(itemCount)
			row.AddCell().SetValue(order.Subtotal)
			row.AddCell().SetValue(order.Shipping)
			row.AddCell().SetValue(order.Tax)
			row.AddCell().SetValue(order.Total)
			row.AddCell().SetValue(order.TrackingNumber)
			row.AddCell().SetValue(order.OrderDate.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(order.EstimatedDelivery.Format("2006-01-02"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
