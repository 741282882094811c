package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/utils"
)

// ExportOrdersExcel streams all orders as an Excel workbook. Admin only.
// An optional period query (day, week, month) restricts the date range.
func ExportOrdersExcel(c *gin.Context) {
	utils.LogInfo("ExportOrdersExcel called")

	period := c.DefaultQuery("period", "all")

	query := config.DB.Preload("User").Preload("OrderItems").Order("created_at DESC")
	now := time.Now()
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		query = query.Where("created_at >= ?", start)
	case "week":
		query = query.Where("created_at >= ?", now.AddDate(0, 0, -7))
	case "month":
		query = query.Where("created_at >= ?", now.AddDate(0, -1, 0))
	case "all":
	default:
		utils.BadRequest(c, "Period must be one of day, week, month, all", nil)
		return
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.LogError("Failed to load orders for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch orders", nil)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", nil)
		return
	}

	headers := []string{
		"Order ID", "Customer", "Email", "Date", "Items",
		"Amount", "Currency", "Payment Method", "Status",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	var totalPaise int64
	for _, order := range orders {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(order.ID))
		row.AddCell().SetString(order.FirstName + " " + order.LastName)
		row.AddCell().SetString(order.Email)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetInt(len(order.OrderItems))
		row.AddCell().SetFloat(float64(order.Amount) / 100)
		row.AddCell().SetString(order.Currency)
		row.AddCell().SetString(order.PaymentMethod)
		row.AddCell().SetString(order.Status)
		totalPaise += order.Amount
	}

	sheet.AddRow() // spacing

	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	summaryRow.Cells[0].SetStyle(style)

	summaryData := [][]string{
		{"Total Orders", fmt.Sprintf("%d", len(orders))},
		{"Total Amount", fmt.Sprintf("%.2f", float64(totalPaise)/100)},
	}
	for _, data := range summaryData {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_%s.xlsx", period))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		return
	}
	utils.LogInfo("Exported %d orders for period %s", len(orders), period)
}
