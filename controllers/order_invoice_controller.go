package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/modernhub/ecommerce-api/config"
	"github.com/modernhub/ecommerce-api/middleware"
	"github.com/modernhub/ecommerce-api/models"
	"github.com/modernhub/ecommerce-api/repositories"
	"github.com/modernhub/ecommerce-api/utils"
)

// DownloadInvoice generates a PDF invoice for one of the authenticated
// user's orders.
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	order, err := repositories.FindOrderForUser(config.DB, uint(orderID), user.ID)
	if err != nil {
		utils.RespondWithError(c, err)
		return
	}

	var items []models.OrderItem
	if err := config.DB.Preload("Product").Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		utils.LogError("Failed to load items for invoice %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store info
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "ModernHub")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@modernhub.example | Phone: +91-12345-67890")
	pdf.Ln(12)

	// Invoice title and order info
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(50, 8, "Order ID: "+strconv.Itoa(int(order.ID)))
	pdf.Cell(60, 8, "Order Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(50, 8, "Payment Method: "+order.PaymentMethod)
	pdf.Cell(60, 8, "Status: "+order.Status)
	pdf.Ln(10)

	// Shipping snapshot
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Billed To:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, order.FirstName+" "+order.LastName)
	pdf.Ln(6)
	pdf.Cell(100, 8, order.Email)
	pdf.Ln(6)
	pdf.Cell(100, 8, "Phone: "+order.Phone)
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(100, 8, "Shipping Address:")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, order.Address)
	pdf.Ln(6)
	pdf.Cell(100, 8, order.City+", "+order.State+", "+order.Country+" - "+order.ZipCode)
	pdf.Ln(10)

	// Items table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(70, 8, "Product", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, item := range items {
		pdf.CellFormat(70, 8, item.Product.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", item.Price*float64(item.Quantity)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Amount is stored in paise
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(120, 10, "Grand Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 10, fmt.Sprintf("%.2f %s", float64(order.Amount)/100, order.Currency), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for shopping with ModernHub!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render invoice PDF for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}

	utils.LogInfo("Invoice generated for order %d", order.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%d.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
