package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/abreai/abreai-api/utils"
)

// DownloadReceipt renders an order receipt as a PDF attachment
func (oc *OrderController) DownloadReceipt(c *gin.Context) {
	order, err := oc.orders.ByID(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Order not found")
		return
	}
	utils.LogInfo("Generating receipt PDF for order %s", order.ID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, utils.StoreAddress)
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: "+utils.StoreEmail+" | Phone: "+utils.StorePhone)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "RECEIPT")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(80, 8, "Order ID: "+order.ID)
	pdf.Cell(60, 8, "Date: "+order.CreatedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(8)
	pdf.Cell(80, 8, "Tracking Code: "+order.TrackingCode)
	pdf.Cell(60, 8, "Status: "+string(order.Status))
	pdf.Ln(8)
	if order.PaymentMethod != "" {
		pdf.Cell(80, 8, "Payment Method: "+order.PaymentMethod)
		pdf.Ln(8)
	}
	pdf.Ln(4)

	// Customer block
	if order.CustomerName != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(100, 8, "Billed To:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(100, 8, order.CustomerName)
		pdf.Ln(6)
		pdf.Cell(100, 8, order.CustomerEmail)
		pdf.Ln(6)
		if order.CustomerPhone != "" {
			pdf.Cell(100, 8, "Phone: "+order.CustomerPhone)
			pdf.Ln(6)
		}
		if order.DeliveryAddress != "" {
			pdf.Cell(100, 8, order.DeliveryAddress)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	// Items table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(80, 8, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, line := range order.Lines {
		pdf.CellFormat(80, 8, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", line.Total()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Totals
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(130, 8, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Subtotal), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(130, 8, "Shipping:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Shipping), "", 1, "R", false, 0, "")
	if order.Discount > 0 {
		pdf.SetFont("Arial", "B", 12)
		label := "Discount:"
		if order.CouponCode != "" {
			label = "Discount (" + order.CouponCode + "):"
		}
		pdf.CellFormat(130, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(30, 8, fmt.Sprintf("-%.2f", order.Discount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(130, 8, "Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Total), "", 1, "R", false, 0, "")

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.pdf", order.ID))
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write receipt PDF for order %s: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
	}
}
