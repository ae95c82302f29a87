package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/abreai/abreai-api/utils"
)

// DownloadOrdersReport exports all orders as an Excel workbook
func (oc *OrderController) DownloadOrdersReport(c *gin.Context) {
	orders := oc.orders.Orders()
	utils.LogInfo("Generating orders report for %d orders", len(orders))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		utils.LogError("Failed to create report sheet: %v", err)
		utils.InternalServerError(c, "Failed to generate report", nil)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{
		"Order ID", "Tracking Code", "Date", "Customer", "Email",
		"Items", "Subtotal", "Shipping", "Discount", "Coupon", "Total", "Status",
	} {
		header.AddCell().SetString(title)
	}
	style := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	style.Font = *font
	for _, cell := range header.Cells {
		cell.SetStyle(style)
	}

	var totalRevenue, totalDiscounts float64
	totalItems := 0
	for _, order := range orders {
		itemCount := 0
		for _, line := range order.Lines {
			itemCount += line.Quantity
		}
		totalItems += itemCount
		totalRevenue += order.Total
		totalDiscounts += order.Discount

		row := sheet.AddRow()
		row.AddCell().SetString(order.ID)
		row.AddCell().SetString(order.TrackingCode)
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(order.CustomerName)
		row.AddCell().SetString(order.CustomerEmail)
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetFloat(order.Subtotal)
		row.AddCell().SetFloat(order.Shipping)
		row.AddCell().SetFloat(order.Discount)
		row.AddCell().SetString(order.CouponCode)
		row.AddCell().SetFloat(order.Total)
		row.AddCell().SetString(string(order.Status))
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString("Summary")
	summaryRow.Cells[0].SetStyle(style)
	for _, data := range [][]string{
		{"Total Orders", fmt.Sprintf("%d", len(orders))},
		{"Total Items", fmt.Sprintf("%d", totalItems)},
		{"Total Discounts", fmt.Sprintf("%.2f", totalDiscounts)},
		{"Total Revenue", fmt.Sprintf("%.2f", totalRevenue)},
	} {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_report_%s.xlsx", time.Now().Format("20060102")))
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write orders report: %v", err)
		utils.InternalServerError(c, "Failed to write report", nil)
	}
}
