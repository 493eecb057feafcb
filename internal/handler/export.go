package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/germangodoy93/FinanzasBackend/internal/models"
	"github.com/germangodoy93/FinanzasBackend/internal/service"
	"github.com/germangodoy93/FinanzasBackend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 负责账本导出接口
type ExportHandler struct {
	Ledger *service.LedgerService
}

func NewExportHandler(ledger *service.LedgerService) *ExportHandler {
	return &ExportHandler{Ledger: ledger}
}

var exportHeaders = []string{
	"id", "fecha", "tipo", "descripcion", "categoria",
	"tipoGasto", "monto", "emoji", "notas", "cuenta",
}

func exportRow(t *models.Transaction) []string {
	amount := ""
	if t.Amount != nil {
		amount = strconv.FormatFloat(*t.Amount, 'f', -1, 64)
	}
	return []string{
		t.ID, t.Date, t.Type, t.Description, t.Category,
		t.ExpenseType, amount, t.Emoji, t.Notes, t.Account,
	}
}

// ExportCSV 导出流水为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txns, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "db error")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"txns_%s.csv\"",
		time.Now().UTC().Format("20060102")))

	// UTF-8 BOM so Excel detects the encoding
	_, _ = c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	_ = writer.Write(exportHeaders)
	for i := range txns {
		_ = writer.Write(exportRow(&txns[i]))
	}
}

// ExportXLSX 导出流水为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	txns, err := h.Ledger.List(c.Request.Context())
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "db error")
		return
	}

	f := excelize.NewFile()
	sheetName := "Movimientos"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "export failed")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	for idx := range txns {
		row := exportRow(&txns[idx])
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, idx+2)
			_ = f.SetCellValue(sheetName, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"txns_%s.xlsx\"",
		time.Now().UTC().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Fail(c, http.StatusInternalServerError, "export failed")
	}
}
