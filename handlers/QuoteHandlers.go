package handlers

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"backend/models"
	"backend/pricing"
)

// quoteStrings are the few labels the export renders per language.
type quoteStrings struct {
	title, customer, item, options, days, rate, amount string
	subtotalHW, subtotalLabor, subtotal                string
	discount, total, onRequest, labor                  string
}

func stringsFor(lang string) quoteStrings {
	if lang == "en" {
		return quoteStrings{
			title: "Quote", customer: "Customer", item: "Item", options: "Options",
			days: "Days", rate: "Day rate", amount: "Amount",
			subtotalHW: "Subtotal hardware", subtotalLabor: "Subtotal labor",
			subtotal: "Subtotal", discount: "Discount", total: "Total",
			onRequest: "on request", labor: "Labor",
		}
	}
	return quoteStrings{
		title: "Angebot", customer: "Kunde", item: "Position", options: "Optionen",
		days: "Tage", rate: "Tagessatz", amount: "Betrag",
		subtotalHW: "Zwischensumme Hardware", subtotalLabor: "Zwischensumme Arbeit",
		subtotal: "Zwischensumme", discount: "Rabatt", total: "Gesamt",
		onRequest: "auf Anfrage", labor: "Arbeitsleistungen",
	}
}

// resolveQuote turns the posted selections into cart items and labor
// selections. Option ids that the posted product does not carry are
// ignored rather than rejected.
func resolveQuote(req models.QuoteExportRequest) ([]models.CartItem, []models.LaborSelection) {
	items := make([]models.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		byID := make(map[string]models.Option, len(it.Product.Options))
		for _, o := range it.Product.Options {
			byID[o.ID] = o
		}
		selected := make([]models.Option, 0, len(it.OptionIDs))
		for _, oid := range it.OptionIDs {
			if o, ok := byID[oid]; ok {
				selected = append(selected, o)
			}
		}
		items = append(items, models.CartItem{
			ItemID:    "item-" + uuid.NewString(),
			ProductID: it.Product.ID,
			OptionIDs: it.OptionIDs,
			Product:   it.Product,
			Selected:  selected,
		})
	}
	labor := make([]models.LaborSelection, 0, len(req.Labor))
	for _, row := range req.Labor {
		days := row.Days
		if days < 0 {
			days = row.Cost.AvgDays
		}
		labor = append(labor, models.LaborSelection{ID: row.Cost.ID, Days: days, Ref: row.Cost})
	}
	return items, labor
}

// addLabel draws a caption line under the QR code.
func addLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{30, 30, 30, 255}),
		Face: inconsolata.Regular8x16,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(label)
}

// quoteQRPNG renders a QR code of the quote reference with the reference
// printed underneath, as it appears on the printed quote.
func quoteQRPNG(ref string) ([]byte, error) {
	qr, err := qrcode.New(ref, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	qrImg := qr.Image(256)
	qrSize := qrImg.Bounds().Dy()
	lineHeight := 20

	combined := image.NewRGBA(image.Rect(0, 0, qrSize, qrSize+lineHeight))
	draw.Draw(combined, combined.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	draw.Draw(combined, image.Rect(0, 0, qrSize, qrSize), qrImg, image.Point{}, draw.Src)
	addLabel(combined, 12, qrSize+lineHeight-6, ref)

	var buf bytes.Buffer
	if err := png.Encode(&buf, combined); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportQuotePDF godoc
// @Summary      Export a composed quote as PDF
// @Tags         quote
// @Accept       json
// @Produce      application/pdf
// @Param        request  body  models.QuoteExportRequest  true  "composed quote"
// @Success      200  "PDF file"
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/quote/pdf [post]
func ExportQuotePDF(c *gin.Context) {
	var req models.QuoteExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	str := stringsFor(req.Lang)
	items, labor := resolveQuote(req)
	totals := pricing.CartTotals(items, labor, req.DiscountPct, req.DiscountHardware, req.DiscountLabor)
	ref := fmt.Sprintf("Q-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:8])
	titleCaser := cases.Title(language.Und)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetMargins(10, 10, 10)

	// header with QR reference top right
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(150, 10, str.title)
	if qrPNG, err := quoteQRPNG(ref); err == nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(ref, opts, bytes.NewReader(qrPNG))
		pdf.ImageOptions(ref, 168, 8, 32, 0, false, opts, 0, "")
	}
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(150, 6, ref)
	pdf.Ln(6)
	if req.CustomerName != "" {
		pdf.Cell(150, 6, fmt.Sprintf("%s: %s", str.customer, req.CustomerName))
		pdf.Ln(6)
	}
	pdf.Ln(8)

	// hardware table
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(110, 8, str.item, "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, str.options, "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, str.amount, "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, it := range items {
		b := pricing.ItemBreakdown(it.Product, it.Selected)
		label := fmt.Sprintf("%s %s", titleCaser.String(it.Product.Typ), it.Product.Name)
		pdf.CellFormat(110, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, fmt.Sprintf("%d", len(it.Selected)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f EUR", b.Subtotal), "1", 1, "R", false, 0, "")
		for _, o := range b.Options {
			amount := str.onRequest
			if o.Amount != nil {
				amount = fmt.Sprintf("%.2f EUR", *o.Amount)
			}
			pdf.CellFormat(110, 6, "  + "+o.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(45, 6, "", "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 6, amount, "1", 1, "R", false, 0, "")
		}
	}

	// labor table
	if len(labor) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(110, 8, str.labor, "1", 0, "L", true, 0, "")
		pdf.CellFormat(22, 8, str.days, "1", 0, "C", true, 0, "")
		pdf.CellFormat(23, 8, str.rate, "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 8, str.amount, "1", 1, "C", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, l := range labor {
			pdf.CellFormat(110, 8, l.Ref.Title, "1", 0, "L", false, 0, "")
			pdf.CellFormat(22, 8, fmt.Sprintf("%d", l.Days), "1", 0, "C", false, 0, "")
			pdf.CellFormat(23, 8, fmt.Sprintf("%.0f", l.Ref.DayRateEur), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 8, fmt.Sprintf("%.2f EUR", float64(l.Days)*l.Ref.DayRateEur), "1", 1, "R", false, 0, "")
		}
	}

	// totals
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 11)
	writeTotal := func(label string, v float64) {
		pdf.Cell(155, 8, label)
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f EUR", v), "1", 1, "R", false, 0, "")
	}
	writeTotal(str.subtotalHW, totals.SubtotalProducts)
	writeTotal(str.subtotalLabor, totals.SubtotalLabor)
	writeTotal(str.subtotal, totals.Subtotal)
	if totals.Discount > 0 {
		writeTotal(fmt.Sprintf("%s (%.0f%%)", str.discount, req.DiscountPct), -totals.Discount)
	}
	writeTotal(str.total, totals.Final)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", ref))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// ExportQuoteXLSX godoc
// @Summary      Export a composed quote as XLSX
// @Tags         quote
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request  body  models.QuoteExportRequest  true  "composed quote"
// @Success      200  "XLSX file"
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/quote/xlsx [post]
func ExportQuoteXLSX(c *gin.Context) {
	var req models.QuoteExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	str := stringsFor(req.Lang)
	items, labor := resolveQuote(req)
	totals := pricing.CartTotals(items, labor, req.DiscountPct, req.DiscountHardware, req.DiscountLabor)

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	row := 1
	set := func(col string, v any) {
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
	}

	set("A", str.title)
	row++
	if req.CustomerName != "" {
		set("A", str.customer)
		set("B", req.CustomerName)
		row++
	}
	row++

	set("A", str.item)
	set("B", str.options)
	set("C", str.amount)
	row++
	for _, it := range items {
		b := pricing.ItemBreakdown(it.Product, it.Selected)
		set("A", fmt.Sprintf("%s %s", it.Product.Typ, it.Product.Name))
		set("C", b.Subtotal)
		row++
		for _, o := range b.Options {
			set("A", "  + "+o.Name)
			if o.Amount != nil {
				set("C", *o.Amount)
			} else {
				set("C", str.onRequest)
			}
			row++
		}
	}
	row++

	if len(labor) > 0 {
		set("A", str.labor)
		set("B", str.days)
		set("C", str.amount)
		row++
		for _, l := range labor {
			set("A", l.Ref.Title)
			set("B", l.Days)
			set("C", float64(l.Days)*l.Ref.DayRateEur)
			row++
		}
		row++
	}

	for _, t := range []struct {
		label string
		value float64
	}{
		{str.subtotalHW, totals.SubtotalProducts},
		{str.subtotalLabor, totals.SubtotalLabor},
		{str.subtotal, totals.Subtotal},
		{str.discount, -totals.Discount},
		{str.total, totals.Final},
	} {
		set("A", t.label)
		set("C", t.value)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=quote.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
