package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

const (
	sheetFont   = "sheet"
	coreFont    = "Helvetica"
	pageMargin  = 48.0
	rowHeight   = 20.0
	labelWidth  = 140.0
	columnWidth = 90.0
)

type sheetWriter struct {
	pdf     *gofpdf.Fpdf
	font    string
	unicode bool
	tr      func(string) string
}

// PDF renders the sheet as a one-page A4 document
func PDF(sheet chargen.Sheet, opts Options) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)

	w := &sheetWriter{pdf: pdf, font: coreFont, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if opts.FontPath != "" {
		pdf.AddUTF8Font(sheetFont, "", opts.FontPath)
		if pdf.Err() {
			return nil, errors.WrapWithCodef(pdf.Error(), errors.CodeInvalidArgument, "failed to load font %s", opts.FontPath)
		}
		w.font = sheetFont
		w.unicode = true
		w.tr = func(s string) string { return s }
	}

	pdf.AddPage()
	w.header(sheet)
	w.details(sheet)
	w.abilities(sheet)
	w.hitPoints(sheet)

	if pdf.Err() {
		return nil, errors.Wrap(pdf.Error(), "failed to render character sheet")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write character sheet")
	}
	return buf.Bytes(), nil
}

func (w *sheetWriter) setFont(size float64, bold bool) {
	style := ""
	if bold && !w.unicode {
		style = "B"
	}
	w.pdf.SetFont(w.font, style, size)
}

func (w *sheetWriter) header(sheet chargen.Sheet) {
	title := sheet.Name
	if title == "" {
		title = "Character"
	}
	w.setFont(22, true)
	w.pdf.SetTextColor(40, 25, 15)
	w.pdf.CellFormat(0, 30, w.tr(title), "", 1, "L", false, 0, "")

	w.setFont(11, false)
	w.pdf.SetTextColor(80, 50, 30)
	w.pdf.CellFormat(0, 16, w.tr("Player: "+sheet.PlayerName), "", 1, "L", false, 0, "")
	w.pdf.Ln(8)
}

func (w *sheetWriter) details(sheet chargen.Sheet) {
	rows := [][2]string{
		{"Race", sheet.Race},
		{"Occupation", sheet.Occupation},
		{"Level", strconv.Itoa(sheet.Level)},
		{"Size", sheet.Size},
		{"Speed", strconv.Itoa(sheet.Speed)},
	}
	for _, row := range rows {
		w.row(row[0], row[1])
	}
	w.pdf.Ln(10)
}

func (w *sheetWriter) abilities(sheet chargen.Sheet) {
	w.pdf.SetFillColor(245, 235, 210)
	w.setFont(12, true)
	w.pdf.CellFormat(labelWidth, rowHeight, "Ability", "1", 0, "L", true, 0, "")
	w.pdf.CellFormat(columnWidth, rowHeight, "Score", "1", 0, "C", true, 0, "")
	w.pdf.CellFormat(columnWidth, rowHeight, "Modifier", "1", 1, "C", true, 0, "")

	scores := sheet.AbilityScores.Values()
	mods := sheet.AbilityModifiers.Values()
	w.setFont(12, false)
	for _, a := range chargen.Abilities {
		w.pdf.CellFormat(labelWidth, rowHeight, w.abilityLabel(a), "1", 0, "L", false, 0, "")
		w.pdf.CellFormat(columnWidth, rowHeight, strconv.Itoa(scores[a]), "1", 0, "C", false, 0, "")
		w.pdf.CellFormat(columnWidth, rowHeight, fmt.Sprintf("%+d", mods[a]), "1", 1, "C", false, 0, "")
	}
	w.pdf.Ln(10)
}

func (w *sheetWriter) hitPoints(sheet chargen.Sheet) {
	w.row("Max HP", strconv.Itoa(sheet.MaxHP))
	w.row("Current HP", strconv.Itoa(sheet.CurrentHP))
	w.row("Temp HP", strconv.Itoa(sheet.TempHP))
}

func (w *sheetWriter) row(label, value string) {
	w.setFont(12, true)
	w.pdf.CellFormat(labelWidth, rowHeight, label, "", 0, "L", false, 0, "")
	w.setFont(12, false)
	w.pdf.CellFormat(0, rowHeight, w.tr(value), "", 1, "L", false, 0, "")
}

// abilityLabel shows the sheet label when the font can draw it
func (w *sheetWriter) abilityLabel(a chargen.Ability) string {
	if w.unicode {
		return a.Label() + " " + a.Title()
	}
	return a.Title()
}
