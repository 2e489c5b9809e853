package ui

import (
	"fmt"
	"math"
	"math/big"

	"nettui/internal/models"
	"nettui/internal/services"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	headerHeight = 3
	tableTitle   = " Interfaces "
	keyLegend    = "q:quit  +/-:rate  i:virtual"
)

// rounded corners on every bordered box
func init() {
	tview.Borders.TopLeft = tview.BoxDrawingsLightArcDownAndRight
	tview.Borders.TopRight = tview.BoxDrawingsLightArcDownAndLeft
	tview.Borders.BottomLeft = tview.BoxDrawingsLightArcUpAndRight
	tview.Borders.BottomRight = tview.BoxDrawingsLightArcUpAndLeft
}

type column struct {
	title string
	width int
}

var columns = []column{
	{"INTERFACE", 16},
	{"RX/s", 12},
	{"TX/s", 12},
	{"PKTS In", 20},
	{"PKTS Out", 20},
	{"Err In", 10},
	{"Err Out", 10},
}

// Renderer draws the header and interface table onto a terminal screen.
// Widgets are rebuilt on every call; nothing is kept between frames.
type Renderer struct {
	title string
}

// NewRenderer returns a renderer whose header starts with title
func NewRenderer(title string) *Renderer {
	return &Renderer{title: title}
}

// Draw redraws the whole screen for one tick
func (r *Renderer) Draw(screen tcell.Screen, rows []models.InterfaceRow, cfg models.Config) {
	width, height := screen.Size()

	header := tview.NewTextView().
		SetText(r.HeaderText(len(rows), cfg))
	header.SetBorder(true)

	table := tview.NewTable().
		SetFixed(1, 0)
	table.SetBorder(true).
		SetTitle(tableTitle)

	for col, c := range columns {
		table.SetCell(0, col, fixedCell(c.title, c.width).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for i, row := range rows {
		for col, text := range rowCells(row) {
			table.SetCell(i+1, col, fixedCell(text, columns[col].width))
		}
	}

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, headerHeight, 0, false).
		AddItem(table, 0, 1, false)
	layout.SetRect(0, 0, width, height)

	screen.Clear()
	layout.Draw(screen)
	screen.Show()
}

// HeaderText is the single status line shown above the table
func (r *Renderer) HeaderText(interfaces int, cfg models.Config) string {
	virtual := "hidden"
	if cfg.ShowVirtual {
		virtual = "shown"
	}
	return fmt.Sprintf(" %s - live (%s)   refresh: %d ms   ifaces: %d   virtual: %s ",
		r.title,
		keyLegend,
		cfg.RefreshInterval.Milliseconds(),
		interfaces,
		virtual,
	)
}

func rowCells(row models.InterfaceRow) []string {
	return []string{
		tview.Escape(row.Interface),
		services.HumanizeRate(row.RxRate),
		services.HumanizeRate(row.TxRate),
		formatCount(row.PacketsIn),
		formatCount(row.PacketsOut),
		formatCount(row.ErrorsIn),
		formatCount(row.ErrorsOut),
	}
}

// fixedCell pads text so every column keeps its configured width
func fixedCell(text string, width int) *tview.TableCell {
	return tview.NewTableCell(fmt.Sprintf("%-*s", width, text)).
		SetMaxWidth(width)
}

func formatCount(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.BigComma(new(big.Int).SetUint64(n))
	}
	return humanize.Comma(int64(n))
}
