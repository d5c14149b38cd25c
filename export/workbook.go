// Package export renders the catalogue into an .xlsx workbook.
package export

import (
	"fmt"

	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/xuri/excelize/v2"
)

var columnWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "A", 10},
	{"B", "D", 20},
	{"E", "E", 50},
	{"F", "F", 15},
}

// Workbook lays the catalogue out as an indented tree: a menu starts in
// column A, its submenus one column to the right and their dishes two
// columns to the right with the price in column F.
type Workbook struct{}

func NewWorkbook() *Workbook {
	return &Workbook{}
}

func (w *Workbook) Render(snapshot models.CatalogueSnapshot, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for _, c := range columnWidths {
		if err := f.SetColWidth(sheet, c.from, c.to, c.width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	submenus := make(map[uint][]models.SubMenu)
	for _, s := range snapshot.SubMenus {
		submenus[s.MenuID] = append(submenus[s.MenuID], s)
	}
	dishes := make(map[uint][]models.Dish)
	for _, d := range snapshot.Dishes {
		dishes[d.SubMenuID] = append(dishes[d.SubMenuID], d)
	}

	row := 1
	for _, menu := range snapshot.Menus {
		if err := setRow(f, sheet, row, 1, menu.ID, menu.Title, menu.Description); err != nil {
			return err
		}
		for _, sub := range submenus[menu.ID] {
			row++
			if err := setRow(f, sheet, row, 2, sub.ID, sub.Title, sub.Description); err != nil {
				return err
			}
			for _, dish := range dishes[sub.ID] {
				row++
				if err := setRow(f, sheet, row, 3, dish.ID, dish.Title, dish.Description, dish.Price); err != nil {
					return err
				}
			}
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row, col int, values ...interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+i, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s: %w", cell, err)
		}
	}
	return nil
}
