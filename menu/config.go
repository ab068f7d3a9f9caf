package menu

import (
	"encoding/json"
	"os"
)

// Load reads the menu layout from a JSON file. A missing file falls back to the
// built-in default menu.
func Load(path string) (Menu, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Menu{}, err
	}
	defer f.Close()

	var items []Item
	if err := json.NewDecoder(f).Decode(&items); err != nil {
		return Menu{}, err
	}
	return Menu{Items: items}, nil
}

func Default() Menu {
	return Menu{Items: []Item{
		{Key: "add_expense", Field: "Add an expense"},
		{Key: "list_records", Field: "View expenses"},
		{Key: "total", Field: "Show total spent"},
		{Key: "set_budget", Field: "Set monthly budget"},
		{Key: "budget_status", Field: "Budget status"},
		{Key: "save", Field: "Save expenses to file"},
		{Key: "load", Field: "Load expenses from file"},
		{Key: "export_json", Field: "Export expenses (JSON)"},
		{Key: "export_yaml", Field: "Export expenses (YAML)"},
		{Key: "import_json", Field: "Import expenses (JSON)"},
		{Key: "import_yaml", Field: "Import expenses (YAML)"},
		{Key: "exit", Field: "Exit"},
	}}
}
