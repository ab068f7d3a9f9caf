package menu

import "context"

func BuildCommands(d *Deps) map[string]Command {
	mk := func(key, name string) Command {
		return Command{
			Key:  key,
			Name: name,
			Run:  func(ctx context.Context) error { return Execute(ctx, key, d) },
		}
	}

	return map[string]Command{
		"add_expense":   mk("add_expense", "Add an expense"),
		"list_records":  mk("list_records", "View expenses"),
		"total":         mk("total", "Show total spent"),
		"set_budget":    mk("set_budget", "Set monthly budget"),
		"budget_status": mk("budget_status", "Budget status"),
		"save":          mk("save", "Save expenses to file"),
		"load":          mk("load", "Load expenses from file"),
		"export_json":   mk("export_json", "Export expenses (JSON)"),
		"export_yaml":   mk("export_yaml", "Export expenses (YAML)"),
		"import_json":   mk("import_json", "Import expenses (JSON)"),
		"import_yaml":   mk("import_yaml", "Import expenses (YAML)"),
	}
}
