package menu

import (
	"context"
	"fmt"
)

func Execute(ctx context.Context, key string, d *Deps) error {
	switch key {
	case "add_expense":
		return actionAddExpense(ctx, d)
	case "list_records":
		return actionListRecords(ctx, d)
	case "total":
		return actionTotal(ctx, d)
	case "set_budget":
		return actionSetBudget(ctx, d)
	case "budget_status":
		return actionBudgetStatus(ctx, d)
	case "save":
		return actionSave(ctx, d)
	case "load":
		return actionLoad(ctx, d)
	case "export_json":
		return actionExportJSON(ctx, d)
	case "export_yaml":
		return actionExportYAML(ctx, d)
	case "import_json":
		return actionImportJSON(ctx, d)
	case "import_yaml":
		return actionImportYAML(ctx, d)
	case "exit":
		return nil
	default:
		fmt.Println("Unknown command:", key)
	}
	return nil
}
