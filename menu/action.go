package menu

import (
	"context"
	"errors"
	"fmt"

	"expenses/facade"
	"expenses/files"
	"expenses/service"
	"expenses/state"
)

func actionAddExpense(ctx context.Context, d *Deps) error {
	date := readDateString("Expense date")
	amount := readAmountString("Amount (e.g. 42.50): ")
	category := chooseCategory(d.Categories)
	desc := readLine("Description (optional): ")

	rec, err := d.Led.Add(facade.AddRecordInput{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: desc,
	})
	if err != nil {
		return err
	}
	fmt.Println("Expense added:", rec.String())
	return nil
}

func actionListRecords(ctx context.Context, d *Deps) error {
	n := 0
	for rec := range d.Led.Records() {
		if n == 0 {
			fmt.Println("=== Expenses ===")
		}
		n++
		fmt.Printf("%d) %s\n", n, rec.String())
	}
	if n == 0 {
		fmt.Println("No expenses recorded")
	}
	return nil
}

func actionTotal(ctx context.Context, d *Deps) error {
	fmt.Printf("Total spent: %s\n", d.Ana.Total().StringFixed(2))
	return nil
}

func actionSetBudget(ctx context.Context, d *Deps) error {
	raw := readAmountString("Monthly budget (e.g. 500.00): ")
	if err := d.Led.SetBudget(raw); err != nil {
		return err
	}
	fmt.Println("Budget set for this session.")
	return nil
}

func actionBudgetStatus(ctx context.Context, d *Deps) error {
	st, err := d.Ana.Status()
	if errors.Is(err, service.ErrNoBudget) {
		fmt.Println("No budget configured. Set one first.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("Budget: %s | Spent: %s\n", st.Budget.StringFixed(2), st.Total.StringFixed(2))
	if st.Over {
		fmt.Printf("Over budget by %s\n", st.Overrun.StringFixed(2))
	} else {
		fmt.Printf("Remaining: %s\n", st.Remaining.StringFixed(2))
	}
	return nil
}

func actionSave(ctx context.Context, d *Deps) error {
	path := readLine(fmt.Sprintf("File to save to (empty = %s): ", d.LedgerPath))
	if path == "" {
		path = d.LedgerPath
	}
	err := d.Led.SaveTo(path)
	if errors.Is(err, files.ErrNothingToSave) {
		fmt.Println("Nothing to save.")
		return nil
	}
	if err != nil {
		return err
	}
	d.LedgerPath = path
	_ = state.SaveLedgerPath(path)
	fmt.Printf("Saved %d records to %s\n", d.Led.Len(), path)
	return nil
}

func actionLoad(ctx context.Context, d *Deps) error {
	path := readLine(fmt.Sprintf("File to load from (empty = %s): ", d.LedgerPath))
	if path == "" {
		path = d.LedgerPath
	}
	if d.Led.Len() > 0 && !confirm(fmt.Sprintf("Ledger already holds %d records, append from file anyway?", d.Led.Len())) {
		return nil
	}
	n, err := d.Led.LoadFrom(path)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println("No records found in", path)
		return nil
	}
	d.LedgerPath = path
	_ = state.SaveLedgerPath(path)
	fmt.Printf("Loaded %d records from %s\n", n, path)
	return nil
}

func actionExportJSON(ctx context.Context, d *Deps) error {
	path := readLine("Export path (e.g. expenses.json): ")
	if path == "" {
		path = "expenses.json"
	}
	rows := d.Led.ExportRows()
	if len(rows) == 0 {
		fmt.Println("Nothing to export")
		return nil
	}
	if err := files.ExportRowsJSON(path, rows); err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

func actionExportYAML(ctx context.Context, d *Deps) error {
	path := readLine("Export path (e.g. expenses.yaml): ")
	if path == "" {
		path = "expenses.yaml"
	}
	rows := d.Led.ExportRows()
	if len(rows) == 0 {
		fmt.Println("Nothing to export")
		return nil
	}
	if err := files.ExportRowsYAML(path, rows); err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

func actionImportJSON(ctx context.Context, d *Deps) error {
	path := readLine("JSON file to import: ")
	if path == "" {
		fmt.Println("No file given")
		return nil
	}
	rows, err := files.ImportRowsJSON(path)
	if err != nil {
		return err
	}
	return importRows(d, rows)
}

func actionImportYAML(ctx context.Context, d *Deps) error {
	path := readLine("YAML file to import: ")
	if path == "" {
		fmt.Println("No file given")
		return nil
	}
	rows, err := files.ImportRowsYAML(path)
	if err != nil {
		return err
	}
	return importRows(d, rows)
}

func importRows(d *Deps, rows []files.Row) error {
	if len(rows) == 0 {
		fmt.Println("No records to import")
		return nil
	}
	added, skipped := d.Led.Import(rows)
	fmt.Printf("Imported %d records", added)
	if skipped > 0 {
		fmt.Printf(" (%d skipped)", skipped)
	}
	fmt.Println(".")
	return nil
}
