package di

import (
	"fmt"

	"expenses/config"
	"expenses/facade"
	"expenses/log"
	"expenses/state"
)

// resolveLedgerPath prefers the file the previous session worked with, falling back
// to the configured default.
func resolveLedgerPath(cfg *config.Config) string {
	if p, err := state.LoadLedgerPath(); err == nil && p != "" {
		return p
	}
	return cfg.LedgerPath
}

// seedLedger populates a fresh ledger from the saved file at startup. A missing file
// is first-run and loads zero records; a real I/O failure is reported and the session
// starts empty rather than aborting.
func seedLedger(f facade.LedgerFacade, path string, logger *log.Logger) {
	n, err := f.LoadFrom(path)
	if err != nil {
		logger.Warn("could not load ledger file, starting empty",
			log.FieldPath, path, log.FieldError, err.Error())
		return
	}
	if n > 0 {
		fmt.Printf("Loaded %d records from %s\n\n", n, path)
	}
}
