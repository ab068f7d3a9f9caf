package di

import (
	"context"
	"os"

	"go.uber.org/dig"

	"expenses/config"
	"expenses/domain"
	"expenses/facade"
	"expenses/files"
	"expenses/ledger"
	"expenses/log"
	"expenses/menu"
	"expenses/service"
)

type App struct {
	Menu menu.Menu
	Deps menu.Deps
}

func Build(ctx context.Context) (*App, error) {
	c := dig.New()
	if err := c.Provide(func() context.Context { return ctx }); err != nil {
		return nil, err
	}
	if err := c.Provide(func() (*config.Config, error) {
		return config.Load(configPath())
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(func(cfg *config.Config) (*log.Logger, error) {
		lvl, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		return log.New(log.Config{Level: lvl, Component: log.ComponentApp}), nil
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(func() domain.Factory { return domain.Factory{} }); err != nil {
		return nil, err
	}
	if err := c.Provide(ledger.New); err != nil {
		return nil, err
	}
	if err := c.Provide(files.NewCSVStore); err != nil {
		return nil, err
	}
	if err := c.Provide(func(l *ledger.Ledger) service.RecordSource { return l }); err != nil {
		return nil, err
	}
	if err := c.Provide(service.NewAnalyticsService); err != nil {
		return nil, err
	}
	if err := c.Provide(func(cfg *config.Config) (menu.Menu, error) {
		return menu.Load(cfg.MenuPath)
	}); err != nil {
		return nil, err
	}

	var app *App
	err := c.Invoke(func(
		cfg *config.Config,
		logger *log.Logger,
		f domain.Factory,
		led *ledger.Ledger,
		store *files.CSVStore,
		anaSvc *service.AnalyticsService,
		m menu.Menu,
	) error {
		cats := cfg.CategorySet()
		ledFacade := facade.LedgerFacade{
			F:          f,
			Ledger:     led,
			Categories: cats,
			Store:      store,
			Log:        logger,
		}
		anaFacade := facade.AnalyticsFacade{Svc: anaSvc}

		path := resolveLedgerPath(cfg)
		seedLedger(ledFacade, path, logger)

		app = &App{
			Menu: m,
			Deps: menu.Deps{
				Factory:    f,
				Ledger:     led,
				Categories: cats,
				LedgerPath: path,
				Log:        logger.WithComponent(log.ComponentMenu),
				Led:        ledFacade,
				Ana:        anaFacade,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}
