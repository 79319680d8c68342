package integration_tests

import (
	"context"
	"fmt"

	"github.com/Jetixia-Updates/oddos-finance/db"
	"github.com/Jetixia-Updates/oddos-finance/db/migrations"
	"github.com/Jetixia-Updates/oddos-finance/lib"
	"github.com/Jetixia-Updates/oddos-finance/lib/logging"
	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun/migrate"
)

// financeTestServiceInit connects to the database named by DATABASE_URI,
// runs migrations and returns a ready service. Suites calling this must
// skip when DATABASE_URI is not set.
func financeTestServiceInit(dbUri string) (*service.FinanceService, error) {
	c := &service.Config{
		DatabaseUri:             dbUri,
		DatabaseMaxConns:        1,
		DatabaseMaxIdleConns:    1,
		DatabaseConnMaxLifetime: 10,
		DatabaseTimeout:         10,
	}

	dbConn, err := db.Open(c)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	if err = migrator.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}
	if _, err = migrator.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger := logging.Logger("")
	return service.New(c, dbConn, logger), nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}
	return e
}

func clearTables(svc *service.FinanceService, tables ...string) error {
	for _, table := range tables {
		_, err := svc.DB.ExecContext(context.Background(), fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			return err
		}
	}
	return nil
}
