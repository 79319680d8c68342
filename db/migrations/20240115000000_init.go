package migrations

import (
	"context"

	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/uptrace/bun"
)

/* This init reflects the latest model fields when run on a fresh db.
Make sure that subsequent migrations use IfNotExists/IfExists when
adding or removing columns, otherwise re-running from scratch breaks. */
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		tables := []interface{}{
			(*models.Account)(nil),
			(*models.JournalEntry)(nil),
			(*models.JournalLine)(nil),
			(*models.Invoice)(nil),
			(*models.Bill)(nil),
			(*models.PayrollRecord)(nil),
			(*models.SalaryComponent)(nil),
			(*models.TaxRule)(nil),
			(*models.Bonus)(nil),
		}
		for _, table := range tables {
			if _, err := db.NewCreateTable().Model(table).IfNotExists().Exec(ctx); err != nil {
				return err
			}
		}

		if _, err := db.NewCreateIndex().
			Model((*models.JournalLine)(nil)).
			Index("journal_lines_entry_id_idx").
			IfNotExists().
			Column("journal_entry_id").
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, nil)
}
