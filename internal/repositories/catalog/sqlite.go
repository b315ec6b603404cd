package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/pkg/clock"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS nations (
	dominion_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	era INTEGER NOT NULL,
	modded INTEGER NOT NULL DEFAULT 1,
	PRIMARY KEY (era, name)
);

CREATE TABLE IF NOT EXISTS units (
	dominion_id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	modded INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS catalog_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_nations_modded ON nations(modded);
CREATE INDEX IF NOT EXISTS idx_units_modded ON units(modded);
`

type nationRow struct {
	DominionID int32  `db:"dominion_id"`
	Name       string `db:"name"`
	Era        int32  `db:"era"`
	Modded     int32  `db:"modded"`
}

func (r nationRow) toEntity() *dominions.Nation {
	return &dominions.Nation{
		DominionID: r.DominionID,
		Name:       r.Name,
		Era:        dominions.Era(r.Era),
		Modded:     r.Modded,
	}
}

type unitRow struct {
	DominionID int32  `db:"dominion_id"`
	Name       string `db:"name"`
	Modded     int32  `db:"modded"`
}

// OpenSQLite opens or creates the catalog database at path and applies the schema
func OpenSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog database %s", path)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to migrate catalog database")
	}

	return db, nil
}

type sqliteRepository struct {
	db    *sqlx.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite catalog repository.
type SQLiteConfig struct {
	DB    *sqlx.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a SQLite-backed catalog. The database must already carry
// the schema, see OpenSQLite.
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: c,
	}, nil
}

func (r *sqliteRepository) GetNation(ctx context.Context, input GetNationInput) (*GetNationOutput, error) {
	if err := validateGetNation(input); err != nil {
		return nil, err
	}

	var row nationRow
	err := r.db.GetContext(ctx, &row,
		`SELECT dominion_id, name, era, modded FROM nations WHERE era = ? AND name = ?`,
		int32(input.Era), input.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("nation %s not found", dominions.FactionRef{Era: input.Era, Name: input.Name})
		}
		return nil, errors.Wrapf(err, "failed to get nation")
	}

	return &GetNationOutput{Nation: row.toEntity()}, nil
}

func (r *sqliteRepository) UnitExists(ctx context.Context, input UnitExistsInput) (*UnitExistsOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errUnitID)
	}

	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM units WHERE dominion_id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check unit")
	}

	return &UnitExistsOutput{Exists: count > 0}, nil
}

func (r *sqliteRepository) ListNations(ctx context.Context, input ListNationsInput) (*ListNationsOutput, error) {
	query, args, err := moddedQuery(`SELECT dominion_id, name, era, modded FROM nations`, `ORDER BY dominion_id, era`, input.Modded)
	if err != nil {
		return nil, err
	}

	var rows []nationRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrapf(err, "failed to list nations")
	}

	nations := make([]*dominions.Nation, len(rows))
	for i, row := range rows {
		nations[i] = row.toEntity()
	}

	return &ListNationsOutput{Nations: nations}, nil
}

func (r *sqliteRepository) ListUnits(ctx context.Context, input ListUnitsInput) (*ListUnitsOutput, error) {
	query, args, err := moddedQuery(`SELECT dominion_id, name, modded FROM units`, `ORDER BY dominion_id`, input.Modded)
	if err != nil {
		return nil, err
	}

	var rows []unitRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, errors.Wrapf(err, "failed to list units")
	}

	units := make([]*dominions.Unit, len(rows))
	for i, row := range rows {
		units[i] = &dominions.Unit{DominionID: row.DominionID, Name: row.Name, Modded: row.Modded}
	}

	return &ListUnitsOutput{Units: units}, nil
}

func moddedQuery(base, order string, modded []int32) (string, []interface{}, error) {
	if len(modded) == 0 {
		return base + " " + order, nil, nil
	}

	query, args, err := sqlx.In(base+" WHERE modded IN (?) "+order, modded)
	if err != nil {
		return "", nil, errors.Wrapf(err, "failed to build modded filter")
	}
	return query, args, nil
}

func (r *sqliteRepository) Import(ctx context.Context, input ImportInput) (*ImportOutput, error) {
	if err := validateImport(input); err != nil {
		return nil, err
	}

	importedAt := r.clock.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin import")
	}
	defer func() { _ = tx.Rollback() }()

	if input.Replace {
		for _, table := range []string{"nations", "units"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return nil, errors.Wrapf(err, "failed to clear %s", table)
			}
		}
	}

	for _, n := range input.Nations {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO nations (dominion_id, name, era, modded)
			VALUES (:dominion_id, :name, :era, :modded)
			ON CONFLICT (era, name) DO UPDATE SET
				dominion_id = excluded.dominion_id,
				modded = excluded.modded`,
			nationRow{DominionID: n.DominionID, Name: n.Name, Era: int32(n.Era), Modded: n.Modded})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to import nation %s", n.Display())
		}
	}

	for _, u := range input.Units {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO units (dominion_id, name, modded)
			VALUES (:dominion_id, :name, :modded)
			ON CONFLICT (dominion_id) DO UPDATE SET
				name = excluded.name,
				modded = excluded.modded`,
			unitRow{DominionID: u.DominionID, Name: u.Name, Modded: u.Modded})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to import unit %d", u.DominionID)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO catalog_meta (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		metaImportedAt, importedAt.Format(time.RFC3339))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record import time")
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit import")
	}

	return &ImportOutput{
		NationCount: len(input.Nations),
		UnitCount:   len(input.Units),
		ImportedAt:  importedAt,
	}, nil
}
