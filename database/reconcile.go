package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// columnDef pairs a column name with its full DDL fragment, the exact text
// used for ALTER TABLE ADD COLUMN. Only columns that are nullable or carry a
// default belong here, since existing rows must be backfillable.
type columnDef struct {
	name string
	ddl  string
}

// tableDef declares one managed table: the full CREATE TABLE statement used
// when the table is absent, and the column set reconciled when it exists.
type tableDef struct {
	name      string
	createDDL string
	columns   []columnDef
}

// managedTables is the compile-time allowlist of every table and column this
// service owns. Reconciliation never interpolates caller input; all DDL text
// lives here. Order matters: battles references game_users.
var managedTables = []tableDef{
	{
		name: "game_users",
		createDDL: `CREATE TABLE game_users (
			id SERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL UNIQUE,
			photo_url VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		name: "characters",
		createDDL: `CREATE TABLE characters (
			id SERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL UNIQUE REFERENCES game_users(user_id),
			strength INT DEFAULT 15,
			agility INT DEFAULT 10,
			intuition INT DEFAULT 10,
			endurance INT DEFAULT 10,
			intelligence INT DEFAULT 10,
			wisdom INT DEFAULT 10,
			upgrade_points INT DEFAULT 5,
			level INT DEFAULT 0,
			experience INT DEFAULT 0,
			health INT DEFAULT 100,
			max_health INT DEFAULT 150,
			mana INT DEFAULT 50,
			max_mana INT DEFAULT 50,
			damage INT DEFAULT 10,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		columns: []columnDef{
			{"strength", "strength INT DEFAULT 15"},
			{"agility", "agility INT DEFAULT 10"},
			{"intuition", "intuition INT DEFAULT 10"},
			{"endurance", "endurance INT DEFAULT 10"},
			{"intelligence", "intelligence INT DEFAULT 10"},
			{"wisdom", "wisdom INT DEFAULT 10"},
			{"upgrade_points", "upgrade_points INT DEFAULT 5"},
			{"level", "level INT DEFAULT 0"},
			{"experience", "experience INT DEFAULT 0"},
			{"health", "health INT DEFAULT 100"},
			{"max_health", "max_health INT DEFAULT 150"},
			{"mana", "mana INT DEFAULT 50"},
			{"max_mana", "max_mana INT DEFAULT 50"},
			{"damage", "damage INT DEFAULT 10"},
		},
	},
	{
		name: "experience_levels",
		createDDL: `CREATE TABLE experience_levels (
			level INT PRIMARY KEY,
			min_experience INT NOT NULL,
			max_experience INT NOT NULL
		)`,
	},
	{
		name: "battles",
		createDDL: `CREATE TABLE battles (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			creator_id BIGINT NOT NULL REFERENCES game_users(user_id),
			opponent_id BIGINT REFERENCES game_users(user_id),
			status VARCHAR(50) DEFAULT 'waiting',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		columns: []columnDef{
			{"status", "status VARCHAR(50) DEFAULT 'waiting'"},
			{"created_at", "created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP"},
		},
	},
}

// Reconciler brings the live schema to the declared shape at startup.
// Additive only: it creates missing tables and adds missing columns with
// their defaults, and never drops or alters anything that already exists.
// Running it again after a clean pass is a no-op.
type Reconciler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewReconciler(db *gorm.DB, log *zap.Logger) *Reconciler {
	return &Reconciler{db: db, log: log}
}

// Run reconciles every managed table. The first query failure aborts the
// remaining steps and is returned; the caller decides whether the process
// keeps serving (it does, behind a readiness flag).
func (r *Reconciler) Run() error {
	for _, t := range managedTables {
		if err := r.reconcileTable(t); err != nil {
			return fmt.Errorf("reconcile table %s: %w", t.name, err)
		}
	}
	return nil
}

func (r *Reconciler) reconcileTable(t tableDef) error {
	exists, err := r.tableExists(t.name)
	if err != nil {
		return err
	}

	if !exists {
		if err := r.db.Exec(t.createDDL).Error; err != nil {
			return err
		}
		r.log.Info("table created", zap.String("table", t.name))
		return nil
	}

	r.log.Info("table already exists", zap.String("table", t.name))
	for _, col := range t.columns {
		if err := r.reconcileColumn(t.name, col); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) reconcileColumn(table string, col columnDef) error {
	exists, err := r.columnExists(table, col.name)
	if err != nil {
		return err
	}
	if exists {
		r.log.Debug("column already exists",
			zap.String("table", table), zap.String("column", col.name))
		return nil
	}

	// table and col.ddl come from the managedTables allowlist, never from
	// request input.
	if err := r.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, col.ddl)).Error; err != nil {
		return err
	}
	r.log.Info("column added",
		zap.String("table", table), zap.String("column", col.name))
	return nil
}

func (r *Reconciler) tableExists(name string) (bool, error) {
	var exists bool
	err := r.db.Raw(`SELECT EXISTS (
		SELECT FROM pg_catalog.pg_tables
		WHERE schemaname = 'public' AND tablename = ?
	)`, name).Scan(&exists).Error
	return exists, err
}

func (r *Reconciler) columnExists(table, column string) (bool, error) {
	var exists bool
	err := r.db.Raw(`SELECT EXISTS (
		SELECT 1 FROM information_schema.columns
		WHERE table_name = ? AND column_name = ?
	)`, table, column).Scan(&exists).Error
	return exists, err
}
