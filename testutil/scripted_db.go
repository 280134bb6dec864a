// Package testutil provides a scripted database/sql driver wrapped by GORM.
// Tests declare the ordered queries they expect (as regular expressions) and
// the rows or results each should produce; any other statement fails the
// test. No real MySQL server is involved.
package testutil

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type StepKind int

const (
	KindQuery StepKind = iota
	KindExec
)

// QueryStep is one expected statement. Args nil skips argument checking;
// Args set (possibly empty) is matched exactly.
type QueryStep struct {
	Kind    StepKind
	Pattern *regexp.Regexp
	Args    []driver.Value
	Columns []string
	Rows    [][]driver.Value
	Err     error
	Result  driver.Result
}

// ScriptedDB tracks the remaining expectations.
type ScriptedDB struct {
	mu    sync.Mutex
	steps []*QueryStep
}

func (db *ScriptedDB) next(kind StepKind, query string, args []driver.NamedValue) (*QueryStep, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if len(db.steps) == 0 {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	step := db.steps[0]
	if step.Kind != kind {
		return nil, fmt.Errorf("unexpected kind for query %s: got %v want %v", query, kind, step.Kind)
	}
	if !step.Pattern.MatchString(query) {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	if step.Args != nil {
		if len(step.Args) != len(args) {
			return nil, fmt.Errorf("unexpected arg count for %s: got %d want %d", query, len(args), len(step.Args))
		}
		for i := range args {
			if args[i].Value != step.Args[i] {
				return nil, fmt.Errorf("unexpected arg %d for %s: got %v want %v", i, query, args[i].Value, step.Args[i])
			}
		}
	}
	db.steps = db.steps[1:]
	return step, nil
}

// VerifyComplete fails when declared expectations were never reached.
func (db *ScriptedDB) VerifyComplete() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if len(db.steps) != 0 {
		return fmt.Errorf("unmet expectations: %d", len(db.steps))
	}
	return nil
}

type scriptedDriver struct {
	db *ScriptedDB
}

func (d *scriptedDriver) Open(string) (driver.Conn, error) {
	return &scriptedConn{db: d.db}, nil
}

type scriptedConn struct {
	db *ScriptedDB
}

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *scriptedConn) Close() error { return nil }

func (c *scriptedConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

func (c *scriptedConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	step, err := c.db.next(KindQuery, query, args)
	if err != nil {
		return nil, err
	}
	if step.Err != nil {
		return nil, step.Err
	}
	return &scriptedRows{columns: step.Columns, rows: step.Rows}, nil
}

func (c *scriptedConn) Query(query string, args []driver.Value) (driver.Rows, error) {
	named := make([]driver.NamedValue, len(args))
	for i, v := range args {
		named[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return c.QueryContext(context.Background(), query, named)
}

func (c *scriptedConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	step, err := c.db.next(KindExec, query, args)
	if err != nil {
		return nil, err
	}
	if step.Err != nil {
		return nil, step.Err
	}
	if step.Result != nil {
		return step.Result, nil
	}
	return ScriptedResult{}, nil
}

func (c *scriptedConn) Exec(query string, args []driver.Value) (driver.Result, error) {
	named := make([]driver.NamedValue, len(args))
	for i, v := range args {
		named[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return c.ExecContext(context.Background(), query, named)
}

// ScriptedResult is the driver.Result returned by exec steps.
type ScriptedResult struct {
	InsertID int64
	Affected int64
}

func (r ScriptedResult) LastInsertId() (int64, error) { return r.InsertID, nil }

func (r ScriptedResult) RowsAffected() (int64, error) { return r.Affected, nil }

type scriptedRows struct {
	columns []string
	rows    [][]driver.Value
	idx     int
}

func (r *scriptedRows) Columns() []string { return r.columns }

func (r *scriptedRows) Close() error { return nil }

func (r *scriptedRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	row := r.rows[r.idx]
	for i := range dest {
		dest[i] = nil
	}
	for i := range row {
		dest[i] = row[i]
	}
	r.idx++
	return nil
}

var driverSeq atomic.Int64

// NewScriptedGormDB opens a GORM handle over the scripted driver.
func NewScriptedGormDB(t *testing.T, steps []*QueryStep) (*gorm.DB, *ScriptedDB, func()) {
	t.Helper()
	state := &ScriptedDB{steps: steps}
	driverName := fmt.Sprintf("scripted_%d", driverSeq.Add(1))
	sql.Register(driverName, &scriptedDriver{db: state})

	sqlDB, err := sql.Open(driverName, "")
	if err != nil {
		t.Fatalf("failed to open sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("failed to create gorm db: %v", err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}
	return gormDB, state, cleanup
}
