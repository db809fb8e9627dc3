package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"sync"
	"testing"
)

type execCall struct {
	query string
	args  []driver.Value
	inTx  bool
}

// fakeHandler backs a *sql.DB opened through fakeConnector.
type fakeHandler struct {
	mu        sync.Mutex
	calls     []execCall
	begins    int
	commits   int
	rollbacks int
	inTx      bool

	execFn  func(query string, args []driver.Value) (driver.Result, error)
	queryFn func(query string, args []driver.Value) (driver.Rows, error)
}

func (h *fakeHandler) record(query string, named []driver.NamedValue) []driver.Value {
	args := make([]driver.Value, 0, len(named))
	for _, nv := range named {
		args = append(args, nv.Value)
	}
	h.mu.Lock()
	h.calls = append(h.calls, execCall{query: query, args: args, inTx: h.inTx})
	h.mu.Unlock()
	return args
}

func newFakeSQLDB(t *testing.T, h *fakeHandler) *sql.DB {
	t.Helper()
	db := sql.OpenDB(&fakeConnector{h: h})
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fakeConnector struct {
	h *fakeHandler
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{h: c.h}, nil
}

func (c *fakeConnector) Driver() driver.Driver {
	return fakeDriver{}
}

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("use the connector")
}

type fakeConn struct {
	h *fakeHandler
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *fakeConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	c.h.mu.Lock()
	defer c.h.mu.Unlock()
	c.h.begins++
	c.h.inTx = true
	return &fakeTx{h: c.h}, nil
}

func (c *fakeConn) ExecContext(_ context.Context, query string, named []driver.NamedValue) (driver.Result, error) {
	args := c.h.record(query, named)
	if c.h.execFn != nil {
		return c.h.execFn(query, args)
	}
	return driver.RowsAffected(1), nil
}

func (c *fakeConn) QueryContext(_ context.Context, query string, named []driver.NamedValue) (driver.Rows, error) {
	args := c.h.record(query, named)
	if c.h.queryFn != nil {
		return c.h.queryFn(query, args)
	}
	return &fakeRows{}, nil
}

type fakeTx struct {
	h *fakeHandler
}

func (tx *fakeTx) Commit() error {
	tx.h.mu.Lock()
	defer tx.h.mu.Unlock()
	tx.h.commits++
	tx.h.inTx = false
	return nil
}

func (tx *fakeTx) Rollback() error {
	tx.h.mu.Lock()
	defer tx.h.mu.Unlock()
	tx.h.rollbacks++
	tx.h.inTx = false
	return nil
}

type fakeRows struct {
	columns []string
	values  [][]driver.Value
	idx     int
}

func (r *fakeRows) Columns() []string { return r.columns }

func (r *fakeRows) Close() error { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.idx])
	r.idx++
	return nil
}

type fakeLastInsertResult struct {
	id int64
}

func (r fakeLastInsertResult) LastInsertId() (int64, error) { return r.id, nil }

func (r fakeLastInsertResult) RowsAffected() (int64, error) { return 1, nil }
