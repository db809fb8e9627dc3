package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/entity"
	"github.com/jackc/pgx/v5/pgconn"
)

const investorID = "3f1c2b8e-6a4d-4c1e-9a77-2f8d1e0b5c11"

var investorColumnNames = []string{
	"id", "email", "has_foreclosure_subscription", "foreclosure_subscription_expiry",
	"subscription_plan", "created_at", "updated_at",
}

var recordColumnNames = []string{
	"id", "investor_id", "plan_type", "start_date", "expiry_date", "status",
	"price_cents", "currency", "transaction_id", "created_at", "updated_at",
}

type fakeDB struct {
	execFn func(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if f.execFn != nil {
		return f.execFn(ctx, query, args...)
	}
	return fakeResult{lastInsertID: 1, rowsAffected: 1}, nil
}

func (f *fakeDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type fakeResult struct {
	lastInsertID int64
	rowsAffected int64
	lastErr      error
	rowsErr      error
}

func (r fakeResult) LastInsertId() (int64, error) {
	return r.lastInsertID, r.lastErr
}

func (r fakeResult) RowsAffected() (int64, error) {
	return r.rowsAffected, r.rowsErr
}

func TestRebindDollar(t *testing.T) {
	got := rebindDollar("UPDATE t SET a = ?, b = ? WHERE id = ?")
	if got != "UPDATE t SET a = $1, b = $2 WHERE id = $3" {
		t.Fatalf("unexpected rebind: %s", got)
	}

	repo := NewInvestorRepository(&fakeDB{}, DialectMySQL)
	if q := repo.rebind("WHERE id = ?"); q != "WHERE id = ?" {
		t.Fatalf("expected mysql query untouched, got %s", q)
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if !isDuplicateEntryError(&mysqlDriver.MySQLError{Number: 1062}) {
		t.Fatal("expected true for mysql duplicate error")
	}
	if !isDuplicateEntryError(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected true for postgres unique violation")
	}
	if isDuplicateEntryError(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("expected false for postgres foreign key violation")
	}
	if isDuplicateEntryError(errors.New("boom")) {
		t.Fatal("expected false for generic error")
	}
}

func TestNullableHelpers(t *testing.T) {
	if nullableStringValue(nil) != nil {
		t.Fatal("expected nil for nil string")
	}
	s := "  monthly  "
	if got := nullableStringValue(&s); got != "monthly" {
		t.Fatalf("expected trimmed value, got %#v", got)
	}
	tm := time.Now().UTC()
	if nullableTimeValue(nil) != nil {
		t.Fatal("expected nil for nil time")
	}
	if got := nullableTimeValue(&tm); got == nil {
		t.Fatal("expected non-nil for time value")
	}
}

func TestInvestorFindByIDNotFound(t *testing.T) {
	h := &fakeHandler{}
	repo := NewInvestorRepository(newFakeSQLDB(t, h), DialectPostgres)

	item, err := repo.FindByID(context.Background(), investorID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item != nil {
		t.Fatalf("expected nil investor, got %+v", item)
	}
	if !strings.Contains(h.calls[0].query, "WHERE id = $1") {
		t.Fatalf("expected postgres placeholder, got %s", h.calls[0].query)
	}
}

func TestInvestorFindByIDScansNullableColumns(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	expiry := now.Add(48 * time.Hour)
	h := &fakeHandler{queryFn: func(string, []driver.Value) (driver.Rows, error) {
		return &fakeRows{columns: investorColumnNames, values: [][]driver.Value{
			{investorID, "investor@example.com", true, expiry, "monthly", now, now},
		}}, nil
	}}
	repo := NewInvestorRepository(newFakeSQLDB(t, h), DialectPostgres)

	item, err := repo.FindByID(context.Background(), investorID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item == nil || item.ID != investorID || !item.HasForeclosureSubscription {
		t.Fatalf("unexpected investor: %+v", item)
	}
	if item.ForeclosureSubscriptionExpiry == nil || !item.ForeclosureSubscriptionExpiry.Equal(expiry) {
		t.Fatalf("unexpected expiry: %v", item.ForeclosureSubscriptionExpiry)
	}
	if item.SubscriptionPlan == nil || *item.SubscriptionPlan != "monthly" {
		t.Fatalf("unexpected plan: %v", item.SubscriptionPlan)
	}

	h.queryFn = func(string, []driver.Value) (driver.Rows, error) {
		return &fakeRows{columns: investorColumnNames, values: [][]driver.Value{
			{investorID, nil, false, nil, nil, now, now},
		}}, nil
	}
	item, err = repo.FindByID(context.Background(), investorID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if item.ForeclosureSubscriptionExpiry != nil || item.SubscriptionPlan != nil || item.Email != "" {
		t.Fatalf("expected null columns to stay empty: %+v", item)
	}
}

func TestInvestorUpdateSubscriptionNoRowsAffected(t *testing.T) {
	h := &fakeHandler{execFn: func(string, []driver.Value) (driver.Result, error) {
		return driver.RowsAffected(0), nil
	}}
	repo := NewInvestorRepository(newFakeSQLDB(t, h), DialectMySQL)

	err := repo.UpdateSubscription(context.Background(), &entity.Investor{ID: investorID})
	if !errors.Is(err, ErrInvestorNotFound) {
		t.Fatalf("expected ErrInvestorNotFound, got %v", err)
	}
	if len(h.calls) != 2 || !strings.Contains(h.calls[1].query, "SELECT 1 FROM investors") {
		t.Fatalf("expected existence lookup after empty update, got %+v", h.calls)
	}
}

func TestInvestorUpdateSubscriptionUnchangedRowIsNotMissing(t *testing.T) {
	h := &fakeHandler{
		execFn: func(string, []driver.Value) (driver.Result, error) {
			return driver.RowsAffected(0), nil
		},
		queryFn: func(string, []driver.Value) (driver.Rows, error) {
			return &fakeRows{columns: []string{"1"}, values: [][]driver.Value{{int64(1)}}}, nil
		},
	}
	repo := NewInvestorRepository(newFakeSQLDB(t, h), DialectMySQL)

	if err := repo.UpdateSubscription(context.Background(), &entity.Investor{ID: investorID}); err != nil {
		t.Fatalf("expected matched but unchanged row to succeed, got %v", err)
	}
}

func TestInvestorUpdateSubscriptionWritesFields(t *testing.T) {
	var gotArgs []interface{}
	repo := NewInvestorRepository(&fakeDB{execFn: func(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
		if !strings.Contains(query, "$5") {
			t.Fatalf("expected rebound query, got %s", query)
		}
		gotArgs = args
		return fakeResult{rowsAffected: 1}, nil
	}}, DialectPostgres)

	expiry := time.Now().Add(time.Hour)
	plan := "yearly"
	err := repo.UpdateSubscription(context.Background(), &entity.Investor{
		ID:                            investorID,
		HasForeclosureSubscription:    true,
		ForeclosureSubscriptionExpiry: &expiry,
		SubscriptionPlan:              &plan,
		UpdatedAt:                     expiry,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotArgs[0] != true || gotArgs[2] != "yearly" || gotArgs[4] != investorID {
		t.Fatalf("unexpected args: %#v", gotArgs)
	}
}

func TestInvestorListExpiredSubscribed(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	h := &fakeHandler{queryFn: func(string, []driver.Value) (driver.Rows, error) {
		return &fakeRows{columns: investorColumnNames, values: [][]driver.Value{
			{investorID, "a@example.com", true, now.Add(-time.Hour), "monthly", now, now},
			{"b4a1d1d2-1111-4c1e-9a77-2f8d1e0b5c11", "b@example.com", true, nil, nil, now, now},
		}}, nil
	}}
	repo := NewInvestorRepository(newFakeSQLDB(t, h), DialectMySQL)

	items, err := repo.ListExpiredSubscribed(context.Background(), now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 investors, got %d", len(items))
	}
	if h.calls[0].args[0] != true {
		t.Fatalf("expected flag filter arg, got %#v", h.calls[0].args)
	}
}

func TestInvestorClearExpiredSubscription(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	h := &fakeHandler{execFn: func(query string, _ []driver.Value) (driver.Result, error) {
		if !strings.Contains(query, "has_foreclosure_subscription = $4") || !strings.Contains(query, "foreclosure_subscription_expiry < $5") {
			t.Fatalf("expected conditional update, got %s", query)
		}
		if strings.Contains(query, "subscription_plan") || strings.Contains(query, "foreclosure_subscription_expiry =") {
			t.Fatalf("expected only the flag to be written, got %s", query)
		}
		return driver.RowsAffected(1), nil
	}}
	repo := NewInvestorRepository(newFakeSQLDB(t, h), DialectPostgres)

	cleared, err := repo.ClearExpiredSubscription(context.Background(), investorID, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !cleared {
		t.Fatal("expected flag to be cleared")
	}
	args := h.calls[0].args
	if args[0] != false || args[2] != investorID || args[3] != true {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestInvestorClearExpiredSubscriptionSkipsRenewed(t *testing.T) {
	h := &fakeHandler{execFn: func(string, []driver.Value) (driver.Result, error) {
		return driver.RowsAffected(0), nil
	}}
	repo := NewInvestorRepository(newFakeSQLDB(t, h), DialectMySQL)

	cleared, err := repo.ClearExpiredSubscription(context.Background(), investorID, time.Now())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cleared {
		t.Fatal("expected renewed investor to keep its flag")
	}
	if len(h.calls) != 1 {
		t.Fatalf("expected a single statement, got %d", len(h.calls))
	}
}

func TestSubscriptionRecordCreatePostgresUsesReturning(t *testing.T) {
	h := &fakeHandler{queryFn: func(query string, _ []driver.Value) (driver.Rows, error) {
		if !strings.Contains(query, "RETURNING id") || !strings.Contains(query, "$10") {
			t.Fatalf("unexpected insert query: %s", query)
		}
		return &fakeRows{columns: []string{"id"}, values: [][]driver.Value{{int64(41)}}}, nil
	}}
	repo := NewSubscriptionRecordRepository(newFakeSQLDB(t, h), DialectPostgres)

	record := &entity.SubscriptionRecord{InvestorID: investorID, PlanType: entity.PlanCodeMonthly, Status: entity.SubscriptionRecordStatusActive}
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.ID != 41 {
		t.Fatalf("expected id=41, got %d", record.ID)
	}
}

func TestSubscriptionRecordCreateMySQLUsesLastInsertID(t *testing.T) {
	h := &fakeHandler{execFn: func(query string, _ []driver.Value) (driver.Result, error) {
		if strings.Contains(query, "RETURNING") {
			t.Fatalf("unexpected RETURNING for mysql: %s", query)
		}
		return fakeLastInsertResult{id: 22}, nil
	}}
	repo := NewSubscriptionRecordRepository(newFakeSQLDB(t, h), DialectMySQL)

	record := &entity.SubscriptionRecord{InvestorID: investorID}
	if err := repo.Create(context.Background(), record); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if record.ID != 22 {
		t.Fatalf("expected id=22, got %d", record.ID)
	}
}

func TestSubscriptionRecordCreateMapsDuplicate(t *testing.T) {
	repo := NewSubscriptionRecordRepository(&fakeDB{execFn: func(_ context.Context, _ string, _ ...interface{}) (sql.Result, error) {
		return nil, &mysqlDriver.MySQLError{Number: 1062, Message: "duplicate"}
	}}, DialectMySQL)

	err := repo.Create(context.Background(), &entity.SubscriptionRecord{})
	if !errors.Is(err, ErrSubscriptionRecordAlreadyExists) {
		t.Fatalf("expected ErrSubscriptionRecordAlreadyExists, got %v", err)
	}
}

func TestSubscriptionRecordUpdateLatestStatusWithoutRecords(t *testing.T) {
	h := &fakeHandler{}
	repo := NewSubscriptionRecordRepository(newFakeSQLDB(t, h), DialectPostgres)

	updated, err := repo.UpdateLatestStatus(context.Background(), investorID, entity.SubscriptionRecordStatusCancelled, time.Now())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated {
		t.Fatal("expected no update without records")
	}
	if len(h.calls) != 1 {
		t.Fatalf("expected only the lookup query, got %d calls", len(h.calls))
	}
}

func TestSubscriptionRecordUpdateLatestStatus(t *testing.T) {
	h := &fakeHandler{queryFn: func(query string, _ []driver.Value) (driver.Rows, error) {
		if !strings.Contains(query, "ORDER BY created_at DESC, id DESC") {
			t.Fatalf("expected newest-first lookup, got %s", query)
		}
		return &fakeRows{columns: []string{"id"}, values: [][]driver.Value{{int64(7)}}}, nil
	}}
	repo := NewSubscriptionRecordRepository(newFakeSQLDB(t, h), DialectPostgres)

	updated, err := repo.UpdateLatestStatus(context.Background(), investorID, entity.SubscriptionRecordStatusCancelled, time.Now())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !updated {
		t.Fatal("expected latest record to be updated")
	}
	last := h.calls[len(h.calls)-1]
	if !strings.HasPrefix(strings.TrimSpace(last.query), "UPDATE subscription_records") {
		t.Fatalf("expected update query, got %s", last.query)
	}
	if last.args[0] != entity.SubscriptionRecordStatusCancelled || last.args[2] != int64(7) {
		t.Fatalf("unexpected update args: %#v", last.args)
	}
}

func TestSubscriptionRecordListByInvestor(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	h := &fakeHandler{queryFn: func(string, []driver.Value) (driver.Rows, error) {
		return &fakeRows{columns: recordColumnNames, values: [][]driver.Value{
			{int64(2), investorID, "YEARLY", now, now.AddDate(0, 0, 365), "active", int64(29999), "USD", "stub-2", now, now},
			{int64(1), investorID, "MONTHLY", now, now.AddDate(0, 0, 30), "cancelled", int64(2999), "USD", nil, now, now},
		}}, nil
	}}
	repo := NewSubscriptionRecordRepository(newFakeSQLDB(t, h), DialectPostgres)

	items, err := repo.ListByInvestor(context.Background(), investorID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if items[0].ID != 2 || items[0].TransactionID != "stub-2" || items[0].PriceCents != 29999 {
		t.Fatalf("unexpected first record: %+v", items[0])
	}
	if items[1].TransactionID != "" || items[1].Status != entity.SubscriptionRecordStatusCancelled {
		t.Fatalf("unexpected second record: %+v", items[1])
	}
}

func TestTransactorCommitsAndRepositoriesJoinTx(t *testing.T) {
	h := &fakeHandler{}
	db := newFakeSQLDB(t, h)
	investors := NewInvestorRepository(db, DialectPostgres)
	records := NewSubscriptionRecordRepository(db, DialectMySQL)
	h.execFn = func(string, []driver.Value) (driver.Result, error) {
		return fakeLastInsertResult{id: 1}, nil
	}

	err := NewTransactor(db).Transact(context.Background(), func(ctx context.Context) error {
		if err := investors.UpdateSubscription(ctx, &entity.Investor{ID: investorID}); err != nil {
			return err
		}
		return records.Create(ctx, &entity.SubscriptionRecord{InvestorID: investorID})
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if h.begins != 1 || h.commits != 1 || h.rollbacks != 0 {
		t.Fatalf("unexpected tx counters: begins=%d commits=%d rollbacks=%d", h.begins, h.commits, h.rollbacks)
	}
	for _, call := range h.calls {
		if !call.inTx {
			t.Fatalf("expected query to run inside the transaction: %s", call.query)
		}
	}
}

func TestTransactorRollsBackOnError(t *testing.T) {
	h := &fakeHandler{}
	db := newFakeSQLDB(t, h)
	boom := errors.New("boom")

	err := NewTransactor(db).Transact(context.Background(), func(ctx context.Context) error {
		if _, ok := txFromContext(ctx); !ok {
			t.Fatal("expected transaction in context")
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if h.commits != 0 || h.rollbacks != 1 {
		t.Fatalf("unexpected tx counters: commits=%d rollbacks=%d", h.commits, h.rollbacks)
	}
}

func TestTransactorNestedCallReusesTx(t *testing.T) {
	h := &fakeHandler{}
	db := newFakeSQLDB(t, h)
	transactor := NewTransactor(db)

	err := transactor.Transact(context.Background(), func(ctx context.Context) error {
		return transactor.Transact(ctx, func(context.Context) error { return nil })
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if h.begins != 1 || h.commits != 1 {
		t.Fatalf("expected a single transaction, got begins=%d commits=%d", h.begins, h.commits)
	}
}
