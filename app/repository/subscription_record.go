package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/entity"
)

var ErrSubscriptionRecordAlreadyExists = errors.New("subscription record already exists")

const subscriptionRecordColumns = `id, investor_id, plan_type, start_date, expiry_date, status,
		       price_cents, currency, transaction_id, created_at, updated_at`

type SubscriptionRecordRepository struct {
	baseRepository
}

func NewSubscriptionRecordRepository(db DBTX, dialect string) *SubscriptionRecordRepository {
	return &SubscriptionRecordRepository{baseRepository{db: db, dialect: dialect}}
}

func (r *SubscriptionRecordRepository) Create(ctx context.Context, record *entity.SubscriptionRecord) error {
	query := `
		INSERT INTO subscription_records (
			investor_id, plan_type, start_date, expiry_date, status,
			price_cents, currency, transaction_id, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	args := []interface{}{
		record.InvestorID,
		record.PlanType,
		record.StartDate,
		record.ExpiryDate,
		record.Status,
		record.PriceCents,
		record.Currency,
		nullableStringValue(&record.TransactionID),
		record.CreatedAt,
		record.UpdatedAt,
	}

	if r.dialect == DialectPostgres {
		var id int64
		err := r.conn(ctx).QueryRowContext(ctx, r.rebind(query+" RETURNING id"), args...).Scan(&id)
		if err != nil {
			if isDuplicateEntryError(err) {
				return ErrSubscriptionRecordAlreadyExists
			}
			return err
		}
		record.ID = uint64(id)
		return nil
	}

	result, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrSubscriptionRecordAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = uint64(id)
	return nil
}

// UpdateLatestStatus moves the investor's most recent record to status. It
// reports false when the investor has no records.
func (r *SubscriptionRecordRepository) UpdateLatestStatus(ctx context.Context, investorID, status string, updatedAt time.Time) (bool, error) {
	query := `
		SELECT id
		FROM subscription_records
		WHERE investor_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var id uint64
	err := r.conn(ctx).QueryRowContext(ctx, r.rebind(query), investorID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	update := `
		UPDATE subscription_records
		SET status = ?, updated_at = ?
		WHERE id = ?
	`
	if _, err := r.conn(ctx).ExecContext(ctx, r.rebind(update), status, updatedAt, id); err != nil {
		return false, err
	}

	return true, nil
}

func (r *SubscriptionRecordRepository) ListByInvestor(ctx context.Context, investorID string) ([]*entity.SubscriptionRecord, error) {
	query := `
		SELECT ` + subscriptionRecordColumns + `
		FROM subscription_records
		WHERE investor_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.conn(ctx).QueryContext(ctx, r.rebind(query), investorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.SubscriptionRecord, 0)
	for rows.Next() {
		item := &entity.SubscriptionRecord{}
		if err := scanSubscriptionRecord(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanSubscriptionRecord(scanner rowScanner, item *entity.SubscriptionRecord) error {
	var transactionID sql.NullString

	err := scanner.Scan(
		&item.ID,
		&item.InvestorID,
		&item.PlanType,
		&item.StartDate,
		&item.ExpiryDate,
		&item.Status,
		&item.PriceCents,
		&item.Currency,
		&transactionID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	item.TransactionID = transactionID.String
	return nil
}
