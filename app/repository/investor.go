package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/investor-properties-ny/ms-go-investor-subscriptions/app/entity"
)

var ErrInvestorNotFound = errors.New("investor not found")

const investorColumns = `id, email, has_foreclosure_subscription, foreclosure_subscription_expiry,
		       subscription_plan, created_at, updated_at`

type InvestorRepository struct {
	baseRepository
}

func NewInvestorRepository(db DBTX, dialect string) *InvestorRepository {
	return &InvestorRepository{baseRepository{db: db, dialect: dialect}}
}

func (r *InvestorRepository) FindByID(ctx context.Context, id string) (*entity.Investor, error) {
	query := `
		SELECT ` + investorColumns + `
		FROM investors
		WHERE id = ?
	`

	item := &entity.Investor{}
	if err := scanInvestor(
		r.conn(ctx).QueryRowContext(ctx, r.rebind(query), id),
		item,
	); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateSubscription persists the subscription fields of the investor. Other
// columns are owned by the directory and left untouched.
func (r *InvestorRepository) UpdateSubscription(ctx context.Context, investor *entity.Investor) error {
	query := `
		UPDATE investors
		SET has_foreclosure_subscription = ?, foreclosure_subscription_expiry = ?,
		    subscription_plan = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.conn(ctx).ExecContext(ctx, r.rebind(query),
		investor.HasForeclosureSubscription,
		nullableTimeValue(investor.ForeclosureSubscriptionExpiry),
		nullableStringValue(investor.SubscriptionPlan),
		investor.UpdatedAt,
		investor.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// MySQL reports changed rows, not matched rows, unless clientFoundRows is set.
	exists, err := r.exists(ctx, investor.ID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvestorNotFound
	}

	return nil
}

// ClearExpiredSubscription drops the subscription flag only while the stored
// subscription is still lapsed at now. A renewal committed after the caller read
// the investor is left intact; the result reports whether the flag was cleared.
func (r *InvestorRepository) ClearExpiredSubscription(ctx context.Context, id string, now time.Time) (bool, error) {
	query := `
		UPDATE investors
		SET has_foreclosure_subscription = ?, updated_at = ?
		WHERE id = ?
		  AND has_foreclosure_subscription = ?
		  AND (foreclosure_subscription_expiry IS NULL OR foreclosure_subscription_expiry < ?)
	`

	result, err := r.conn(ctx).ExecContext(ctx, r.rebind(query), false, now, id, true, now)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *InvestorRepository) exists(ctx context.Context, id string) (bool, error) {
	var found int
	err := r.conn(ctx).QueryRowContext(ctx, r.rebind(`SELECT 1 FROM investors WHERE id = ?`), id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *InvestorRepository) ListExpiredSubscribed(ctx context.Context, now time.Time) ([]*entity.Investor, error) {
	query := `
		SELECT ` + investorColumns + `
		FROM investors
		WHERE has_foreclosure_subscription = ?
		  AND (foreclosure_subscription_expiry IS NULL OR foreclosure_subscription_expiry < ?)
		ORDER BY id ASC
	`

	rows, err := r.conn(ctx).QueryContext(ctx, r.rebind(query), true, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Investor, 0)
	for rows.Next() {
		item := &entity.Investor{}
		if err := scanInvestor(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanInvestor(scanner rowScanner, item *entity.Investor) error {
	var email sql.NullString
	var expiry sql.NullTime
	var plan sql.NullString

	err := scanner.Scan(
		&item.ID,
		&email,
		&item.HasForeclosureSubscription,
		&expiry,
		&plan,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	item.Email = email.String
	if expiry.Valid {
		item.ForeclosureSubscriptionExpiry = &expiry.Time
	} else {
		item.ForeclosureSubscriptionExpiry = nil
	}
	if plan.Valid {
		item.SubscriptionPlan = &plan.String
	} else {
		item.SubscriptionPlan = nil
	}

	return nil
}
