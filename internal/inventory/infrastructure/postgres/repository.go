package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acme/order-fulfillment/internal/inventory/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

// EnsureSchema creates the stock table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS stock (
		id BIGSERIAL PRIMARY KEY,
		item_code TEXT NOT NULL UNIQUE,
		quantity INT NOT NULL CHECK (quantity >= 0)
	)`)
	return err
}

func (r *Repository) FindByItemCodes(ctx context.Context, codes []string) ([]domain.StockRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, item_code, quantity FROM stock WHERE item_code = ANY($1)`, codes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.StockRecord
	for rows.Next() {
		var rec domain.StockRecord
		if err := rows.Scan(&rec.ID, &rec.ItemCode, &rec.Quantity); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// UpsertStock sets the quantity for an item code, used by the provisioning
// step at boot and by tests. Not part of the lookup path.
func (r *Repository) UpsertStock(ctx context.Context, itemCode string, quantity int) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO stock (item_code, quantity) VALUES ($1,$2)
		ON CONFLICT (item_code) DO UPDATE SET quantity = $2`, itemCode, quantity)
	return err
}

// Seed applies a full stock map in one transaction.
func (r *Repository) Seed(ctx context.Context, stock map[string]int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for code, qty := range stock {
		_, err := tx.Exec(ctx, `INSERT INTO stock (item_code, quantity) VALUES ($1,$2)
			ON CONFLICT (item_code) DO UPDATE SET quantity = $2`, code, qty)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
