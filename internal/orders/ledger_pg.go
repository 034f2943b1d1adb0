package orders

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgLedger is the Postgres-backed ledger for deployments that outgrow the
// single-file document.
type PgLedger struct{ DB *pgxpool.Pool }

func (l *PgLedger) EnsureSchema(ctx context.Context) error {
	_, err := l.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			phone      TEXT NOT NULL,
			address    TEXT NOT NULL,
			notes      TEXT NOT NULL DEFAULT '',
			total      INT  NOT NULL,
			submitted  TIMESTAMPTZ NOT NULL,
			status     TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS order_items (
			order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id TEXT NOT NULL,
			name       TEXT NOT NULL,
			unit       TEXT NOT NULL,
			price      INT  NOT NULL,
			qty        INT  NOT NULL
		);
	`)
	return err
}

func (l *PgLedger) List(ctx context.Context) ([]Order, error) {
	rows, err := l.DB.Query(ctx, `SELECT id, name, phone, address, notes, total, submitted, status
	                              FROM orders ORDER BY submitted DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	index := map[string]int{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Address,
			&o.Customer.Notes, &o.Total, &o.Timestamp, &o.Status); err != nil {
			return nil, err
		}
		index[o.ID] = len(out)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	irows, err := l.DB.Query(ctx, `SELECT order_id, product_id, name, unit, price, qty FROM order_items`)
	if err != nil {
		return nil, err
	}
	defer irows.Close()
	for irows.Next() {
		var oid string
		var it OrderItem
		if err := irows.Scan(&oid, &it.ProductID, &it.Name, &it.Unit, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[oid]; ok {
			out[i].Items = append(out[i].Items, it)
		}
	}
	return out, irows.Err()
}

func (l *PgLedger) Append(ctx context.Context, o Order) error {
	tx, err := l.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `INSERT INTO orders(id, name, phone, address, notes, total, submitted, status)
	                       VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		o.ID, o.Customer.Name, o.Customer.Phone, o.Customer.Address, o.Customer.Notes,
		o.Total, o.Timestamp, o.Status)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, it := range o.Items {
		if _, err := tx.Exec(ctx, `INSERT INTO order_items(order_id, product_id, name, unit, price, qty)
		                           VALUES ($1,$2,$3,$4,$5,$6)`,
			o.ID, it.ProductID, it.Name, it.Unit, it.Price, it.Quantity); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (l *PgLedger) UpdateStatus(ctx context.Context, orderID string, s Status) error {
	// absent id is a no-op, matching the file ledger
	_, err := l.DB.Exec(ctx, `UPDATE orders SET status=$2 WHERE id=$1`, orderID, s)
	return err
}

func (l *PgLedger) Clear(ctx context.Context) error {
	_, err := l.DB.Exec(ctx, `DELETE FROM orders`)
	return err
}
