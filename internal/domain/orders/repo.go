package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const orderColumns = `number, customer_name, customer_phone, customer_email, customer_company,
	delivery_address, comment, items, total, status, created_at, updated_at`

// Save сохраняет заявку как новый заказ и возвращает его с номером.
func (r *Repo) Save(ctx context.Context, s Submission) (*Order, error) {
	items, err := json.Marshal(s.Order.Items)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO orders (number, customer_name, customer_phone, customer_email, customer_company,
			delivery_address, comment, items, total, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, `+orderColumns+`
	`, NewNumber(), s.Customer.Name, s.Customer.Phone, s.Customer.Email, s.Customer.Company,
		s.Delivery.Address, s.Order.Comment, items, s.Order.Total, StatusNew)
	return scanOrder(row)
}

// GetByNumber возвращает заказ или nil, если такого номера нет.
func (r *Repo) GetByNumber(ctx context.Context, number string) (*Order, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, `+orderColumns+`
		FROM orders WHERE number = $1
	`, number)
	o, err := scanOrder(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// ListRecent — последние заказы, новые первыми.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, `+orderColumns+`
		FROM orders ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// Search ищет по номеру, ФИО, email и телефону.
func (r *Repo) Search(ctx context.Context, query string) ([]Order, error) {
	pattern := "%" + query + "%"
	rows, err := r.pool.Query(ctx, `
		SELECT id, `+orderColumns+`
		FROM orders
		WHERE number ILIKE $1 OR customer_name ILIKE $1 OR customer_email ILIKE $1 OR customer_phone LIKE $1
		ORDER BY created_at DESC
	`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// All — все заказы для выгрузки, новые первыми.
func (r *Repo) All(ctx context.Context) ([]Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, `+orderColumns+`
		FROM orders ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// UpdateStatus меняет статус заказа и пишет запись в журнал одной транзакцией.
func (r *Repo) UpdateStatus(ctx context.Context, number, newStatus, reason, changedBy string) error {
	if !ValidStatus(newStatus) {
		return fmt.Errorf("orders: unknown status %q", newStatus)
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var old string
	if err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE number=$1 FOR UPDATE`, number).Scan(&old); err != nil {
		if err == pgx.ErrNoRows {
			return fmt.Errorf("orders: order %s not found", number)
		}
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET status=$2, updated_at=now() WHERE number=$1`, number, newStatus); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO order_status_log (order_number, old_status, new_status, reason, changed_by)
		VALUES ($1,$2,$3,$4,$5)
	`, number, old, newStatus, reason, changedBy); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// StatusLog — журнал смен статуса заказа, свежие первыми.
func (r *Repo) StatusLog(ctx context.Context, number string) ([]StatusChange, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_number, old_status, new_status, reason, changed_by, changed_at
		FROM order_status_log WHERE order_number=$1 ORDER BY changed_at DESC
	`, number)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StatusChange
	for rows.Next() {
		var c StatusChange
		if err := rows.Scan(&c.OrderNumber, &c.OldStatus, &c.NewStatus, &c.Reason, &c.ChangedBy, &c.ChangedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Stats — сводка: всего, по статусам, за сегодня/неделю/месяц.
func (r *Repo) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{ByStatus: map[string]int{}}
	err := r.pool.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE created_at >= date_trunc('day', now())),
			count(*) FILTER (WHERE created_at >= date_trunc('week', now())),
			count(*) FILTER (WHERE created_at >= date_trunc('month', now()))
		FROM orders
	`).Scan(&st.Total, &st.Today, &st.ThisWeek, &st.ThisMonth)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT status, count(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		var n int
		if err := rows.Scan(&s, &n); err != nil {
			return nil, err
		}
		st.ByStatus[s] = n
	}
	return st, rows.Err()
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var items []byte
	err := row.Scan(&o.ID, &o.Number, &o.Customer.Name, &o.Customer.Phone, &o.Customer.Email,
		&o.Customer.Company, &o.Delivery.Address, &o.Comment, &items, &o.Total, &o.Status,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}
