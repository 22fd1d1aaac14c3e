package mysql

import (
	"context"
	"database/sql"
	"errors"

	gomysql "github.com/go-sql-driver/mysql"

	"cafe_directory/internal/domain"
)

const erDupEntry = 1062

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func isDuplicateEntry(err error) bool {
	var me *gomysql.MySQLError
	return errors.As(err, &me) && me.Number == erDupEntry
}

func valPrice(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func (r *Repo) Insert(ctx context.Context, c domain.Cafe) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertCafeSQL,
		c.Name,
		c.MapURL,
		c.ImgURL,
		c.Location,
		c.Seats,
		c.HasToilet,
		c.HasWifi,
		c.HasSockets,
		c.CanTakeCalls,
		valPrice(c.CoffeePrice),
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, domain.ErrDuplicateName
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) UpdatePrice(ctx context.Context, id int64, price *string) error {
	res, err := r.db.ExecContext(ctx, updatePriceSQL, valPrice(price), id)
	if err != nil {
		return err
	}
	// RowsAffected is 0 both for a missing row and for a no-op overwrite with the
	// same value, so existence has to be checked separately by the caller when the
	// distinction matters. Here the service looks the record up first.
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, gerr := r.GetByID(ctx, id); gerr != nil {
			return gerr
		}
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteCafeSQL, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Cafe, error) {
	row := r.db.QueryRowContext(ctx, getByIDSQL, id)
	c, err := scanCafe(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Cafe{}, domain.ErrNotFound
		}
		return domain.Cafe{}, err
	}
	return c, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Cafe, error) {
	return r.queryCafes(ctx, listAllSQL)
}

func (r *Repo) ListByName(ctx context.Context) ([]domain.Cafe, error) {
	return r.queryCafes(ctx, listByNameSQL)
}

func (r *Repo) FindByLocation(ctx context.Context, location string) ([]domain.Cafe, error) {
	return r.queryCafes(ctx, findByLocationSQL, location)
}

type rowScanner interface{ Scan(dest ...any) error }

func scanCafe(row rowScanner) (domain.Cafe, error) {
	var c domain.Cafe
	var price sql.NullString
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.MapURL,
		&c.ImgURL,
		&c.Location,
		&c.Seats,
		&c.HasToilet,
		&c.HasWifi,
		&c.HasSockets,
		&c.CanTakeCalls,
		&price,
	); err != nil {
		return domain.Cafe{}, err
	}
	if price.Valid {
		p := price.String
		c.CoffeePrice = &p
	}
	return c, nil
}

func (r *Repo) queryCafes(ctx context.Context, query string, args ...any) ([]domain.Cafe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Cafe
	for rows.Next() {
		c, err := scanCafe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
