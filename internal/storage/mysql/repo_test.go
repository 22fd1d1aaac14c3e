package mysql

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"

	"cafe_directory/internal/domain"
)

var cafeCols = []string{
	"id", "name", "map_url", "img_url", "location", "seats",
	"has_toilet", "has_wifi", "has_sockets", "can_take_calls", "coffee_price",
}

func newMock(t *testing.T) (*Repo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return New(db), mock
}

func TestInsertReturnsID(t *testing.T) {
	repo, mock := newMock(t)

	price := "£2.50"
	mock.ExpectExec(regexp.QuoteMeta(insertCafeSQL)).
		WithArgs("Alpha", "map", "img", "Soho", "10-20", true, true, false, false, "£2.50").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Insert(context.Background(), domain.Cafe{
		Name: "Alpha", MapURL: "map", ImgURL: "img", Location: "Soho", Seats: "10-20",
		HasToilet: true, HasWifi: true, CoffeePrice: &price,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertNilPriceBindsNull(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(insertCafeSQL)).
		WithArgs("Alpha", "map", "img", "Soho", "10-20", false, false, false, false, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if _, err := repo.Insert(context.Background(), domain.Cafe{
		Name: "Alpha", MapURL: "map", ImgURL: "img", Location: "Soho", Seats: "10-20",
	}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertDuplicateName(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(insertCafeSQL)).
		WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Alpha' for key 'uq_cafes_name'"})

	_, err := repo.Insert(context.Background(), domain.Cafe{Name: "Alpha"})
	if !errors.Is(err, domain.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(getByIDSQL)).
		WithArgs(int64(99999)).
		WillReturnRows(sqlmock.NewRows(cafeCols))

	_, err := repo.GetByID(context.Background(), 99999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByIDScansNullPrice(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(getByIDSQL)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cafeCols).
			AddRow(int64(7), "Alpha", "map", "img", "Soho", "10-20", true, false, true, false, nil))

	c, err := repo.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.ID != 7 || c.Name != "Alpha" || !c.HasToilet || c.HasWifi {
		t.Fatalf("unexpected cafe: %+v", c)
	}
	if c.CoffeePrice != nil {
		t.Fatalf("expected nil CoffeePrice, got %q", *c.CoffeePrice)
	}
}

func TestFindByLocation(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(findByLocationSQL)).
		WithArgs("Peckham").
		WillReturnRows(sqlmock.NewRows(cafeCols).
			AddRow(int64(2), "Beta", "m", "i", "Peckham", "20-30", true, true, false, false, "£2.75").
			AddRow(int64(3), "Gamma", "m", "i", "Peckham", "10-20", false, true, true, false, "£2.80"))

	out, err := repo.FindByLocation(context.Background(), "Peckham")
	if err != nil {
		t.Fatalf("FindByLocation: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Beta" || out[1].Name != "Gamma" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if out[0].CoffeePrice == nil || *out[0].CoffeePrice != "£2.75" {
		t.Fatalf("unexpected price: %+v", out[0].CoffeePrice)
	}
}

func TestUpdatePriceMissingRow(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(updatePriceSQL)).
		WithArgs("£3.00", int64(99999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// zero rows affected falls back to an existence probe
	mock.ExpectQuery(regexp.QuoteMeta(getByIDSQL)).
		WithArgs(int64(99999)).
		WillReturnRows(sqlmock.NewRows(cafeCols))

	price := "£3.00"
	if err := repo.UpdatePrice(context.Background(), 99999, &price); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePriceSameValueIsNoop(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(updatePriceSQL)).
		WithArgs("£3.00", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(getByIDSQL)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(cafeCols).
			AddRow(int64(7), "Alpha", "m", "i", "Soho", "10-20", false, false, false, false, "£3.00"))

	price := "£3.00"
	if err := repo.UpdatePrice(context.Background(), 7, &price); err != nil {
		t.Fatalf("expected nil for same-value overwrite, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteCafeSQL)).
		WithArgs(int64(99999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), 99999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
