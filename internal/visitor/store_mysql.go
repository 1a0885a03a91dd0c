package visitor

import (
	"context"
	"database/sql"
	"errors"

	mysql "github.com/go-sql-driver/mysql"

	"epass-backend/internal/platform/db"
)

const mysqlDuplicateEntry = 1062

type MySQLStore struct{ conn *sql.DB }

func NewMySQLStore(conn *sql.DB) *MySQLStore { return &MySQLStore{conn: conn} }

func (s *MySQLStore) Insert(ctx context.Context, r *VisitorRecord) error {
	const q = `
	INSERT INTO visitors
	(visitor_id, visitor_name, no_of_persons, purpose, contact_number, visit_date, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	err := db.RunInTx(ctx, s.conn, nil, func(ctx context.Context, tx db.DBTX) error {
		res, err := tx.ExecContext(ctx, q,
			r.ID, r.VisitorName, r.NoOfPersons, r.Purpose, r.ContactNumber, r.VisitDate, r.CreatedAt.UTC(),
		)
		if err != nil {
			return err
		}
		if aff, _ := res.RowsAffected(); aff != 1 {
			return errors.New("visitors insert affected no rows")
		}
		return nil
	})
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

func (s *MySQLStore) FindByID(ctx context.Context, id string) (*VisitorRecord, error) {
	const q = `
	SELECT visitor_id, visitor_name, no_of_persons, purpose, contact_number, visit_date, created_at
	FROM visitors WHERE visitor_id = ?`

	var r VisitorRecord
	err := s.conn.QueryRowContext(ctx, q, id).Scan(
		&r.ID, &r.VisitorName, &r.NoOfPersons, &r.Purpose, &r.ContactNumber, &r.VisitDate, &r.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	return &r, nil
}

func (s *MySQLStore) Close(context.Context) error { return s.conn.Close() }
