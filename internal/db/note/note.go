package note

import (
	"context"
	"errors"
	"fmt"
	e "quicknotes/internal/core/domain/errors"
	"quicknotes/internal/core/domain/note"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxNoteRepository struct {
	db DBTX
}

func NewPgxNoteRepository(db DBTX) *PgxNoteRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxNoteRepository{db: db}
}

const noteColumns = "id, title, content, created_at, updated_at"

func (r *PgxNoteRepository) Create(
	ctx context.Context,
	input note.CreateInput,
) (n note.Note, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO note (title, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $3)
		 RETURNING `+noteColumns,
		input.Title,
		input.Content,
		input.CreatedAt,
	)
	return decodeNote(row)
}

func (r *PgxNoteRepository) GetByID(ctx context.Context, id note.ID) (n note.Note, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+noteColumns+` FROM note WHERE id = $1`,
		int64(id),
	)
	n, err = decodeNote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return n, note.ErrNoteDoesNotExist
	}
	return n, err
}

func (r *PgxNoteRepository) Read(
	ctx context.Context,
	options note.ReadOptions,
) (notes []note.Note, err error) {
	query := `SELECT ` + noteColumns + ` FROM note` + orderByClause(options.OrderBy)
	args := make([]interface{}, 0, 2)
	if options.Limit.IsPresent {
		args = append(args, options.Limit.Value)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if options.Offset > 0 {
		args = append(args, options.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return notes, err
	}
	defer rows.Close()

	notes = make([]note.Note, 0)
	for rows.Next() {
		n, err := decodeNote(rows)
		if err != nil {
			return notes, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *PgxNoteRepository) Count(ctx context.Context, options note.ReadOptions) (uint, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM note`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return uint(count), nil
}

func (r *PgxNoteRepository) Update(
	ctx context.Context,
	input note.UpdateInput,
) (n note.Note, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE note
		 SET title = CASE WHEN $2 THEN $3 ELSE title END,
		     content = CASE WHEN $4 THEN $5 ELSE content END,
		     updated_at = $6
		 WHERE id = $1
		 RETURNING `+noteColumns,
		int64(input.ID),
		input.DoTitleUpdate,
		input.Title,
		input.DoContentUpdate,
		input.Content,
		input.UpdatedAt,
	)
	n, err = decodeNote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return n, note.ErrNoteDoesNotExist
	}
	return n, err
}

func (r *PgxNoteRepository) Delete(ctx context.Context, id note.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM note WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNoteDoesNotExist
	}
	return nil
}

func orderByClause(orderBy note.OrderBy) string {
	switch orderBy {
	case note.OrderByIDAsc:
		return " ORDER BY id ASC"
	case note.OrderByIDDesc:
		return " ORDER BY id DESC"
	case note.OrderByUpdatedAtAsc:
		return " ORDER BY updated_at ASC, id ASC"
	case note.OrderByUpdatedAtDesc:
		return " ORDER BY updated_at DESC, id DESC"
	default:
		return " ORDER BY id ASC"
	}
}

func decodeNote(row pgx.Row) (n note.Note, err error) {
	var id int64
	err = row.Scan(&id, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return n, err
	}
	n.ID = note.ID(id)
	return n, nil
}
