package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"cheese-api/internal/core/domain"
	ports "cheese-api/internal/core/ports/output"
)

const cheeseListingColumns = `id, title, description, price, created_at, is_published`

// querier is the subset of *pgxpool.Pool the repository uses.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type cheeseListingRepo struct {
	db querier
}

func NewCheeseListingRepository(pool *pgxpool.Pool) ports.CheeseListingRepository {
	return &cheeseListingRepo{db: pool}
}

func (r *cheeseListingRepo) Create(ctx context.Context, listing *domain.CheeseListing) error {
	if listing.Persisted() {
		return fmt.Errorf("create cheese listing: %w", domain.ErrIdentifierAssigned)
	}

	query := `
		INSERT INTO cheese_listing (title, description, price, created_at, is_published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	price, _ := listing.Price()
	var id int64
	err := r.db.QueryRow(ctx, query,
		listing.Title(), listing.Description(), price,
		listing.CreatedAt(), listing.IsPublished(),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("create cheese listing: %w", err)
	}

	return listing.AssignID(id)
}

func (r *cheeseListingRepo) GetByID(ctx context.Context, id int64) (*domain.CheeseListing, error) {
	query := `SELECT ` + cheeseListingColumns + ` FROM cheese_listing WHERE id = $1`

	listing, err := scanCheeseListing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCheeseListingNotFound
		}
		return nil, fmt.Errorf("get cheese listing by id: %w", err)
	}
	return listing, nil
}

// Update writes every mutable column. Title is not among them.
func (r *cheeseListingRepo) Update(ctx context.Context, listing *domain.CheeseListing) error {
	if !listing.Persisted() {
		return fmt.Errorf("update cheese listing: %w", domain.ErrNotPersisted)
	}

	query := `
		UPDATE cheese_listing
		SET description=$1, price=$2, created_at=$3, is_published=$4
		WHERE id=$5
	`
	price, _ := listing.Price()
	result, err := r.db.Exec(ctx, query,
		listing.Description(), price, listing.CreatedAt(), listing.IsPublished(), listing.ID(),
	)
	if err != nil {
		return fmt.Errorf("update cheese listing: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCheeseListingNotFound
	}
	return nil
}

func (r *cheeseListingRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.CheeseListing, int, error) {
	whereClause, args := buildListConditions(filter)

	countQuery := "SELECT COUNT(*) FROM cheese_listing" + whereClause
	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cheese listings: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM cheese_listing%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		cheeseListingColumns, whereClause, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list cheese listings: %w", err)
	}
	defer rows.Close()

	listings := []*domain.CheeseListing{}
	for rows.Next() {
		l, err := scanCheeseListing(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan cheese listing row: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate cheese listing rows: %w", err)
	}

	return listings, total, nil
}

// buildListConditions renders the WHERE clause (with a leading space, or
// empty) and its positional arguments.
func buildListConditions(filter ports.ListFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	add := func(expr string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if filter.Title != "" {
		add(`title LIKE $%d ESCAPE '\'`, "%"+escapeLike(filter.Title)+"%")
	}
	if filter.Price.Gt != nil {
		add("price > $%d", *filter.Price.Gt)
	}
	if filter.Price.Gte != nil {
		add("price >= $%d", *filter.Price.Gte)
	}
	if filter.Price.Lt != nil {
		add("price < $%d", *filter.Price.Lt)
	}
	if filter.Price.Lte != nil {
		add("price <= $%d", *filter.Price.Lte)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func scanCheeseListing(row pgx.Row) (*domain.CheeseListing, error) {
	var (
		id          int64
		title       string
		description string
		price       int
		createdAt   time.Time
		isPublished bool
	)
	if err := row.Scan(&id, &title, &description, &price, &createdAt, &isPublished); err != nil {
		return nil, err
	}
	return domain.RestoreCheeseListing(id, title, description, price, createdAt, isPublished), nil
}
