package postgres

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	ports "cheese-api/internal/core/ports/output"
)

func intPtr(v int) *int { return &v }

func TestBuildListConditions(t *testing.T) {
	tests := []struct {
		name      string
		filter    ports.ListFilter
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "no filter",
			filter:    ports.ListFilter{Limit: 10},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "title only",
			filter:    ports.ListFilter{Title: "brie"},
			wantWhere: ` WHERE title LIKE $1 ESCAPE '\'`,
			wantArgs:  []interface{}{"%brie%"},
		},
		{
			name: "title and price range",
			filter: ports.ListFilter{
				Title: "50%_off",
				Price: ports.PriceRange{Gte: intPtr(100), Lt: intPtr(500)},
			},
			wantWhere: ` WHERE title LIKE $1 ESCAPE '\' AND price >= $2 AND price < $3`,
			wantArgs:  []interface{}{`%50\%\_off%`, 100, 500},
		},
		{
			name:      "every price bound",
			filter:    ports.ListFilter{Price: ports.PriceRange{Gt: intPtr(1), Gte: intPtr(2), Lt: intPtr(9), Lte: intPtr(8)}},
			wantWhere: " WHERE price > $1 AND price >= $2 AND price < $3 AND price <= $4",
			wantArgs:  []interface{}{1, 2, 9, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildListConditions(tt.filter)
			if where != tt.wantWhere {
				t.Fatalf("where = %q, want %q", where, tt.wantWhere)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Fatalf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`a\b%c_d`); got != `a\\b\%c\_d` {
		t.Fatalf("escapeLike = %q", got)
	}
}

func TestMigrationFiles(t *testing.T) {
	files, err := migrationFiles()
	if err != nil {
		t.Fatalf("migrationFiles err=%v", err)
	}
	if diff := cmp.Diff([]string{"001_cheese_listing.sql"}, files); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
