package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-cooperativas/internal/domain/cooperative"
	"github.com/hugohenrick/erp-cooperativas/internal/domain/restaurant"
	"github.com/hugohenrick/erp-cooperativas/pkg/pagination"
	"github.com/jackc/pgx/v5"
)

// Querier é o subconjunto do pool de conexões usado pelos repositórios
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// cooperativeSortColumns mapeia as propriedades ordenáveis para colunas
var cooperativeSortColumns = map[string]string{
	"id":   "id",
	"name": "name",
	"area": "area",
}

// PostgresCooperativeRepository implementa a interface cooperative.Repository usando PostgreSQL
type PostgresCooperativeRepository struct {
	db Querier
}

// NewPostgresCooperativeRepository cria uma nova instância de PostgresCooperativeRepository
func NewPostgresCooperativeRepository(db Querier) *PostgresCooperativeRepository {
	return &PostgresCooperativeRepository{
		db: db,
	}
}

// ListPageWithRestaurants implementa cooperative.Repository.ListPageWithRestaurants
func (r *PostgresCooperativeRepository) ListPageWithRestaurants(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[*cooperative.Cooperative], error) {
	pageable = pagination.NewPageable(pageable.Page, pageable.Size, pageable.Sort...)

	innerOrder, err := cooperativeOrderBy(pageable.Sort, "")
	if err != nil {
		return nil, err
	}
	outerOrder, err := cooperativeOrderBy(pageable.Sort, "c.")
	if err != nil {
		return nil, err
	}

	// A paginação é aplicada sobre as cooperativas antes do join, assim o
	// LIMIT não é consumido pelas linhas repetidas de restaurantes.
	query := fmt.Sprintf(`
		SELECT
			c.id, c.name, c.area,
			r.id, r.name, r.description
		FROM (
			SELECT id, name, area
			FROM cooperatives
			ORDER BY %s
			LIMIT $1 OFFSET $2
		) c
		LEFT JOIN restaurants r ON r.cooperative_id = c.id
		ORDER BY %s, r.id ASC
	`, innerOrder, outerOrder)

	rows, err := r.db.Query(ctx, query, pageable.Size, pageable.Offset())
	if err != nil {
		return nil, fmt.Errorf("falha ao listar cooperativas: %w", err)
	}
	defer rows.Close()

	cooperatives, err := scanCooperativesWithRestaurants(rows)
	if err != nil {
		return nil, err
	}

	total, err := r.totalForPage(ctx, pageable, len(cooperatives))
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(cooperatives, pageable, total), nil
}

// ListAllWithRestaurants implementa cooperative.Repository.ListAllWithRestaurants
func (r *PostgresCooperativeRepository) ListAllWithRestaurants(ctx context.Context) ([]*cooperative.Cooperative, error) {
	query := `
		SELECT
			c.id, c.name, c.area,
			r.id, r.name, r.description
		FROM
			cooperatives c
		LEFT JOIN restaurants r ON r.cooperative_id = c.id
		ORDER BY
			c.id ASC, r.id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar cooperativas: %w", err)
	}
	defer rows.Close()

	return scanCooperativesWithRestaurants(rows)
}

// FindOneWithRestaurants implementa cooperative.Repository.FindOneWithRestaurants
func (r *PostgresCooperativeRepository) FindOneWithRestaurants(ctx context.Context, id int64) (*cooperative.Cooperative, bool, error) {
	query := `
		SELECT
			c.id, c.name, c.area,
			r.id, r.name, r.description
		FROM
			cooperatives c
		LEFT JOIN restaurants r ON r.cooperative_id = c.id
		WHERE
			c.id = $1
		ORDER BY
			r.id ASC
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, false, fmt.Errorf("falha ao buscar cooperativa: %w", err)
	}
	defer rows.Close()

	cooperatives, err := scanCooperativesWithRestaurants(rows)
	if err != nil {
		return nil, false, err
	}

	if len(cooperatives) == 0 {
		return nil, false, nil
	}

	return cooperatives[0], true, nil
}

// ListPage implementa cooperative.Repository.ListPage
func (r *PostgresCooperativeRepository) ListPage(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[*cooperative.Cooperative], error) {
	pageable = pagination.NewPageable(pageable.Page, pageable.Size, pageable.Sort...)

	order, err := cooperativeOrderBy(pageable.Sort, "")
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, area
		FROM cooperatives
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, order)

	rows, err := r.db.Query(ctx, query, pageable.Size, pageable.Offset())
	if err != nil {
		return nil, fmt.Errorf("falha ao listar cooperativas: %w", err)
	}
	defer rows.Close()

	cooperatives := make([]*cooperative.Cooperative, 0)
	for rows.Next() {
		c := &cooperative.Cooperative{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Area); err != nil {
			return nil, fmt.Errorf("falha ao ler cooperativa: %w", err)
		}
		cooperatives = append(cooperatives, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	total, err := r.totalForPage(ctx, pageable, len(cooperatives))
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(cooperatives, pageable, total), nil
}

// Count implementa cooperative.Repository.Count
func (r *PostgresCooperativeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(DISTINCT c.id) FROM cooperatives c").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar cooperativas: %w", err)
	}

	return count, nil
}

// totalForPage evita a consulta de contagem quando o total já pode ser
// deduzido de uma página incompleta.
func (r *PostgresCooperativeRepository) totalForPage(ctx context.Context, pageable pagination.Pageable, contentSize int) (int64, error) {
	if contentSize < pageable.Size && (pageable.Offset() == 0 || contentSize > 0) {
		return int64(pageable.Offset() + contentSize), nil
	}

	return r.Count(ctx)
}

// cooperativeOrderBy monta a cláusula ORDER BY a partir das propriedades
// permitidas. O id é sempre usado como desempate.
func cooperativeOrderBy(sort []pagination.Order, alias string) (string, error) {
	clauses := make([]string, 0, len(sort)+1)
	hasID := false

	for _, o := range sort {
		column, ok := cooperativeSortColumns[o.Property]
		if !ok {
			return "", fmt.Errorf("%w: %s", cooperative.ErrInvalidSortProperty, o.Property)
		}
		if column == "id" {
			hasID = true
		}

		direction := "ASC"
		if o.Direction == pagination.DESC {
			direction = "DESC"
		}
		clauses = append(clauses, alias+column+" "+direction)
	}

	if !hasID {
		clauses = append(clauses, alias+"id ASC")
	}

	return strings.Join(clauses, ", "), nil
}

// scanCooperativesWithRestaurants agrupa as linhas do join em cooperativas
// distintas, preservando a ordem em que aparecem.
func scanCooperativesWithRestaurants(rows pgx.Rows) ([]*cooperative.Cooperative, error) {
	cooperatives := make([]*cooperative.Cooperative, 0)
	byID := make(map[int64]*cooperative.Cooperative)

	for rows.Next() {
		var (
			c                     cooperative.Cooperative
			restaurantID          *int64
			restaurantName        *string
			restaurantDescription *string
		)

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Area,
			&restaurantID,
			&restaurantName,
			&restaurantDescription,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler cooperativa: %w", err)
		}

		current, exists := byID[c.ID]
		if !exists {
			c.Restaurants = make([]*restaurant.Restaurant, 0)
			current = &c
			byID[c.ID] = current
			cooperatives = append(cooperatives, current)
		}

		// Cooperativa sem restaurantes: o LEFT JOIN devolve colunas nulas
		if restaurantID == nil {
			continue
		}

		current.AddRestaurant(&restaurant.Restaurant{
			ID:          *restaurantID,
			Name:        valueOrEmpty(restaurantName),
			Description: valueOrEmpty(restaurantDescription),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return cooperatives, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
