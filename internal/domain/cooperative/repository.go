package cooperative

import (
	"context"

	"github.com/hugohenrick/erp-cooperativas/pkg/pagination"
)

// Repository define as operações de leitura para cooperativas
type Repository interface {
	// ListPageWithRestaurants retorna uma página de cooperativas distintas com
	// seus restaurantes carregados na mesma consulta. O total conta
	// cooperativas distintas, não as linhas do join.
	ListPageWithRestaurants(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[*Cooperative], error)

	// ListAllWithRestaurants retorna todas as cooperativas distintas com seus restaurantes
	ListAllWithRestaurants(ctx context.Context) ([]*Cooperative, error)

	// FindOneWithRestaurants busca uma cooperativa pelo ID com seus restaurantes.
	// Retorna false quando a cooperativa não existe.
	FindOneWithRestaurants(ctx context.Context, id int64) (*Cooperative, bool, error)

	// ListPage retorna uma página de cooperativas sem carregar os restaurantes
	ListPage(ctx context.Context, pageable pagination.Pageable) (*pagination.Page[*Cooperative], error)

	// Count retorna o número total de cooperativas
	Count(ctx context.Context) (int64, error)
}
