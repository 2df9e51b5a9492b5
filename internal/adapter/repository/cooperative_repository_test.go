package repository

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/hugohenrick/erp-cooperativas/internal/domain/cooperative"
	"github.com/hugohenrick/erp-cooperativas/pkg/pagination"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var joinColumns = []string{"id", "name", "area", "restaurant_id", "restaurant_name", "restaurant_description"}

func ptr[T any](v T) *T {
	return &v
}

func newMockRepository(t *testing.T) (pgxmock.PgxPoolIface, *PostgresCooperativeRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewPostgresCooperativeRepository(mock)
}

func TestFindOneWithRestaurants(t *testing.T) {
	mock, repo := newMockRepository(t)

	rows := pgxmock.NewRows(joinColumns).
		AddRow(int64(1), "Coop Norte", "Centro", ptr(int64(10)), ptr("Sabor"), ptr("Comida caseira")).
		AddRow(int64(1), "Coop Norte", "Centro", ptr(int64(11)), ptr("Tempero"), nil).
		AddRow(int64(1), "Coop Norte", "Centro", ptr(int64(12)), ptr("Raiz"), ptr("Vegana"))

	mock.ExpectQuery(regexp.QuoteMeta("c.id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	c, found, err := repo.FindOneWithRestaurants(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Coop Norte", c.Name)
	require.Len(t, c.Restaurants, 3)
	assert.Equal(t, "", c.Restaurants[1].Description)
	for _, r := range c.Restaurants {
		assert.Equal(t, int64(1), r.CooperativeID)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOneWithRestaurantsNotFound(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("c.id = $1")).
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows(joinColumns))

	c, found, err := repo.FindOneWithRestaurants(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, c)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllWithRestaurantsReturnsDistinctCooperatives(t *testing.T) {
	mock, repo := newMockRepository(t)

	rows := pgxmock.NewRows(joinColumns)
	for i := int64(1); i <= 5; i++ {
		rows.AddRow(int64(1), "Coop Norte", "Centro", ptr(i), ptr("Restaurante"), nil)
	}
	rows.AddRow(int64(2), "Coop Sul", "Praia", nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN restaurants r ON r.cooperative_id = c.id")).
		WillReturnRows(rows)

	cooperatives, err := repo.ListAllWithRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, cooperatives, 2)

	assert.Equal(t, int64(1), cooperatives[0].ID)
	assert.Len(t, cooperatives[0].Restaurants, 5)

	assert.Equal(t, int64(2), cooperatives[1].ID)
	assert.NotNil(t, cooperatives[1].Restaurants)
	assert.Empty(t, cooperatives[1].Restaurants)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPageWithRestaurantsCountsDistinctCooperatives(t *testing.T) {
	mock, repo := newMockRepository(t)

	rows := pgxmock.NewRows(joinColumns).
		AddRow(int64(1), "Coop Norte", "Centro", ptr(int64(10)), ptr("A"), nil).
		AddRow(int64(1), "Coop Norte", "Centro", ptr(int64(11)), ptr("B"), nil).
		AddRow(int64(1), "Coop Norte", "Centro", ptr(int64(12)), ptr("C"), nil).
		AddRow(int64(2), "Coop Sul", "Praia", ptr(int64(20)), ptr("D"), nil)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(2, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT c.id) FROM cooperatives c")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	page, err := repo.ListPageWithRestaurants(context.Background(), pagination.NewPageable(0, 2))
	require.NoError(t, err)

	assert.LessOrEqual(t, len(page.Content), 2)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages())
	assert.Len(t, page.Content[0].Restaurants, 3)
	assert.Len(t, page.Content[1].Restaurants, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPageWithRestaurantsSkipsCountOnIncompleteFirstPage(t *testing.T) {
	mock, repo := newMockRepository(t)

	rows := pgxmock.NewRows(joinColumns).
		AddRow(int64(1), "Coop Norte", "Centro", ptr(int64(10)), ptr("A"), nil).
		AddRow(int64(1), "Coop Norte", "Centro", ptr(int64(11)), ptr("B"), nil).
		AddRow(int64(2), "Coop Sul", "Praia", nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(rows)

	page, err := repo.ListPageWithRestaurants(context.Background(), pagination.NewPageable(0, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalElements)
	assert.Len(t, page.Content, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPageWithRestaurantsClampsHugePage(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1 OFFSET $2")).
		WithArgs(10, (math.MaxInt/10-1)*10).
		WillReturnRows(pgxmock.NewRows(joinColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT c.id) FROM cooperatives c")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	page, err := repo.ListPageWithRestaurants(context.Background(), pagination.Pageable{Page: math.MaxInt/10 + 1, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(5), page.TotalElements)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPageWithRestaurantsAppliesSort(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY name DESC, id ASC") + "(?s).*" + regexp.QuoteMeta("ORDER BY c.name DESC, c.id ASC, r.id ASC")).
		WithArgs(5, 10).
		WillReturnRows(pgxmock.NewRows(joinColumns))
	mock.ExpectQuery(regexp.QuoteMeta("COUNT(DISTINCT c.id)")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	pageable := pagination.NewPageable(2, 5, pagination.Order{Property: "name", Direction: pagination.DESC})
	page, err := repo.ListPageWithRestaurants(context.Background(), pageable)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(7), page.TotalElements)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPageRejectsUnknownSortProperty(t *testing.T) {
	mock, repo := newMockRepository(t)

	pageable := pagination.NewPageable(0, 10, pagination.Order{Property: "name; DROP TABLE cooperatives", Direction: pagination.ASC})

	_, err := repo.ListPageWithRestaurants(context.Background(), pageable)
	assert.ErrorIs(t, err, cooperative.ErrInvalidSortProperty)

	_, err = repo.ListPage(context.Background(), pageable)
	assert.ErrorIs(t, err, cooperative.ErrInvalidSortProperty)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageErrorsPropagate(t *testing.T) {
	mock, repo := newMockRepository(t)
	boom := errors.New("conexão perdida")

	mock.ExpectQuery("SELECT").WillReturnError(boom)
	_, err := repo.ListAllWithRestaurants(context.Background())
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery("SELECT").WithArgs(int64(1)).WillReturnError(boom)
	_, found, err := repo.FindOneWithRestaurants(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.False(t, found)

	mock.ExpectQuery("COUNT").WillReturnError(boom)
	_, err = repo.Count(context.Background())
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPageWithoutRestaurants(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, area")).
		WithArgs(2, 2).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "area"}).
			AddRow(int64(3), "Coop Leste", "Serra"))

	page, err := repo.ListPage(context.Background(), pagination.NewPageable(1, 2))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.False(t, page.Content[0].RestaurantsLoaded())
	// Última página incompleta: total = offset + conteúdo
	assert.Equal(t, int64(3), page.TotalElements)

	assert.NoError(t, mock.ExpectationsWereMet())
}
