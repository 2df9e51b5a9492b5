package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageableDefaults(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{"valores válidos", 2, 15, 2, 15},
		{"página negativa", -1, 10, 0, 10},
		{"tamanho zero", 0, 0, 0, DefaultPageSize},
		{"tamanho acima do limite", 0, 500, 0, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageable(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.Size)
		})
	}
}

func TestPageableOffset(t *testing.T) {
	assert.Equal(t, 0, NewPageable(0, 10).Offset())
	assert.Equal(t, 30, NewPageable(3, 10).Offset())
}

func TestPageableOffsetDoesNotOverflow(t *testing.T) {
	for _, size := range []int{1, 10, MaxPageSize} {
		p := NewPageable(math.MaxInt, size)
		assert.Positive(t, p.Offset(), size)
		assert.Positive(t, p.Offset()+p.Size, size)
	}

	p := NewPageable(math.MaxInt64/10+1, 10)
	assert.Equal(t, (math.MaxInt/10-1)*10, p.Offset())
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("name")
	require.NoError(t, err)
	assert.Equal(t, Order{Property: "name", Direction: ASC}, o)

	o, err = ParseOrder("area, Desc")
	require.NoError(t, err)
	assert.Equal(t, Order{Property: "area", Direction: DESC}, o)

	for _, expr := range []string{"", ",asc", "name,up", "name,asc,extra"} {
		_, err := ParseOrder(expr)
		assert.ErrorIs(t, err, ErrInvalidSort, expr)
	}
}

func TestParseSortSkipsBlank(t *testing.T) {
	orders, err := ParseSort([]string{"name,desc", " ", "id"})
	require.NoError(t, err)
	assert.Equal(t, []Order{{"name", DESC}, {"id", ASC}}, orders)
}

func TestPageMetadata(t *testing.T) {
	p := NewPage([]int{1, 2}, NewPageable(0, 2), 5)
	assert.Equal(t, 3, p.TotalPages())
	assert.True(t, p.HasNext())

	last := NewPage([]int{5}, NewPageable(2, 2), 5)
	assert.True(t, last.IsLast())

	empty := NewPage[int](nil, NewPageable(0, 10), 0)
	assert.NotNil(t, empty.Content)
	assert.Equal(t, 1, empty.TotalPages())
	assert.False(t, empty.HasNext())
}
