package pagination

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultPageSize é o tamanho de página usado quando nenhum é informado
	DefaultPageSize = 20

	// MaxPageSize limita o número de itens por página
	MaxPageSize = 100
)

// ErrInvalidSort indica uma expressão de ordenação mal formada
var ErrInvalidSort = errors.New("ordenação inválida")

// Direction representa o sentido da ordenação
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// Order representa a ordenação por uma propriedade
type Order struct {
	Property  string
	Direction Direction
}

// Pageable descreve a página solicitada. Page começa em zero.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// NewPageable cria um Pageable aplicando os valores padrão
func NewPageable(page, size int, sort ...Order) Pageable {
	if page < 0 {
		page = 0
	}

	if size < 1 {
		size = DefaultPageSize
	} else if size > MaxPageSize {
		size = MaxPageSize
	}

	// Offset()+Size precisa caber em int
	if maxPage := math.MaxInt/size - 1; page > maxPage {
		page = maxPage
	}

	if len(sort) == 0 {
		sort = nil
	}

	return Pageable{
		Page: page,
		Size: size,
		Sort: sort,
	}
}

// Offset retorna o deslocamento do primeiro item da página
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// ParseOrder interpreta expressões no formato "propriedade[,asc|desc]"
func ParseOrder(expr string) (Order, error) {
	parts := strings.Split(expr, ",")
	property := strings.TrimSpace(parts[0])
	if property == "" || len(parts) > 2 {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidSort, expr)
	}

	order := Order{Property: property, Direction: ASC}
	if len(parts) == 2 {
		switch Direction(strings.ToUpper(strings.TrimSpace(parts[1]))) {
		case ASC:
		case DESC:
			order.Direction = DESC
		default:
			return Order{}, fmt.Errorf("%w: direção desconhecida em %q", ErrInvalidSort, expr)
		}
	}

	return order, nil
}

// ParseSort interpreta uma lista de expressões de ordenação
func ParseSort(exprs []string) ([]Order, error) {
	orders := make([]Order, 0, len(exprs))
	for _, expr := range exprs {
		if strings.TrimSpace(expr) == "" {
			continue
		}
		order, err := ParseOrder(expr)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Page é uma fatia de um resultado maior junto com o total de elementos
type Page[T any] struct {
	Content       []T
	TotalElements int64
	Number        int
	Size          int
}

// NewPage monta uma página a partir do conteúdo e do total
func NewPage[T any](content []T, pageable Pageable, total int64) *Page[T] {
	if content == nil {
		content = make([]T, 0)
	}

	return &Page[T]{
		Content:       content,
		TotalElements: total,
		Number:        pageable.Page,
		Size:          pageable.Size,
	}
}

// TotalPages calcula o número total de páginas
func (p *Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}

	totalPages := int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
	if totalPages == 0 {
		totalPages = 1
	}

	return totalPages
}

// HasNext indica se existe uma página seguinte
func (p *Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages()
}

// IsLast indica se esta é a última página
func (p *Page[T]) IsLast() bool {
	return !p.HasNext()
}
