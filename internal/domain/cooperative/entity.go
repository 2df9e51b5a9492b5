package cooperative

import (
	"errors"

	"github.com/hugohenrick/erp-cooperativas/internal/domain/restaurant"
)

var (
	ErrInvalidID           = errors.New("ID de cooperativa inválido")
	ErrInvalidSortProperty = errors.New("propriedade de ordenação não permitida")
)

// Cooperative representa uma cooperativa e seus restaurantes
type Cooperative struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Area string `json:"area"`

	// Restaurants é nil quando a relação não foi carregada e vazio quando
	// foi carregada e a cooperativa não possui restaurantes.
	Restaurants []*restaurant.Restaurant `json:"restaurants,omitempty"`
}

// RestaurantsLoaded indica se os restaurantes foram carregados junto com a cooperativa
func (c *Cooperative) RestaurantsLoaded() bool {
	return c.Restaurants != nil
}

// AddRestaurant vincula um restaurante à cooperativa, ignorando repetições
func (c *Cooperative) AddRestaurant(r *restaurant.Restaurant) {
	if c.Restaurants == nil {
		c.Restaurants = make([]*restaurant.Restaurant, 0)
	}

	for _, existing := range c.Restaurants {
		if existing.ID == r.ID {
			return
		}
	}

	r.CooperativeID = c.ID
	c.Restaurants = append(c.Restaurants, r)
}
