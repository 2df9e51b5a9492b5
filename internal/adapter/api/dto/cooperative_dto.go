package dto

import (
	"github.com/hugohenrick/erp-cooperativas/internal/domain/cooperative"
	"github.com/hugohenrick/erp-cooperativas/pkg/pagination"
)

// RestaurantResponse representa a estrutura de resposta para restaurante
type RestaurantResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CooperativeResponse representa a estrutura de resposta para cooperativa.
// Restaurants é null quando a relação não foi carregada.
type CooperativeResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Area        string               `json:"area"`
	Restaurants []RestaurantResponse `json:"restaurants"`
}

// CooperativeListResponse representa a resposta de listagem de cooperativas
type CooperativeListResponse struct {
	Cooperatives []CooperativeResponse `json:"cooperatives"`
	TotalCount   int64                 `json:"total_count"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
}

// ToCooperativeResponse converte um modelo de domínio em uma resposta DTO
func ToCooperativeResponse(c *cooperative.Cooperative) CooperativeResponse {
	response := CooperativeResponse{
		ID:   c.ID,
		Name: c.Name,
		Area: c.Area,
	}

	if c.RestaurantsLoaded() {
		response.Restaurants = make([]RestaurantResponse, len(c.Restaurants))
		for i, r := range c.Restaurants {
			response.Restaurants[i] = RestaurantResponse{
				ID:          r.ID,
				Name:        r.Name,
				Description: r.Description,
			}
		}
	}

	return response
}

// ToCooperativeResponses converte uma lista de cooperativas
func ToCooperativeResponses(cooperatives []*cooperative.Cooperative) []CooperativeResponse {
	responses := make([]CooperativeResponse, len(cooperatives))
	for i, c := range cooperatives {
		responses[i] = ToCooperativeResponse(c)
	}
	return responses
}

// ToCooperativeListResponse converte uma página de cooperativas para o formato de resposta.
// A página da API começa em 1.
func ToCooperativeListResponse(page *pagination.Page[*cooperative.Cooperative]) CooperativeListResponse {
	return CooperativeListResponse{
		Cooperatives: ToCooperativeResponses(page.Content),
		TotalCount:   page.TotalElements,
		Page:         page.Number + 1,
		PageSize:     page.Size,
		TotalPages:   page.TotalPages(),
	}
}
