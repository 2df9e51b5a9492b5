package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-cooperativas/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-cooperativas/internal/domain/cooperative"
	"github.com/hugohenrick/erp-cooperativas/pkg/logger"
	"github.com/hugohenrick/erp-cooperativas/pkg/middleware"
	"github.com/hugohenrick/erp-cooperativas/pkg/pagination"
)

// TotalCountHeader informa o total de cooperativas na listagem paginada
const TotalCountHeader = "X-Total-Count"

// CooperativeController gerencia as requisições relacionadas a cooperativas
type CooperativeController struct {
	cooperativeRepository cooperative.Repository
	logger                logger.Logger
}

// NewCooperativeController cria uma nova instância de CooperativeController
func NewCooperativeController(cooperativeRepository cooperative.Repository, log logger.Logger) *CooperativeController {
	return &CooperativeController{
		cooperativeRepository: cooperativeRepository,
		logger:                log,
	}
}

// List lista as cooperativas com paginação
// @Summary Lista cooperativas
// @Description Lista as cooperativas paginadas, com os restaurantes carregados na mesma consulta
// @Tags cooperatives
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página (começa em 1)" default(1)
// @Param page_size query int false "Itens por página" default(10)
// @Param sort query []string false "Ordenação no formato propriedade,direção (id, name, area)" collectionFormat(multi)
// @Param eagerload query bool false "Carregar restaurantes" default(true)
// @Success 200 {object} dto.CooperativeListResponse
// @Header 200 {integer} X-Total-Count "Total de cooperativas"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cooperatives [get]
func (c *CooperativeController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	params := dto.GetPagination(page, pageSize)

	eagerLoad, err := strconv.ParseBool(ctx.DefaultQuery("eagerload", "true"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetro eagerload inválido", err.Error()))
		return
	}

	sort, err := pagination.ParseSort(ctx.QueryArray("sort"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Ordenação inválida", err.Error()))
		return
	}

	pageable := pagination.NewPageable(params.Page-1, params.PageSize, sort...)

	var result *pagination.Page[*cooperative.Cooperative]
	if eagerLoad {
		result, err = c.cooperativeRepository.ListPageWithRestaurants(ctx, pageable)
	} else {
		result, err = c.cooperativeRepository.ListPage(ctx, pageable)
	}
	if err != nil {
		if errors.Is(err, cooperative.ErrInvalidSortProperty) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Ordenação inválida", err.Error()))
			return
		}
		c.logger.Error("erro ao listar cooperativas", "error", err, "request_id", middleware.GetRequestID(ctx))
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar cooperativas", err.Error()))
		return
	}

	ctx.Header(TotalCountHeader, strconv.FormatInt(result.TotalElements, 10))
	ctx.JSON(http.StatusOK, dto.ToCooperativeListResponse(result))
}

// ListAll lista todas as cooperativas com seus restaurantes
// @Summary Lista todas as cooperativas
// @Description Lista todas as cooperativas sem paginação, com os restaurantes
// @Tags cooperatives
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CooperativeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cooperatives/all [get]
func (c *CooperativeController) ListAll(ctx *gin.Context) {
	cooperatives, err := c.cooperativeRepository.ListAllWithRestaurants(ctx)
	if err != nil {
		c.logger.Error("erro ao listar todas as cooperativas", "error", err, "request_id", middleware.GetRequestID(ctx))
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar cooperativas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCooperativeResponses(cooperatives))
}

// GetByID busca uma cooperativa pelo ID
// @Summary Busca uma cooperativa pelo ID
// @Description Busca uma cooperativa pelo seu ID, com os restaurantes
// @Tags cooperatives
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da cooperativa"
// @Success 200 {object} dto.CooperativeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /cooperatives/{id} [get]
func (c *CooperativeController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, cooperative.ErrInvalidID.Error(), ctx.Param("id")))
		return
	}

	coop, found, err := c.cooperativeRepository.FindOneWithRestaurants(ctx, id)
	if err != nil {
		c.logger.Error("erro ao buscar cooperativa", "error", err, "id", id, "request_id", middleware.GetRequestID(ctx))
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cooperativa", err.Error()))
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cooperativa não encontrada", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCooperativeResponse(coop))
}
