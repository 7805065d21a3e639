package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
	"github.com/rdcatlas/rdcatlas-backend/internal/http/response"
	errs "github.com/rdcatlas/rdcatlas-backend/internal/pkg/errors"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
	"github.com/rdcatlas/rdcatlas-backend/internal/services"
	"github.com/rdcatlas/rdcatlas-backend/internal/utils"
)

type ChemicalHandler struct {
	log             *logger.Logger
	chemicalService services.ChemicalService
}

func NewChemicalHandler(log *logger.Logger, chemicalService services.ChemicalService) *ChemicalHandler {
	return &ChemicalHandler{
		log:             log.With("handler", "ChemicalHandler"),
		chemicalService: chemicalService,
	}
}

func (h *ChemicalHandler) Detail(c *gin.Context) {
	entityCategory := strings.ToLower(strings.TrimSpace(c.Param("entity_category")))
	if !types.ValidEntityCategory(entityCategory) {
		response.RespondValidationError(c, "invalid entity category", "entity_category")
		return
	}
	entityID := c.Param("entity_id")
	includeActivity := utils.ParseBoolParam(c.Query("include_activity"), true)

	detail, err := h.chemicalService.Detail(c.Request.Context(), nil, entityCategory, entityID, includeActivity)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.RespondNotFound(c, "chemical not found")
			return
		}
		h.log.Error("Detail failed", "entity_category", entityCategory, "entity_id", entityID, "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, detail)
}

func (h *ChemicalHandler) RdcList(c *gin.Context) {
	entityCategory := strings.ToLower(strings.TrimSpace(c.Param("entity_category")))
	if !types.ValidEntityCategory(entityCategory) {
		response.RespondValidationError(c, "invalid entity category", "entity_category")
		return
	}
	entityID := c.Param("entity_id")

	list, err := h.chemicalService.RdcList(c.Request.Context(), nil, entityCategory, entityID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.RespondNotFound(c, "chemical not found")
			return
		}
		h.log.Error("RdcList failed", "entity_category", entityCategory, "entity_id", entityID, "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, list)
}

func (h *ChemicalHandler) Search(c *gin.Context) {
	entityCategory := strings.ToLower(strings.TrimSpace(c.Query("entity_category")))
	if !types.ValidEntityCategory(entityCategory) {
		response.RespondValidationError(c, "invalid entity category", "entity_category")
		return
	}
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.RespondValidationError(c, "q is required", "q")
		return
	}
	limit := utils.ParseIntParam(c.Query("limit"), 20, utils.IntBounds{Min: 1, Max: 100})

	items, err := h.chemicalService.Search(c.Request.Context(), nil, entityCategory, q, limit)
	if err != nil {
		h.log.Error("Search failed", "entity_category", entityCategory, "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}
