package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rdcatlas/rdcatlas-backend/internal/data/repos/drugs"
	"github.com/rdcatlas/rdcatlas-backend/internal/http/response"
	errs "github.com/rdcatlas/rdcatlas-backend/internal/pkg/errors"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
	"github.com/rdcatlas/rdcatlas-backend/internal/services"
	"github.com/rdcatlas/rdcatlas-backend/internal/utils"
)

var listSortValues = map[string]bool{
	"drug_name:asc":   true,
	"drug_name:desc":  true,
	"created_at:asc":  true,
	"created_at:desc": true,
}

var expandSections = map[string]bool{
	"human_activity": true,
	"animal_in_vivo": true,
	"in_vitro":       true,
	"chemicals":      true,
}

type RdcHandler struct {
	log         *logger.Logger
	drugService services.DrugService
}

func NewRdcHandler(log *logger.Logger, drugService services.DrugService) *RdcHandler {
	return &RdcHandler{
		log:         log.With("handler", "RdcHandler"),
		drugService: drugService,
	}
}

func (h *RdcHandler) List(c *gin.Context) {
	sort := strings.TrimSpace(c.Query("sort"))
	if sort != "" && !listSortValues[sort] {
		response.RespondValidationError(c, "invalid sort value", "sort")
		return
	}

	params := drugs.ListParams{
		Page:     utils.ParseIntParam(c.Query("page"), 1, utils.IntBounds{Min: 1}),
		PageSize: utils.ParseIntParam(c.Query("page_size"), 20, utils.IntBounds{Min: 1, Max: 100}),
		Q:        strings.TrimSpace(c.Query("q")),
		Status:   strings.TrimSpace(c.Query("status")),
		Sort:     sort,
	}

	page, err := h.drugService.List(c.Request.Context(), nil, params)
	if err != nil {
		h.log.Error("List failed", "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, page)
}

func (h *RdcHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.RespondValidationError(c, "q is required", "q")
		return
	}
	limit := utils.ParseIntParam(c.Query("limit"), 20, utils.IntBounds{Min: 1, Max: 100})

	items, err := h.drugService.Search(c.Request.Context(), nil, q, limit)
	if err != nil {
		h.log.Error("Search failed", "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}

func (h *RdcHandler) ListByStatus(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	if status == "" {
		response.RespondValidationError(c, "status is required", "status")
		return
	}
	limit := utils.ParseIntParam(c.Query("limit"), 50, utils.IntBounds{Min: 1, Max: 200})

	items, err := h.drugService.ListByStatus(c.Request.Context(), nil, status, limit)
	if err != nil {
		h.log.Error("ListByStatus failed", "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}

func (h *RdcHandler) FindByName(c *gin.Context) {
	drugName := strings.TrimSpace(c.Query("drug_name"))
	if drugName == "" {
		response.RespondValidationError(c, "drug_name is required", "drug_name")
		return
	}

	basic, err := h.drugService.FindByName(c.Request.Context(), nil, drugName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.RespondNotFound(c, "drug not found")
			return
		}
		h.log.Error("FindByName failed", "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, basic)
}

func (h *RdcHandler) Init(c *gin.Context) {
	dict, err := h.drugService.StatusDict(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("Init failed", "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, dict)
}

func (h *RdcHandler) Detail(c *gin.Context) {
	drugID := c.Param("drug_id")

	// Validation happens before any query so a bad expand never costs a
	// round trip.
	_, requested := c.GetQuery("expand")
	sections := utils.ParseListParam(c.Query("expand"))
	for section := range sections {
		if !expandSections[section] {
			response.RespondValidationError(c, "invalid expand section", "expand")
			return
		}
	}

	opts := services.ExpandOptions{
		Requested:     requested,
		HumanActivity: sections["human_activity"],
		AnimalInVivo:  sections["animal_in_vivo"],
		InVitro:       sections["in_vitro"],
		AllEntities:   utils.ParseBoolParam(c.Query("all_entities"), false),
	}

	detail, err := h.drugService.Detail(c.Request.Context(), nil, drugID, opts)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.RespondNotFound(c, "drug not found")
			return
		}
		h.log.Error("Detail failed", "drug_id", drugID, "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, detail)
}
