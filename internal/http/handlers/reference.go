package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rdcatlas/rdcatlas-backend/internal/http/response"
	"github.com/rdcatlas/rdcatlas-backend/internal/platform/logger"
	"github.com/rdcatlas/rdcatlas-backend/internal/services"
)

type ReferenceHandler struct {
	log              *logger.Logger
	referenceService services.ReferenceService
}

func NewReferenceHandler(log *logger.Logger, referenceService services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		log:              log.With("handler", "ReferenceHandler"),
		referenceService: referenceService,
	}
}

func (h *ReferenceHandler) ListByDrug(c *gin.Context) {
	drugID := c.Param("drug_id")

	list, err := h.referenceService.ListByDrug(c.Request.Context(), nil, drugID)
	if err != nil {
		h.log.Error("ListByDrug failed", "drug_id", drugID, "error", err)
		response.RespondServerError(c, err)
		return
	}
	response.RespondOK(c, list)
}
