package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rdcatlas/rdcatlas-backend/internal/services"
)

type stubReferenceService struct {
	lists map[string]*services.ReferenceList
}

func (s *stubReferenceService) ListByDrug(_ context.Context, _ *gorm.DB, drugID string) (*services.ReferenceList, error) {
	if list, ok := s.lists[drugID]; ok {
		return list, nil
	}
	return &services.ReferenceList{DrugID: drugID, References: []services.ReferenceItem{}}, nil
}

func TestReferenceListUnknownDrugIs200(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewReferenceHandler(handlerLogger(t), &stubReferenceService{})
	r := gin.New()
	r.GET("/api/reference/:drug_id", h.ListByDrug)

	rec := doGet(t, r, "/api/reference/RDC-NONE")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d want=200", rec.Code)
	}

	var body struct {
		DrugID     string                   `json:"drug_id"`
		References []services.ReferenceItem `json:"references"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.DrugID != "RDC-NONE" || body.References == nil || len(body.References) != 0 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
