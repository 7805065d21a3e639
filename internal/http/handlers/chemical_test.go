package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	errs "github.com/rdcatlas/rdcatlas-backend/internal/pkg/errors"
	"github.com/rdcatlas/rdcatlas-backend/internal/services"
)

type stubChemicalService struct {
	detailCategory  string
	detailID        string
	includeActivity *bool
	rdcListCalls    int
	searchCategory  string
	searchQ         string
	searchLimit     int
	failWith        error
}

func (s *stubChemicalService) Detail(_ context.Context, _ *gorm.DB, entityCategory, entityID string, includeActivity bool) (*services.ChemicalDetail, error) {
	s.detailCategory = entityCategory
	s.detailID = entityID
	s.includeActivity = &includeActivity
	if s.failWith != nil {
		return nil, s.failWith
	}
	return &services.ChemicalDetail{
		Basic: services.ChemicalBasic{EntityCategory: entityCategory, EntityID: entityID},
	}, nil
}

func (s *stubChemicalService) RdcList(_ context.Context, _ *gorm.DB, entityCategory, entityID string) (*services.ChemicalRdcList, error) {
	s.rdcListCalls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	return &services.ChemicalRdcList{
		Basic: services.ChemicalBasic{EntityCategory: entityCategory, EntityID: entityID},
		Rdcs:  []services.ChemicalRdcRef{},
	}, nil
}

func (s *stubChemicalService) Search(_ context.Context, _ *gorm.DB, entityCategory, q string, limit int) ([]services.ChemicalSearchItem, error) {
	s.searchCategory = entityCategory
	s.searchQ = q
	s.searchLimit = limit
	return []services.ChemicalSearchItem{}, s.failWith
}

func newChemicalRouter(tb testing.TB, svc services.ChemicalService) *gin.Engine {
	tb.Helper()
	gin.SetMode(gin.TestMode)
	h := NewChemicalHandler(handlerLogger(tb), svc)
	r := gin.New()
	api := r.Group("/api")
	api.GET("/chemical/search", h.Search)
	api.GET("/chemical/:entity_category/:entity_id", h.Detail)
	api.GET("/chemical/:entity_category/:entity_id/rdc-list", h.RdcList)
	return r
}

func TestChemicalDetailRejectsUnknownCategory(t *testing.T) {
	svc := &stubChemicalService{}
	r := newChemicalRouter(t, svc)

	rec := doGet(t, r, "/api/chemical/isotope/RN-177")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got=%d want=422", rec.Code)
	}
	env := decodeError(t, rec)
	if len(env.Error.Details) != 1 || env.Error.Details[0] != "entity_category" {
		t.Fatalf("details: %v", env.Error.Details)
	}
	if svc.includeActivity != nil {
		t.Fatal("service must not be called for invalid category")
	}
}

func TestChemicalDetailIncludeActivityDefaultsTrue(t *testing.T) {
	svc := &stubChemicalService{}
	r := newChemicalRouter(t, svc)

	rec := doGet(t, r, "/api/chemical/radionuclide/RN-177")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d want=200", rec.Code)
	}
	if svc.includeActivity == nil || !*svc.includeActivity {
		t.Fatalf("include_activity must default to true: %+v", svc.includeActivity)
	}
	if svc.detailCategory != "radionuclide" || svc.detailID != "RN-177" {
		t.Fatalf("wrong key: %s/%s", svc.detailCategory, svc.detailID)
	}
}

func TestChemicalDetailIncludeActivityOff(t *testing.T) {
	svc := &stubChemicalService{}
	r := newChemicalRouter(t, svc)

	rec := doGet(t, r, "/api/chemical/ligand/LIG-1?include_activity=false")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d want=200", rec.Code)
	}
	if svc.includeActivity == nil || *svc.includeActivity {
		t.Fatalf("include_activity=false not honored: %+v", svc.includeActivity)
	}
}

func TestChemicalDetailNotFound(t *testing.T) {
	svc := &stubChemicalService{failWith: fmt.Errorf("chemical: %w", errs.ErrNotFound)}
	r := newChemicalRouter(t, svc)

	rec := doGet(t, r, "/api/chemical/chelator/CHE-404")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got=%d want=404", rec.Code)
	}
	env := decodeError(t, rec)
	if env.Error.Code != "NOT_FOUND" {
		t.Fatalf("code: %q", env.Error.Code)
	}
}

func TestChemicalRdcListValidatesCategory(t *testing.T) {
	svc := &stubChemicalService{}
	r := newChemicalRouter(t, svc)

	rec := doGet(t, r, "/api/chemical/isotope/RN-177/rdc-list")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status: got=%d want=422", rec.Code)
	}
	if svc.rdcListCalls != 0 {
		t.Fatal("service must not be called for invalid category")
	}

	rec = doGet(t, r, "/api/chemical/radionuclide/RN-177/rdc-list")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d want=200 (%s)", rec.Code, rec.Body.String())
	}
	if svc.rdcListCalls != 1 {
		t.Fatalf("rdc-list calls: %d", svc.rdcListCalls)
	}
}

func TestChemicalSearchValidation(t *testing.T) {
	svc := &stubChemicalService{}
	r := newChemicalRouter(t, svc)

	rec := doGet(t, r, "/api/chemical/search?q=dota")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing category: got=%d want=422", rec.Code)
	}
	env := decodeError(t, rec)
	if len(env.Error.Details) != 1 || env.Error.Details[0] != "entity_category" {
		t.Fatalf("details: %v", env.Error.Details)
	}

	rec = doGet(t, r, "/api/chemical/search?entity_category=chelator")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing q: got=%d want=422", rec.Code)
	}
	env = decodeError(t, rec)
	if len(env.Error.Details) != 1 || env.Error.Details[0] != "q" {
		t.Fatalf("details: %v", env.Error.Details)
	}

	rec = doGet(t, r, "/api/chemical/search?entity_category=chelator&q=dota&limit=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d want=200", rec.Code)
	}
	if svc.searchLimit != 1 {
		t.Fatalf("limit lower clamp: %d", svc.searchLimit)
	}
	if svc.searchCategory != "chelator" || svc.searchQ != "dota" {
		t.Fatalf("search args: %s %s", svc.searchCategory, svc.searchQ)
	}
}
