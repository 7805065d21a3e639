package services

import (
	"testing"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
)

func str(s string) *string { return &s }
func num(f float64) *float64 { return &f }

func TestGroupBiodistributionMergesTimepoints(t *testing.T) {
	t.Parallel()

	rows := []*types.AnimalInVivoBiodist{
		{
			StudyRefID:    "AS-1",
			BiodistType:   str("planar"),
			AnimalModel:   str("BALB/c nude"),
			DosageValue:   num(3.7),
			DosageUnit:    str("MBq"),
			DetectionTime: str("1 h"),
			TBRTumorBlood: num(2.1),
		},
		{
			StudyRefID:    "AS-1",
			BiodistType:   str("planar"),
			AnimalModel:   str("BALB/c nude"),
			DosageValue:   num(3.7),
			DosageUnit:    str("MBq"),
			DetectionTime: str("4 h"),
			TBRTumorBlood: num(5.8),
		},
		{
			StudyRefID:    "AS-1",
			BiodistType:   str("planar"),
			AnimalModel:   str("BALB/c nude"),
			DosageValue:   num(7.4),
			DosageUnit:    str("MBq"),
			DetectionTime: str("1 h"),
			TBRTumorBlood: num(3.0),
		},
	}

	groups := GroupBiodistribution(rows)
	if len(groups) != 2 {
		t.Fatalf("unexpected group count: got=%d want=2", len(groups))
	}
	if len(groups[0].Timepoints) != 2 {
		t.Fatalf("first series should hold both matching rows, got %d", len(groups[0].Timepoints))
	}
	if *groups[0].Timepoints[0].DetectionTime != "1 h" || *groups[0].Timepoints[1].DetectionTime != "4 h" {
		t.Fatalf("timepoints out of row order: %+v", groups[0].Timepoints)
	}
	if *groups[0].Timepoints[1].TBR.TumorBlood != 5.8 {
		t.Fatalf("tbr values misassigned: %+v", groups[0].Timepoints[1].TBR)
	}
	if *groups[1].DosageValue != 7.4 || len(groups[1].Timepoints) != 1 {
		t.Fatalf("second series wrong: %+v", groups[1])
	}
}

func TestGroupBiodistributionNilVsEmptyMetadata(t *testing.T) {
	t.Parallel()

	rows := []*types.AnimalInVivoBiodist{
		{AnimalModel: nil, DetectionTime: str("1 h")},
		{AnimalModel: str(""), DetectionTime: str("2 h")},
		{AnimalModel: nil, DetectionTime: str("4 h")},
	}

	groups := GroupBiodistribution(rows)
	if len(groups) != 2 {
		t.Fatalf("nil and empty metadata must not merge: got %d groups", len(groups))
	}
	if len(groups[0].Timepoints) != 2 || len(groups[1].Timepoints) != 1 {
		t.Fatalf("rows assigned to wrong series: %+v", groups)
	}
}

func TestGroupBiodistributionPreservesFirstSeenOrder(t *testing.T) {
	t.Parallel()

	rows := []*types.AnimalInVivoBiodist{
		{BiodistType: str("b"), DetectionTime: str("1 h")},
		{BiodistType: str("a"), DetectionTime: str("1 h")},
		{BiodistType: str("b"), DetectionTime: str("2 h")},
	}

	groups := GroupBiodistribution(rows)
	if len(groups) != 2 {
		t.Fatalf("unexpected group count: got=%d want=2", len(groups))
	}
	if *groups[0].BiodistType != "b" || *groups[1].BiodistType != "a" {
		t.Fatalf("groups not in first-seen order: %v, %v", *groups[0].BiodistType, *groups[1].BiodistType)
	}
}

func TestGroupBiodistributionEmpty(t *testing.T) {
	t.Parallel()

	groups := GroupBiodistribution(nil)
	if groups == nil || len(groups) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", groups)
	}
}
