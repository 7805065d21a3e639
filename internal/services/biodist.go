package services

import (
	"strconv"
	"strings"

	types "github.com/rdcatlas/rdcatlas-backend/internal/domain"
)

// GroupBiodistribution folds flat biodistribution rows into measurement
// series. Rows agreeing on every shared metadata field belong to one series;
// each row contributes one timepoint. Groups appear in first-seen row order
// and timepoints keep the row order within their group.
func GroupBiodistribution(rows []*types.AnimalInVivoBiodist) []BiodistGroup {
	groups := make([]BiodistGroup, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		key := biodistGroupKey(row)
		at, ok := index[key]
		if !ok {
			at = len(groups)
			index[key] = at
			groups = append(groups, BiodistGroup{
				BiodistType:        row.BiodistType,
				AnimalModel:        row.AnimalModel,
				DosageSymbols:      row.DosageSymbols,
				DosageValue:        row.DosageValue,
				DosageUnit:         row.DosageUnit,
				Metabolism:         row.Metabolism,
				Excretion:          row.Excretion,
				TumorRetentionTime: row.TumorRetentionTime,
				BiodistResultImage: row.BiodistResultImage,
				BiodistDescription: row.BiodistDescription,
				Timepoints:         []BiodistTimepoint{},
			})
		}
		groups[at].Timepoints = append(groups[at].Timepoints, BiodistTimepoint{
			DetectionTime: row.DetectionTime,
			TBR: TBR{
				TumorBlood:          row.TBRTumorBlood,
				TumorMuscle:         row.TBRTumorMuscle,
				TumorKidney:         row.TBRTumorKidney,
				TumorSalivaryGlands: row.TBRTumorSalivaryGlands,
				TumorLiver:          row.TBRTumorLiver,
				TumorLung:           row.TBRTumorLung,
				TumorHeart:          row.TBRTumorHeart,
			},
		})
	}
	return groups
}

func biodistGroupKey(row *types.AnimalInVivoBiodist) string {
	var b strings.Builder
	writeStrPart(&b, row.BiodistType)
	writeStrPart(&b, row.AnimalModel)
	writeStrPart(&b, row.DosageSymbols)
	writeFloatPart(&b, row.DosageValue)
	writeStrPart(&b, row.DosageUnit)
	writeStrPart(&b, row.Metabolism)
	writeStrPart(&b, row.Excretion)
	writeStrPart(&b, row.TumorRetentionTime)
	writeStrPart(&b, row.BiodistResultImage)
	writeStrPart(&b, row.BiodistDescription)
	return b.String()
}

// Each part is length-prefixed so "a"+"bc" and "ab"+"c" key differently, and
// nil never collides with "".
func writeStrPart(b *strings.Builder, v *string) {
	if v == nil {
		b.WriteString("~|")
		return
	}
	b.WriteString(strconv.Itoa(len(*v)))
	b.WriteByte(':')
	b.WriteString(*v)
	b.WriteByte('|')
}

func writeFloatPart(b *strings.Builder, v *float64) {
	if v == nil {
		b.WriteString("~|")
		return
	}
	b.WriteString(strconv.FormatFloat(*v, 'g', -1, 64))
	b.WriteByte('|')
}
