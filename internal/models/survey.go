package models

import (
	"math"
	"slices"
	"sort"
)

// Source spreadsheet column headers. These are part of the input contract.
const (
	HeaderIndustry  = "특성별(1)"
	HeaderVeryNeed  = "매우 필요"
	HeaderSomeNeed  = "약간 필요"
	HeaderLessNeed  = "별로 필요하지 않음"
	HeaderNeverNeed = "전혀 필요하지 않음"
)

// Internal column names used once a sheet has been loaded.
const (
	ColIndustry    = "company"
	ColVeryNeed    = "very_need"
	ColSomeNeed    = "some_need"
	ColLessNeed    = "less_need"
	ColNeverNeed   = "never_need"
	ColNeedTotal   = "need_total"
	ColNoNeedTotal = "noneed_total"
)

// HeaderRowOffset is the zero-based row index of the header in the sheet.
const HeaderRowOffset = 2

// ColumnMapping pairs a spreadsheet header with its internal column name.
type ColumnMapping struct {
	Header string
	Column string
}

// SourceColumns lists the required columns in load order. The first entry
// is the industry label, the remaining four are numeric percentages.
var SourceColumns = []ColumnMapping{
	{Header: HeaderIndustry, Column: ColIndustry},
	{Header: HeaderVeryNeed, Column: ColVeryNeed},
	{Header: HeaderSomeNeed, Column: ColSomeNeed},
	{Header: HeaderLessNeed, Column: ColLessNeed},
	{Header: HeaderNeverNeed, Column: ColNeverNeed},
}

// Allow-listed industries.
const (
	IndustryManufacturing   = "제조업"
	IndustryConstruction    = "건설업"
	IndustryWholesaleRetail = "도매및소매업"
	IndustryICT             = "정보통신업"
	IndustryProfessional    = "전문,과학및기술서비스업"
)

// IndustryFilter is the fixed allow-list used to populate the selector and
// to restrict comparisons.
type IndustryFilter []string

// TargetIndustries is the allow-list of industries shown by the application.
var TargetIndustries = IndustryFilter{
	IndustryManufacturing,
	IndustryConstruction,
	IndustryWholesaleRetail,
	IndustryICT,
	IndustryProfessional,
}

// Contains reports whether industry is allow-listed.
func (f IndustryFilter) Contains(industry string) bool {
	return slices.Contains(f, industry)
}

// SurveyRow is one loaded survey line. Missing percentages are NaN.
type SurveyRow struct {
	Industry    string
	VeryNeed    float64
	SomeNeed    float64
	LessNeed    float64
	NeverNeed   float64
	NeedTotal   float64
	NoNeedTotal float64
}

// NewSurveyRow builds a row and derives both totals.
func NewSurveyRow(industry string, very, some, less, never float64) SurveyRow {
	return SurveyRow{
		Industry:    industry,
		VeryNeed:    very,
		SomeNeed:    some,
		LessNeed:    less,
		NeverNeed:   never,
		NeedTotal:   very + some,
		NoNeedTotal: less + never,
	}
}

// HasMissingValues reports whether any percentage is NaN.
func (r SurveyRow) HasMissingValues() bool {
	return math.IsNaN(r.VeryNeed) || math.IsNaN(r.SomeNeed) ||
		math.IsNaN(r.LessNeed) || math.IsNaN(r.NeverNeed)
}

// SurveyTable is the immutable result of loading a survey file.
type SurveyTable struct {
	source string
	rows   []SurveyRow
}

// NewSurveyTable copies rows into a new table. Rows with an empty industry
// are dropped.
func NewSurveyTable(source string, rows []SurveyRow) *SurveyTable {
	kept := make([]SurveyRow, 0, len(rows))
	for _, row := range rows {
		if row.Industry == "" {
			continue
		}
		kept = append(kept, row)
	}
	return &SurveyTable{source: source, rows: kept}
}

// Source returns the path the table was loaded from.
func (t *SurveyTable) Source() string {
	return t.source
}

// Len returns the number of rows.
func (t *SurveyTable) Len() int {
	return len(t.rows)
}

// Rows returns a copy of every row.
func (t *SurveyTable) Rows() []SurveyRow {
	return slices.Clone(t.rows)
}

// RowsFor returns the rows whose industry equals industry.
func (t *SurveyTable) RowsFor(industry string) []SurveyRow {
	var matched []SurveyRow
	for _, row := range t.rows {
		if row.Industry == industry {
			matched = append(matched, row)
		}
	}
	return matched
}

// Industries returns the sorted distinct industries present in the table
// that are also allow-listed.
func (t *SurveyTable) Industries() []string {
	seen := make(map[string]struct{})
	var industries []string
	for _, row := range t.rows {
		if _, ok := seen[row.Industry]; ok || !TargetIndustries.Contains(row.Industry) {
			continue
		}
		seen[row.Industry] = struct{}{}
		industries = append(industries, row.Industry)
	}
	sort.Strings(industries)
	return industries
}
