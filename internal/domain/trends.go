package domain

// KeywordTotal is a summed mention count for one keyword over a window.
type KeywordTotal struct {
	KeywordID string `db:"keyword_id"`
	Name      string `db:"name"`
	Total     int    `db:"total"`
}

type SourceTotal struct {
	Source Source `db:"source"`
	Total  int    `db:"total"`
}

type TopKeyword struct {
	KeywordID      string  `json:"keywordId"`
	Name           string  `json:"name"`
	CurrentPeriod  int     `json:"currentPeriod"`
	PreviousPeriod int     `json:"previousPeriod"`
	GrowthRate     float64 `json:"growthRate"`
	IsEmerging     bool    `json:"isEmerging"`
}

type Overview struct {
	From             string         `json:"from"`
	To               string         `json:"to"`
	TopKeywords      []TopKeyword   `json:"topKeywords"`
	EmergingKeywords []TopKeyword   `json:"emergingKeywords"`
	TotalMentions    int            `json:"totalMentions"`
	SourceBreakdown  map[Source]int `json:"sourceBreakdown"`
}

type TrendQuery struct {
	Range  DateRange
	Source Source
}

type TrendPoint struct {
	Date   string `json:"date" db:"date"`
	Source Source `json:"source" db:"source"`
	Count  int    `json:"count" db:"mentions_count"`
}

type KeywordTrend struct {
	KeywordID     string       `json:"keywordId"`
	Name          string       `json:"name"`
	From          string       `json:"from"`
	To            string       `json:"to"`
	TimeSeries    []TrendPoint `json:"timeSeries"`
	TotalMentions int          `json:"totalMentions"`
	AveragePerDay float64      `json:"averagePerDay"`
}
