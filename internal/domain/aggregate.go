package domain

import "time"

// DateLayout is the YYYY-MM-DD form used for aggregate dates.
const DateLayout = "2006-01-02"

// DailyAggregate counts mentions per (Date, KeywordID, Source).
type DailyAggregate struct {
	ID            string `json:"id" db:"id"`
	Date          string `json:"date" db:"date"`
	KeywordID     string `json:"keywordId" db:"keyword_id"`
	Source        Source `json:"source" db:"source"`
	MentionsCount int    `json:"mentionsCount" db:"mentions_count"`
}

type AggregationResult struct {
	DatesProcessed  []string `json:"datesProcessed"`
	TotalAggregates int      `json:"totalAggregates"`
}

// DateRange is an inclusive range of calendar days in UTC.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

// Previous returns the range of equal length ending the day before From.
func (r DateRange) Previous() DateRange {
	n := r.Days()
	to := r.From.AddDate(0, 0, -1)
	return DateRange{From: to.AddDate(0, 0, -(n - 1)), To: to}
}

func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
