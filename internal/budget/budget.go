// Package budget computes budget snapshots and groupings over expense
// records.
//
// All functions are pure: they take the full set of records, the budget
// configuration and a caller-supplied reference date and return plain data.
// The package never reads a clock and never touches the database, which
// keeps every computation repeatable in tests.
//
// Bucketing is keyed exclusively on the calendar date an expense is
// attributed to. The creation timestamp only orders records within a
// bucket, it never decides which bucket a record belongs to.
package budget

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/snapspend/backend/internal/models"
	"github.com/snapspend/backend/internal/types"
)

var oneHundred = decimal.NewFromInt(100)

// Config is the budget configuration the aggregations run against.
type Config struct {
	// Default is the monthly budget used for months without an override.
	Default decimal.Decimal

	// Overrides maps a month to the budget amount that replaces the
	// default for exactly that month.
	Overrides map[types.Month]decimal.Decimal
}

// Total resolves the effective budget for a month: the override for the
// month if there is one, the default otherwise.
func (c Config) Total(month types.Month) decimal.Decimal {
	if amount, ok := c.Overrides[month]; ok {
		return amount
	}

	return c.Default
}

// Snapshot is the computed state of one budget period. It is derived data
// and never persisted.
type Snapshot struct {
	Month      types.Month     `json:"month" example:"2024-06"`       // The month the snapshot is computed for
	Total      decimal.Decimal `json:"total" example:"2500"`          // The effective budget for the month
	Spent      decimal.Decimal `json:"spent" example:"1337.42"`       // Sum of all expenses attributed to the month
	Remaining  decimal.Decimal `json:"remaining" example:"1162.58"`   // Total minus spent, negative when over budget
	Percentage decimal.Decimal `json:"percentage" example:"53.49"`    // Spent share of the total in percent, clamped to [0, 100]
}

// MonthSpend pairs a month with the amount spent in it.
type MonthSpend struct {
	Month types.Month     `json:"month" example:"2024-05"` // The month
	Spent decimal.Decimal `json:"spent" example:"2100.50"` // Sum of all expenses attributed to the month
}

// DayGroup holds all expenses attributed to one calendar date.
type DayGroup struct {
	Date    types.Date       `json:"date" example:"2024-06-03"` // The calendar date
	IsToday bool             `json:"isToday" example:"false"`   // Whether the date is the caller-supplied reference date
	Records []models.Expense `json:"records"`                   // Expenses for the date, most recently logged first
}

// DayBucket holds the expenses of one day of a month.
type DayBucket struct {
	Day     int              `json:"day" example:"3"`      // Day of the month
	Total   decimal.Decimal  `json:"total" example:"50"`   // Sum of all expenses for the day
	Records []models.Expense `json:"records"`              // Expenses for the day, most recently logged first
}

// MonthGroup holds the expenses of one month, partitioned by day.
type MonthGroup struct {
	Month types.Month `json:"month" example:"2024-06"` // The month
	Days  []DayBucket `json:"days"`                    // Day buckets, most recent day first
}

// spent sums the amounts of all records attributed to the month.
func spent(records []models.Expense, month types.Month) decimal.Decimal {
	sum := decimal.Zero
	for _, record := range records {
		if month.ContainsDate(record.Date) {
			sum = sum.Add(record.Amount)
		}
	}

	return sum
}

// MonthSnapshot computes the snapshot for one specific month.
//
// The percentage is clamped to 100 even when the month is over budget; the
// remaining amount is not clamped and goes negative instead. A zero total
// is a defined edge case with a percentage of 0.
func MonthSnapshot(records []models.Expense, cfg Config, month types.Month) Snapshot {
	total := cfg.Total(month)
	monthSpent := spent(records, month)

	percentage := decimal.Zero
	if !total.IsZero() {
		percentage = monthSpent.Div(total).Mul(oneHundred)
		if percentage.GreaterThan(oneHundred) {
			percentage = oneHundred
		}
	}

	return Snapshot{
		Month:      month,
		Total:      total,
		Spent:      monthSpent,
		Remaining:  total.Sub(monthSpent),
		Percentage: percentage,
	}
}

// CurrentSnapshot computes the snapshot for the month the reference date
// falls in.
func CurrentSnapshot(records []models.Expense, cfg Config, today types.Date) Snapshot {
	return MonthSnapshot(records, cfg, today.InMonth())
}

// History returns the spend for the given number of months ending at and
// including the month of the reference date, most recent month first.
//
// Months without any expenses are included with a spend of zero so that
// callers can distinguish "nothing spent" from "month not covered".
func History(records []models.Expense, cfg Config, today types.Date, periods int) []MonthSpend {
	history := make([]MonthSpend, 0, max(periods, 0))

	month := today.InMonth()
	for i := 0; i < periods; i++ {
		history = append(history, MonthSpend{
			Month: month,
			Spent: spent(records, month),
		})
		month = month.AddDate(0, -1)
	}

	return history
}

// GroupByDay partitions the records by their expense date, most recent
// date first. Every record appears in exactly one group.
func GroupByDay(records []models.Expense, today types.Date) []DayGroup {
	byDate := make(map[types.Date][]models.Expense)
	for _, record := range records {
		byDate[record.Date] = append(byDate[record.Date], record)
	}

	groups := make([]DayGroup, 0, len(byDate))
	for date, dayRecords := range byDate {
		sortByCreation(dayRecords)

		groups = append(groups, DayGroup{
			Date:    date,
			IsToday: date.Equal(today),
			Records: dayRecords,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})

	return groups
}

// GroupByMonth partitions the records by the month of their expense date,
// most recent month first. Within a month, records are partitioned into
// day-of-month buckets carrying the sum for that day, most recent day
// first. Every record appears in exactly one day bucket of exactly one
// month.
func GroupByMonth(records []models.Expense) []MonthGroup {
	byMonth := make(map[types.Month][]models.Expense)
	for _, record := range records {
		month := record.Date.InMonth()
		byMonth[month] = append(byMonth[month], record)
	}

	groups := make([]MonthGroup, 0, len(byMonth))
	for month, monthRecords := range byMonth {
		byDay := make(map[int][]models.Expense)
		for _, record := range monthRecords {
			byDay[record.Date.Day()] = append(byDay[record.Date.Day()], record)
		}

		days := make([]DayBucket, 0, len(byDay))
		for day, dayRecords := range byDay {
			sortByCreation(dayRecords)

			total := decimal.Zero
			for _, record := range dayRecords {
				total = total.Add(record.Amount)
			}

			days = append(days, DayBucket{
				Day:     day,
				Total:   total,
				Records: dayRecords,
			})
		}

		sort.Slice(days, func(i, j int) bool {
			return days[i].Day > days[j].Day
		})

		groups = append(groups, MonthGroup{
			Month: month,
			Days:  days,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Month.After(groups[j].Month)
	})

	return groups
}

// sortByCreation orders records within a bucket by their creation
// timestamp, most recently logged first.
func sortByCreation(records []models.Expense) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}
