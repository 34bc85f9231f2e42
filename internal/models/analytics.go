package models

// Metric identifies which day-bucketed series the history endpoint
// should build.
type Metric string

const (
	MetricWork           Metric = "work"
	MetricHealthSleep    Metric = "health_sleep"
	MetricMindTasks      Metric = "mind_tasks"
	MetricHealthSport    Metric = "health_sport"
	MetricFinanceExpense Metric = "finance_expense"
)

// ParseMetric validates a metric name from a request path.
func ParseMetric(s string) (Metric, bool) {
	switch Metric(s) {
	case MetricWork, MetricHealthSleep, MetricMindTasks, MetricHealthSport, MetricFinanceExpense:
		return Metric(s), true
	}
	return "", false
}

// InsightKey is the fixed set of correlation insight identifiers.
type InsightKey string

const (
	InsightSleepWork        InsightKey = "sleep_work"
	InsightWorkExpense      InsightKey = "work_expense"
	InsightInsufficientData InsightKey = "insufficient_data"
)

// DisciplineScore is the weighted 0-100 composite for one calendar day.
type DisciplineScore struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// WorkStats summarizes the work domain over the trailing month.
type WorkStats struct {
	StreakDays           int     `json:"streak_days"`
	WeeklyCompletionRate float64 `json:"completion_rate_weekly"`
	TotalCompleted       int     `json:"total_completed"`
	MotivationMessage    string  `json:"motivation_message"`
}

// HealthStats summarizes sleep, sport and habits over the trailing week.
type HealthStats struct {
	AvgSleepHours     float64 `json:"avg_sleep_hours"`
	SportDaysWeekly   int     `json:"sport_days_weekly"`
	HabitConsistency  float64 `json:"habit_consistency"`
	MotivationMessage string  `json:"motivation_message"`
}

// MindStats summarizes mental-focus tasks over the trailing week.
type MindStats struct {
	TasksWeekly       int    `json:"tasks_weekly"`
	TopFocusArea      string `json:"top_focus_area"`
	MotivationMessage string `json:"motivation_message"`
}

// HistoryPoint is one day of a metric series.
type HistoryPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// DetailedStats is a metric's current-window series plus its growth
// against the preceding window of equal length.
type DetailedStats struct {
	History        []HistoryPoint `json:"history"`
	GrowthPct      float64        `json:"growth_pct"`
	AverageValue   float64        `json:"average_value"`
	TotalValue     float64        `json:"total_value"`
	ComparisonText string         `json:"comparison_text"`
}

// CorrelationReport maps each fired insight key to its localized text.
type CorrelationReport struct {
	Insights map[InsightKey]string `json:"insights"`
}

// FinanceHealth is the trailing-month finance report.
type FinanceHealth struct {
	BurnRateDaily         float64  `json:"burn_rate_daily"`
	PassiveIncomeCoverage float64  `json:"passive_income_coverage"`
	Warnings              []string `json:"warnings"`
}

// WeeklyReview is the averaged discipline score with its summary text.
type WeeklyReview struct {
	AverageScore float64 `json:"average_score"`
	Summary      string  `json:"summary"`
}

// DailyFinanceStat is today's income/expense totals.
type DailyFinanceStat struct {
	Date         string  `json:"date"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
}

// MonthlyFinanceStat is one month's income/expense totals.
type MonthlyFinanceStat struct {
	Month        string  `json:"month"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
}
