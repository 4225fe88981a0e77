package analytics

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// GoalAnalytics provides methods for analyzing goal progress metrics
type GoalAnalytics struct {
	DB *sql.DB
}

// NewGoalAnalytics creates a new GoalAnalytics instance
func NewGoalAnalytics(db *sql.DB) *GoalAnalytics {
	return &GoalAnalytics{
		DB: db,
	}
}

// GoalMetrics represents various goal progress metrics
type GoalMetrics struct {
	TotalGoals            int                        `json:"total_goals"`
	CompletedGoals        int                        `json:"completed_goals"`
	ActiveGoals           int                        `json:"active_goals"`
	CompletionRate        float64                    `json:"completion_rate"`
	AverageTimeToComplete time.Duration              `json:"average_time_to_complete"`
	GoalsByCategory       map[string]CategoryMetrics `json:"goals_by_category"`
	CompletionTrend       []CompletionTrendPoint     `json:"completion_trend"`
}

// CategoryMetrics represents metrics for a single goal category
type CategoryMetrics struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Rate      float64 `json:"rate"`
}

// CompletionTrendPoint represents a point in the completion trend over time
type CompletionTrendPoint struct {
	Date       string  `json:"date"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// GetGoalMetrics calculates and returns comprehensive goal metrics
func (ga *GoalAnalytics) GetGoalMetrics() (*GoalMetrics, error) {
	metrics := &GoalMetrics{
		GoalsByCategory: make(map[string]CategoryMetrics),
	}

	err := ga.DB.QueryRow(`
		SELECT COUNT(*), SUM(CASE WHEN completed THEN 1 ELSE 0 END)
		FROM goals
	`).Scan(&metrics.TotalGoals, &metrics.CompletedGoals)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	metrics.ActiveGoals = metrics.TotalGoals - metrics.CompletedGoals
	if metrics.TotalGoals > 0 {
		metrics.CompletionRate = float64(metrics.CompletedGoals) / float64(metrics.TotalGoals) * 100
	}

	avgHours, err := ga.averageTimeToComplete()
	if err != nil {
		return nil, fmt.Errorf("failed to calculate average time to complete: %w", err)
	}
	metrics.AverageTimeToComplete = time.Duration(avgHours * float64(time.Hour))

	byCategory, err := ga.goalsByCategory()
	if err != nil {
		return nil, fmt.Errorf("failed to get goals by category: %w", err)
	}
	metrics.GoalsByCategory = byCategory

	trend, err := ga.completionTrend()
	if err != nil {
		return nil, fmt.Errorf("failed to get completion trend: %w", err)
	}
	metrics.CompletionTrend = trend

	return metrics, nil
}

// averageTimeToComplete estimates hours from goal creation to completion.
// The updated_at timestamp stands in for the completion time, which is
// accurate as long as completed goals are not edited afterwards.
func (ga *GoalAnalytics) averageTimeToComplete() (float64, error) {
	rows, err := ga.DB.Query(`
		SELECT created_at, updated_at
		FROM goals
		WHERE completed AND created_at IS NOT NULL AND updated_at IS NOT NULL
	`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var totalHours float64
	var count int

	for rows.Next() {
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&createdAt, &updatedAt); err != nil {
			continue
		}
		totalHours += updatedAt.Sub(createdAt).Hours()
		count++
	}

	if count == 0 {
		return 0, rows.Err()
	}
	return totalHours / float64(count), rows.Err()
}

// goalsByCategory gets goal metrics grouped by category
func (ga *GoalAnalytics) goalsByCategory() (map[string]CategoryMetrics, error) {
	rows, err := ga.DB.Query(`
		SELECT
			CASE WHEN category = '' THEN 'uncategorized' ELSE category END as category,
			COUNT(*) as total,
			SUM(CASE WHEN completed THEN 1 ELSE 0 END) as completed
		FROM goals
		GROUP BY 1
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCategory := make(map[string]CategoryMetrics)

	for rows.Next() {
		var category string
		var total, completed int
		if err := rows.Scan(&category, &total, &completed); err != nil {
			continue
		}

		rate := 0.0
		if total > 0 {
			rate = float64(completed) / float64(total) * 100
		}
		byCategory[category] = CategoryMetrics{
			Total:     total,
			Completed: completed,
			Rate:      rate,
		}
	}

	return byCategory, rows.Err()
}

// completionTrend gets daily completion counts for the last 30 days
func (ga *GoalAnalytics) completionTrend() ([]CompletionTrendPoint, error) {
	rows, err := ga.DB.Query(`
		SELECT
			date(updated_at) as day,
			SUM(CASE WHEN completed THEN 1 ELSE 0 END) as completed,
			COUNT(*) as total
		FROM goals
		WHERE updated_at >= date('now', '-30 days')
		GROUP BY date(updated_at)
		ORDER BY day
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trend []CompletionTrendPoint

	for rows.Next() {
		var date string
		var completed, total int
		if err := rows.Scan(&date, &completed, &total); err != nil {
			continue
		}

		percentage := 0.0
		if total > 0 {
			percentage = float64(completed) / float64(total) * 100
		}
		trend = append(trend, CompletionTrendPoint{
			Date:       date,
			Completed:  completed,
			Total:      total,
			Percentage: percentage,
		})
	}

	return trend, rows.Err()
}

// VisualizeCompletionRate generates a text-based bar chart for completion rate
func (gm *GoalMetrics) VisualizeCompletionRate(width int) string {
	if gm.TotalGoals == 0 {
		return "[No goals]"
	}

	filled := int((gm.CompletionRate / 100) * float64(width))

	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < filled; i++ {
		sb.WriteString("█")
	}
	for i := filled; i < width; i++ {
		sb.WriteString("░")
	}
	sb.WriteString(fmt.Sprintf("] %.1f%% (%d/%d)", gm.CompletionRate, gm.CompletedGoals, gm.TotalGoals))

	return sb.String()
}

// VisualizeCategoryRates generates a text-based visualization of completion
// rates per category
func (gm *GoalMetrics) VisualizeCategoryRates(width int) []string {
	var visualizations []string

	for category, metrics := range gm.GoalsByCategory {
		filled := int((metrics.Rate / 100) * float64(width))

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%-20s [", truncateString(category, 18)))
		for i := 0; i < filled; i++ {
			sb.WriteString("█")
		}
		for i := filled; i < width; i++ {
			sb.WriteString("░")
		}
		sb.WriteString(fmt.Sprintf("] %.1f%% (%d/%d)", metrics.Rate, metrics.Completed, metrics.Total))

		visualizations = append(visualizations, sb.String())
	}

	return visualizations
}

// truncateString truncates a string to the specified length, adding "..." if truncated
func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
