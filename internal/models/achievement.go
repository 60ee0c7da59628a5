package models

const (
	AchievementCategoryStreak    = "streak"
	AchievementCategoryTracking  = "tracking"
	AchievementCategoryWellness  = "wellness"
	AchievementCategoryMilestone = "milestone"
)

const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// AchievementDefinition is a static catalog entry. The catalog never changes;
// only unlock state is persisted.
type AchievementDefinition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Requirement int    `json:"requirement"`
	Rarity      string `json:"rarity"`
}

// Achievement joins a catalog entry with computed progress and unlock state.
type Achievement struct {
	AchievementDefinition
	CurrentProgress int    `json:"currentProgress"`
	IsUnlocked      bool   `json:"isUnlocked"`
	UnlockedDate    string `json:"unlockedDate,omitempty"`
}

// UserStats aggregates the counters achievements are measured against.
type UserStats struct {
	TotalCheckIns       int `json:"totalCheckIns"`
	CurrentStreak       int `json:"currentStreak"`
	LongestStreak       int `json:"longestStreak"`
	TotalGoalsCompleted int `json:"totalGoalsCompleted"`
	DaysTracked         int `json:"daysTracked"`
	PeriodsTracked      int `json:"periodsTracked"`
	SymptomsLogged      int `json:"symptomsLogged"`
}

// AchievementCatalog returns the fixed set of unlockable achievements.
func AchievementCatalog() []AchievementDefinition {
	return []AchievementDefinition{
		{ID: "first_checkin", Title: "Getting Started", Description: "Complete your first daily check-in", Category: AchievementCategoryStreak, Requirement: 1, Rarity: RarityCommon},
		{ID: "week_warrior", Title: "Week Warrior", Description: "Maintain a 7-day check-in streak", Category: AchievementCategoryStreak, Requirement: 7, Rarity: RarityCommon},
		{ID: "month_master", Title: "Month Master", Description: "Maintain a 30-day check-in streak", Category: AchievementCategoryStreak, Requirement: 30, Rarity: RarityRare},
		{ID: "streak_legend", Title: "Streak Legend", Description: "Maintain a 100-day check-in streak", Category: AchievementCategoryStreak, Requirement: 100, Rarity: RarityLegendary},
		{ID: "period_tracker", Title: "Period Tracker", Description: "Track your first period", Category: AchievementCategoryTracking, Requirement: 1, Rarity: RarityCommon},
		{ID: "cycle_expert", Title: "Cycle Expert", Description: "Track 5 complete cycles", Category: AchievementCategoryTracking, Requirement: 5, Rarity: RarityRare},
		{ID: "symptom_logger", Title: "Symptom Logger", Description: "Log symptoms for 10 days", Category: AchievementCategoryTracking, Requirement: 10, Rarity: RarityCommon},
		{ID: "goal_getter", Title: "Goal Getter", Description: "Complete 25 wellness goals", Category: AchievementCategoryWellness, Requirement: 25, Rarity: RarityRare},
		{ID: "wellness_warrior", Title: "Wellness Warrior", Description: "Complete 100 wellness goals", Category: AchievementCategoryWellness, Requirement: 100, Rarity: RarityEpic},
		{ID: "dedicated_tracker", Title: "Dedicated Tracker", Description: "Use the app for 50 total days", Category: AchievementCategoryMilestone, Requirement: 50, Rarity: RarityEpic},
	}
}
