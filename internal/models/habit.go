package models

// DefaultHabitTarget is the weekly completion target in days.
const DefaultHabitTarget = 7

// Habit is a user-defined or template-based recurring practice.
type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Target         int      `json:"target"`
	Streak         int      `json:"streak"`
	CompletedDates []string `json:"completedDates"`
	CreatedDate    string   `json:"createdDate"`
}

// HabitCompletion marks one habit as done on one calendar day.
type HabitCompletion struct {
	HabitID   string `json:"habitId"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type HabitCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// HabitCategories returns the fixed set of habit categories.
func HabitCategories() []HabitCategory {
	return []HabitCategory{
		{ID: "health", Label: "Health"},
		{ID: "wellness", Label: "Wellness"},
		{ID: "self-care", Label: "Self Care"},
		{ID: "nutrition", Label: "Nutrition"},
		{ID: "exercise", Label: "Exercise"},
		{ID: "sleep", Label: "Sleep"},
		{ID: "mindfulness", Label: "Mindfulness"},
	}
}

// KnownHabitCategory reports whether the id exists in the category list.
func KnownHabitCategory(categoryID string) bool {
	for _, category := range HabitCategories() {
		if category.ID == categoryID {
			return true
		}
	}
	return false
}

type HabitTemplate struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// HabitTemplates returns the predefined habits offered for one-tap adding.
func HabitTemplates() []HabitTemplate {
	return []HabitTemplate{
		{Name: "Drink 8 glasses of water", Category: "health"},
		{Name: "Take daily vitamins", Category: "health"},
		{Name: "10 minutes of exercise", Category: "exercise"},
		{Name: "8 hours of sleep", Category: "sleep"},
		{Name: "5 minutes of meditation", Category: "mindfulness"},
		{Name: "Eat a healthy breakfast", Category: "nutrition"},
		{Name: "Practice gratitude", Category: "wellness"},
		{Name: "Skincare routine", Category: "self-care"},
	}
}

// CompletedOn reports whether the habit was completed on the given day.
func CompletedOn(completions []HabitCompletion, habitID, date string) bool {
	for _, completion := range completions {
		if completion.HabitID == habitID && completion.Date == date {
			return true
		}
	}
	return false
}
