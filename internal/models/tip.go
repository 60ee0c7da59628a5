package models

const (
	TipCategoryNutrition     = "nutrition"
	TipCategoryExercise      = "exercise"
	TipCategoryMentalHealth  = "mental-health"
	TipCategorySelfCare      = "self-care"
	TipCategoryEducation     = "education"
	TipCategorySymptomRelief = "symptom-relief"
)

// WellnessTip is a static advice entry. Phase and Symptom narrow when the
// tip is relevant; both empty means the tip is general.
type WellnessTip struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Phase    string `json:"phase,omitempty"`
	Symptom  string `json:"symptom,omitempty"`
}

// WellnessTipCatalog returns the full built-in tip database.
func WellnessTipCatalog() []WellnessTip {
	return []WellnessTip{
		{ID: "cramps_relief", Title: "Natural Cramp Relief", Content: "Apply heat to your lower abdomen, try gentle yoga poses like child's pose, or drink chamomile tea to help relax uterine muscles.", Category: TipCategorySymptomRelief, Symptom: "cramps"},
		{ID: "headache_relief", Title: "Headache Management", Content: "Stay hydrated, rest in a dark quiet room, apply a cold compress to your forehead, and try gentle neck stretches.", Category: TipCategorySymptomRelief, Symptom: "headache"},
		{ID: "bloating_relief", Title: "Reduce Bloating", Content: "Avoid salty foods, drink peppermint or ginger tea, try gentle abdominal massage, and eat smaller, more frequent meals.", Category: TipCategorySymptomRelief, Symptom: "bloating"},
		{ID: "fatigue_energy", Title: "Combat Fatigue", Content: "Prioritize sleep, eat iron-rich foods like spinach and lentils, take short walks for natural energy, and avoid caffeine crashes.", Category: TipCategorySymptomRelief, Symptom: "fatigue"},
		{ID: "mood_support", Title: "Mood Balance", Content: "Practice deep breathing, engage in activities you enjoy, reach out to supportive friends, and be patient with yourself.", Category: TipCategorySymptomRelief, Symptom: "mood"},
		{ID: "nausea_relief", Title: "Ease Nausea", Content: "Try ginger tea or ginger candies, eat small frequent meals, avoid strong smells, and get fresh air when possible.", Category: TipCategorySymptomRelief, Symptom: "nausea"},

		{ID: "menstrual_iron", Title: "Boost Your Iron Intake", Content: "During menstruation, focus on iron-rich foods like spinach, lentils, and lean meats to replenish what you lose. Pair with vitamin C for better absorption.", Category: TipCategoryNutrition, Phase: PhaseMenstrual},
		{ID: "menstrual_rest", Title: "Honor Your Need for Rest", Content: "Your body is working hard during menstruation. It's perfectly normal to feel more tired. Listen to your body and allow yourself extra rest and gentle movement.", Category: TipCategorySelfCare, Phase: PhaseMenstrual},
		{ID: "menstrual_heat", Title: "Use Heat for Cramp Relief", Content: "Apply a heating pad or take a warm bath to help relax uterine muscles and reduce cramping. Heat therapy is one of the most effective natural pain relievers.", Category: TipCategorySelfCare, Phase: PhaseMenstrual},

		{ID: "follicular_energy", Title: "Harness Your Rising Energy", Content: "As estrogen rises, you'll feel more energetic and social. This is a great time to start new projects, plan activities, and tackle challenging tasks.", Category: TipCategoryMentalHealth, Phase: PhaseFollicular},
		{ID: "follicular_exercise", Title: "Try High-Intensity Workouts", Content: "Your energy levels are climbing! This is an ideal time for cardio, strength training, or trying that new fitness class you've been considering.", Category: TipCategoryExercise, Phase: PhaseFollicular},
		{ID: "follicular_planning", Title: "Plan and Set Goals", Content: "Your brain is sharp and optimistic during this phase. Use this mental clarity to set goals, make important decisions, and plan for the month ahead.", Category: TipCategoryMentalHealth, Phase: PhaseFollicular},

		{ID: "ovulation_confidence", Title: "Embrace Your Peak Confidence", Content: "Ovulation brings peak estrogen levels, making you feel most confident and social. Schedule important meetings, dates, or social events during this time.", Category: TipCategoryMentalHealth, Phase: PhaseOvulation},
		{ID: "ovulation_communication", Title: "Have Important Conversations", Content: "Your communication skills are at their peak. This is the perfect time for difficult conversations, presentations, or expressing your needs clearly.", Category: TipCategoryMentalHealth, Phase: PhaseOvulation},
		{ID: "ovulation_hydration", Title: "Stay Extra Hydrated", Content: "Increased body temperature during ovulation means you need more water. Aim for an extra glass or two to support your body's natural processes.", Category: TipCategoryNutrition, Phase: PhaseOvulation},

		{ID: "luteal_selfcare", Title: "Prioritize Self-Care", Content: "As progesterone rises, you may feel more introspective. This is perfect for self-care activities like journaling, meditation, or gentle yoga.", Category: TipCategorySelfCare, Phase: PhaseLuteal},
		{ID: "luteal_magnesium", Title: "Increase Magnesium Intake", Content: "Magnesium can help with PMS symptoms like mood swings and bloating. Try dark chocolate, nuts, seeds, or leafy greens.", Category: TipCategoryNutrition, Phase: PhaseLuteal},
		{ID: "luteal_boundaries", Title: "Set Healthy Boundaries", Content: "You might feel more sensitive during this phase. It's okay to say no to social events and prioritize your emotional well-being.", Category: TipCategoryMentalHealth, Phase: PhaseLuteal},

		{ID: "general_tracking", Title: "Track Your Patterns", Content: "Keep a record of your symptoms, moods, and energy levels. Over time, you'll notice patterns that help you better understand your unique cycle.", Category: TipCategoryEducation},
		{ID: "general_sleep", Title: "Prioritize Quality Sleep", Content: "Aim for 7-9 hours of sleep each night. Your menstrual cycle affects sleep quality, and good sleep supports hormonal balance.", Category: TipCategorySelfCare},
		{ID: "general_stress", Title: "Manage Stress Levels", Content: "Chronic stress can disrupt your menstrual cycle. Practice stress-reduction techniques like deep breathing, meditation, or gentle exercise.", Category: TipCategoryMentalHealth},
		{ID: "general_nutrition", Title: "Eat Regular, Balanced Meals", Content: "Skipping meals can affect your hormones. Aim for balanced meals with protein, healthy fats, and complex carbohydrates throughout the day.", Category: TipCategoryNutrition},
	}
}
