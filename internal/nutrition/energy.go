package nutrition

// ActivityMultipliers maps activity level names to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var ActivityMultipliers = map[string]float64{
	"sedentary":    1.2,
	"light":        1.375,
	"moderate":     1.55,
	"active":       1.725,
	"extra_active": 1.9,
}

// Anthropometrics are the inputs to the BMR calculation. Gender is
// "male" or "female"; anything else uses the female constant.
type Anthropometrics struct {
	WeightKg float64
	HeightCm float64
	Age      int
	Gender   string
}

// BMR computes basal metabolic rate via Mifflin-St Jeor, rounded to the
// nearest kcal.
func BMR(a Anthropometrics) int {
	bmr := 10*a.WeightKg + 6.25*a.HeightCm - 5*float64(a.Age)
	if a.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return round(bmr)
}

// TDEE scales a BMR by an activity multiplier, rounded to the nearest kcal.
func TDEE(bmr int, activityMultiplier float64) int {
	return round(float64(bmr) * activityMultiplier)
}

// ApplyTDEEToTargets sets the plan's calorie and macro targets from a TDEE
// using a fixed 30/40/30 protein/carbs/fat calorie split.
func ApplyTDEEToTargets(plan *DietPlanDraft, tdee int) {
	plan.TargetCalories = tdee
	plan.TargetProtein = round(float64(tdee) * 0.30 / KcalPerGramProtein)
	plan.TargetCarbs = round(float64(tdee) * 0.40 / KcalPerGramCarbs)
	plan.TargetFat = round(float64(tdee) * 0.30 / KcalPerGramFat)
}
