package planner

import (
	"math"

	"dining-planner/internal/model"
)

// Targets are the daily macro targets derived from body weight and goal.
type Targets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type goalFactors struct {
	calories float64 // multiplier on weight * 24 kcal
	protein  float64 // grams per kg
}

var fitnessFactors = map[model.FitnessGoal]goalFactors{
	model.GoalLoseWeight:  {calories: 1.2, protein: 2.0},
	model.GoalMaintain:    {calories: 1.4, protein: 1.6},
	model.GoalGainWeight:  {calories: 1.6, protein: 1.8},
	model.GoalBuildMuscle: {calories: 1.7, protein: 2.2},
}

// DailyTargets estimates daily targets for a body weight in kilograms. Carbs
// cover half the calories and fat the remainder. Unknown goals use maintain.
func DailyTargets(weightKg float64, goal model.FitnessGoal) Targets {
	factors, ok := fitnessFactors[goal]
	if !ok {
		factors = fitnessFactors[model.GoalMaintain]
	}

	calories := math.Round(weightKg * 24 * factors.calories)
	protein := math.Round(weightKg * factors.protein)
	carbs := math.Round(calories * 0.5 / 4)
	fat := math.Round((calories - protein*4 - carbs*4) / 9)

	return Targets{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

// GoalsFor builds a goal profile from daily targets.
func GoalsFor(t Targets, maxBudget float64, restrictions []string) model.GoalProfile {
	return model.GoalProfile{
		TargetCalories:      t.Calories,
		TargetProtein:       t.Protein,
		TargetCarbs:         t.Carbs,
		TargetFat:           t.Fat,
		MaxBudget:           maxBudget,
		DietaryRestrictions: restrictions,
	}
}

// Balance reports which targets a day's totals meet.
type Balance struct {
	Calories bool `json:"calories"`
	Protein  bool `json:"protein"`
	Balanced bool `json:"balanced"`
}

const calorieTolerance = 0.15

// CheckBalance accepts calories within 15% of target and protein of at least
// 80% of target.
func CheckBalance(totals model.Totals, targets Targets) Balance {
	var caloriesOK bool
	if targets.Calories > 0 {
		caloriesOK = math.Abs(totals.Calories-targets.Calories)/targets.Calories <= calorieTolerance
	} else {
		caloriesOK = totals.Calories == 0
	}
	proteinOK := totals.Protein >= targets.Protein*proteinShortfall

	return Balance{
		Calories: caloriesOK,
		Protein:  proteinOK,
		Balanced: caloriesOK && proteinOK,
	}
}

// MacroPercentages is the share of calories from each macro, in whole percent.
type MacroPercentages struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// MacroSplit converts macro grams to calorie shares using 4/4/9 kcal per gram.
// All zero when there are no macro calories.
func MacroSplit(protein, carbs, fat float64) MacroPercentages {
	proteinCals := protein * 4
	carbCals := carbs * 4
	fatCals := fat * 9
	total := proteinCals + carbCals + fatCals
	if total <= 0 {
		return MacroPercentages{}
	}

	return MacroPercentages{
		Protein: int(math.Round(proteinCals / total * 100)),
		Carbs:   int(math.Round(carbCals / total * 100)),
		Fat:     int(math.Round(fatCals / total * 100)),
	}
}
