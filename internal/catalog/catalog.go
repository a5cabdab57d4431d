package catalog

// Food is a reference food item with nutrient density per 100 grams.
// Read-only: the aggregators never mutate catalog data.
type Food struct {
	ID              string
	Name            string
	CaloriesPer100g float64
	ProteinPer100g  float64
	CarbsPer100g    float64
	FatPer100g      float64
}

// SecondaryMuscle attributes a fraction of an exercise's training effect
// to a muscle other than the primary one.
type SecondaryMuscle struct {
	MuscleName          string
	ContributionPercent float64
}

// Exercise is a reference exercise with its muscle engagement profile.
// Primary plus secondary contribution percents need not sum to 100; the
// backend does not enforce it and neither do we.
type Exercise struct {
	ID                               string
	Name                             string
	PrimaryMuscleName                string
	PrimaryMuscleContributionPercent float64
	SecondaryMuscles                 []SecondaryMuscle
}

// Client is a gym member as seen by a coach or owner.
type Client struct {
	ID       string
	FullName string
}

// FoodIndex provides food lookup by ID.
type FoodIndex struct {
	byID map[string]Food
}

// NewFoodIndex builds an index over the given foods.
func NewFoodIndex(foods []Food) *FoodIndex {
	idx := &FoodIndex{byID: make(map[string]Food, len(foods))}
	for _, f := range foods {
		idx.byID[f.ID] = f
	}
	return idx
}

// Lookup returns the food with the given ID, if present.
func (idx *FoodIndex) Lookup(id string) (Food, bool) {
	f, ok := idx.byID[id]
	return f, ok
}

// Len returns the number of indexed foods.
func (idx *FoodIndex) Len() int {
	return len(idx.byID)
}

// ExerciseIndex provides exercise lookup by ID.
type ExerciseIndex struct {
	byID map[string]Exercise
}

// NewExerciseIndex builds an index over the given exercises. Exercises
// without an explicit primary contribution percent default to 100.
func NewExerciseIndex(exercises []Exercise) *ExerciseIndex {
	idx := &ExerciseIndex{byID: make(map[string]Exercise, len(exercises))}
	for _, e := range exercises {
		if e.PrimaryMuscleContributionPercent == 0 {
			e.PrimaryMuscleContributionPercent = 100
		}
		idx.byID[e.ID] = e
	}
	return idx
}

// Lookup returns the exercise with the given ID, if present.
func (idx *ExerciseIndex) Lookup(id string) (Exercise, bool) {
	e, ok := idx.byID[id]
	return e, ok
}

// Len returns the number of indexed exercises.
func (idx *ExerciseIndex) Len() int {
	return len(idx.byID)
}
