package catalog

type Difficulty string

const (
	DifficultyEasy     Difficulty = "fácil"
	DifficultyModerate Difficulty = "moderado"
	DifficultyIntense  Difficulty = "intenso"
)

type Adaptations struct {
	Normal  string `json:"normal,omitempty"`
	Cesarea string `json:"cesarea,omitempty"`
}

type Exercise struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Duration     string       `json:"duration"`
	Difficulty   Difficulty   `json:"difficulty"`
	Instructions string       `json:"instructions"`
	Adaptations  *Adaptations `json:"adaptations,omitempty"`
	VideoURL     string       `json:"videoUrl,omitempty"`
}

// ExerciseForBirth is an exercise with the adaptation text for one birth
// type already selected.
type ExerciseForBirth struct {
	Exercise
	Adaptation string `json:"adaptation,omitempty"`
}

type Meal struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	PrepTime string   `json:"prepTime"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Day      string   `json:"day"`
}

type ShoppingItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Checked  bool   `json:"checked"`
}

type ShoppingCategory struct {
	Name  string         `json:"name"`
	Items []ShoppingItem `json:"items"`
}

type Video struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	VideoURL string `json:"videoUrl,omitempty"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// WeekDays are the meal plan keys, Monday first.
var WeekDays = []string{"seg", "ter", "qua", "qui", "sex", "sab", "dom"}
