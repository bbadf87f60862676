package progress

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mamaeEmFormaAPI/internal/clock"
)

// ProgramDays is the length of one program cycle.
const ProgramDays = 30

type BirthType string

const (
	BirthNormal  BirthType = "normal"
	BirthCesarea BirthType = "cesarea"
)

func (b BirthType) Valid() bool {
	return b == BirthNormal || b == BirthCesarea
}

// Date is a calendar date without time of day, serialized as 2006-01-02.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	return Date{clock.DateOf(t)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UserProgress is a user's position in the program. It is the JSON shape
// returned to clients.
type UserProgress struct {
	CurrentDay           int           `json:"currentDay"`
	Streak               int           `json:"streak"`
	CompletedExercises   Set           `json:"completedExercises"`
	FavoriteRecipes      Set           `json:"favoriteRecipes"`
	CheckedShoppingItems Set           `json:"checkedShoppingItems"`
	DiastasisResult      *int          `json:"diastasisResult"`
	WatchedVideos        Set           `json:"watchedVideos"`
	Achievements         []Achievement `json:"achievements"`
	BirthType            *BirthType    `json:"birthType"`
	LastActiveDate       Date          `json:"lastActiveDate"`
	CyclesCompleted      int           `json:"cyclesCompleted"`
}

// Record is the persisted envelope around a user's progress.
type Record struct {
	ID        uuid.UUID
	UserID    string
	Version   int
	Progress  UserProgress
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns the progress of a user seen for the first time at now.
func New(now time.Time) UserProgress {
	return UserProgress{
		CurrentDay:           1,
		Streak:               1,
		CompletedExercises:   NewSet(),
		FavoriteRecipes:      NewSet(),
		CheckedShoppingItems: NewSet(),
		WatchedVideos:        NewSet(),
		Achievements:         DefaultAchievements(now),
		LastActiveDate:       NewDate(now),
	}
}

func NewRecord(userID string, now time.Time) *Record {
	return &Record{
		ID:        uuid.New(),
		UserID:    userID,
		Progress:  New(now),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Normalize repairs records written by older versions: nil sets, missing
// achievements and out of range counters.
func (p *UserProgress) Normalize(now time.Time) {
	if p.CompletedExercises == nil {
		p.CompletedExercises = NewSet()
	}
	if p.FavoriteRecipes == nil {
		p.FavoriteRecipes = NewSet()
	}
	if p.CheckedShoppingItems == nil {
		p.CheckedShoppingItems = NewSet()
	}
	if p.WatchedVideos == nil {
		p.WatchedVideos = NewSet()
	}
	p.Achievements = normalizeAchievements(p.Achievements, now)
	p.CurrentDay = clampDay(p.CurrentDay)
	if p.Streak < 1 {
		p.Streak = 1
	}
	if p.CyclesCompleted < 0 {
		p.CyclesCompleted = 0
	}
}

// Clone returns a deep copy.
func (p UserProgress) Clone() UserProgress {
	out := p
	out.CompletedExercises = p.CompletedExercises.Clone()
	out.FavoriteRecipes = p.FavoriteRecipes.Clone()
	out.CheckedShoppingItems = p.CheckedShoppingItems.Clone()
	out.WatchedVideos = p.WatchedVideos.Clone()
	out.Achievements = make([]Achievement, len(p.Achievements))
	copy(out.Achievements, p.Achievements)
	if p.DiastasisResult != nil {
		v := *p.DiastasisResult
		out.DiastasisResult = &v
	}
	if p.BirthType != nil {
		v := *p.BirthType
		out.BirthType = &v
	}
	return out
}

func clampDay(day int) int {
	if day < 1 {
		return 1
	}
	if day > ProgramDays {
		return ProgramDays
	}
	return day
}
