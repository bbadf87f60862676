package services

import (
	"mamaeEmFormaAPI/internal/catalog"
	"mamaeEmFormaAPI/internal/progress"
)

// CatalogService serves the static program content. Nothing here is stored
// per user except the shopping list check marks, which come from progress.
type CatalogService struct {
	quotes    []catalog.Quote
	exercises []catalog.Exercise
	meals     map[string][]catalog.Meal
	shopping  []catalog.ShoppingCategory
	videos    []catalog.Video
	faqs      []catalog.FAQ
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		quotes:    catalog.Quotes,
		exercises: catalog.Exercises,
		meals:     catalog.Meals,
		shopping:  catalog.ShoppingCategories,
		videos:    catalog.Videos,
		faqs:      catalog.FAQs,
	}
}

// Exercises returns every exercise with the adaptation text for the given
// birth type selected. A nil birth type leaves the adaptation empty.
func (s *CatalogService) Exercises(birthType *progress.BirthType) []catalog.ExerciseForBirth {
	out := make([]catalog.ExerciseForBirth, 0, len(s.exercises))
	for _, ex := range s.exercises {
		item := catalog.ExerciseForBirth{Exercise: ex}
		if birthType != nil && ex.Adaptations != nil {
			switch *birthType {
			case progress.BirthNormal:
				item.Adaptation = ex.Adaptations.Normal
			case progress.BirthCesarea:
				item.Adaptation = ex.Adaptations.Cesarea
			}
		}
		out = append(out, item)
	}
	return out
}

// Meals returns the week's meal plan keyed by weekday, or one day's meals
// when day is set. Unknown days yield an empty plan.
func (s *CatalogService) Meals(day string) map[string][]catalog.Meal {
	if day != "" {
		meals, ok := s.meals[day]
		if !ok {
			return map[string][]catalog.Meal{}
		}
		return map[string][]catalog.Meal{day: meals}
	}
	return s.meals
}

// ShoppingCategories copies the shopping list with the user's checked items
// marked.
func (s *CatalogService) ShoppingCategories(checked progress.Set) []catalog.ShoppingCategory {
	out := make([]catalog.ShoppingCategory, len(s.shopping))
	for i, cat := range s.shopping {
		items := make([]catalog.ShoppingItem, len(cat.Items))
		for j, item := range cat.Items {
			item.Checked = checked.Has(item.ID)
			items[j] = item
		}
		out[i] = catalog.ShoppingCategory{Name: cat.Name, Items: items}
	}
	return out
}

func (s *CatalogService) Videos() []catalog.Video {
	return s.videos
}

func (s *CatalogService) FAQs() []catalog.FAQ {
	return s.faqs
}

// QuoteForDay picks the quote of the day by cycling through the list. Any
// integer is accepted, negatives included.
func (s *CatalogService) QuoteForDay(day int) catalog.Quote {
	n := len(s.quotes)
	return s.quotes[((day%n)+n)%n]
}
