package extract

import "strings"

type dietaryRule struct {
	tag      string
	keywords []string
}

var dietaryRules = []dietaryRule{
	{"vegetarian", []string{"vegetarian", "veggie", "plant-based"}},
	{"vegan", []string{"vegan", "plant-based"}},
	{"gluten-free", []string{"gluten-free", "gluten free", "gf"}},
	{"dairy-free", []string{"dairy-free", "dairy free", "lactose-free"}},
	{"nut-free", []string{"nut-free", "nut free", "peanut-free"}},
	{"low-sodium", []string{"low sodium", "low-sodium", "reduced sodium"}},
	{"low-fat", []string{"low fat", "low-fat", "reduced fat"}},
	{"low-calorie", []string{"low calorie", "low-calorie", "light"}},
	{"high-protein", []string{"high protein", "high-protein", "protein-rich"}},
	{"organic", []string{"organic", "certified organic"}},
	{"local", []string{"local", "locally sourced"}},
	{"sustainable", []string{"sustainable", "eco-friendly"}},
}

// DietaryTags returns each tag whose keyword variants appear in text. A tag is
// emitted once no matter how many of its keywords match.
func DietaryTags(text string) []string {
	tags := []string{}
	if text == "" {
		return tags
	}

	lower := strings.ToLower(text)
	for _, rule := range dietaryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	return tags
}
