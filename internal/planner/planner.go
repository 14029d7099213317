package planner

import (
	"math/rand/v2"
	"sync"
	"time"

	"dinner-planner/internal/recipe"
	"dinner-planner/internal/weather"
)

// varietyResetShare is the fraction of the dinner pool that may be used
// before the used set is cleared.
const varietyResetShare = 0.8

// RandomSource picks an index in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewSource returns a seeded PCG source.
func NewSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Planner assigns a dinner to each day of the week.
type Planner struct {
	mu  sync.Mutex
	rng RandomSource
}

// NewPlanner creates a new Planner. A nil rng is replaced with a
// time-seeded source.
func NewPlanner(rng RandomSource) *Planner {
	if rng == nil {
		rng = NewSource(uint64(time.Now().UnixNano()))
	}
	return &Planner{rng: rng}
}

// groups are the overlapping candidate sets computed once per plan.
type groups struct {
	all                []*recipe.Recipe
	pescatarianOrVeg   []*recipe.Recipe
	meat               []*recipe.Recipe
	fish               []*recipe.Recipe
	quick              []*recipe.Recipe
	kidFriendly        []*recipe.Recipe
	comfort            []*recipe.Recipe
	weatherAppropriate []*recipe.Recipe
}

func partition(recipes []recipe.Recipe, w weather.Classification) groups {
	var g groups
	for i := range recipes {
		r := &recipes[i]
		if !r.IsDinner() {
			continue
		}
		g.all = append(g.all, r)

		switch r.ProteinType {
		case recipe.ProteinMeat:
			g.meat = append(g.meat, r)
		case recipe.ProteinFish:
			g.fish = append(g.fish, r)
			g.pescatarianOrVeg = append(g.pescatarianOrVeg, r)
		case recipe.ProteinVegetarian, recipe.ProteinVegan:
			g.pescatarianOrVeg = append(g.pescatarianOrVeg, r)
		}

		if r.HasTag(recipe.TagQuick) && r.TotalTime() <= 30 {
			g.quick = append(g.quick, r)
		}
		if r.HasTag(recipe.TagKidFriendly) {
			g.kidFriendly = append(g.kidFriendly, r)
		}
		if r.HasTag(recipe.TagComfort) {
			g.comfort = append(g.comfort, r)
		}
		if suitsWeather(r.WeatherPreference, w) {
			g.weatherAppropriate = append(g.weatherAppropriate, r)
		}
	}
	return g
}

func suitsWeather(pref recipe.WeatherPreference, w weather.Classification) bool {
	switch pref {
	case recipe.WeatherAny:
		return true
	case recipe.WeatherHot:
		return w.IsHot
	case recipe.WeatherCold:
		return w.IsCold
	default:
		return false
	}
}

// concat keeps duplicates; a recipe in both groups is twice as likely.
func concat(a, b []*recipe.Recipe) []*recipe.Recipe {
	out := make([]*recipe.Recipe, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// dayRule picks the candidate group for the days it matches. Rules are
// evaluated in order and the first match wins.
type dayRule struct {
	name       string
	matches    func(day int) bool
	candidates func(g groups, w weather.Classification, b ProteinBalance) []*recipe.Recipe
}

var dayRules = []dayRule{
	{
		name:    "weekend",
		matches: func(day int) bool { return day == 0 || day == 6 },
		candidates: func(g groups, w weather.Classification, _ ProteinBalance) []*recipe.Recipe {
			if w.IsCold {
				return concat(g.comfort, g.weatherAppropriate)
			}
			if len(g.weatherAppropriate) > 0 {
				return g.weatherAppropriate
			}
			return g.all
		},
	},
	{
		name:    "early-week",
		matches: func(day int) bool { return day >= 1 && day <= 3 },
		candidates: func(g groups, _ weather.Classification, _ ProteinBalance) []*recipe.Recipe {
			return concat(g.quick, g.kidFriendly)
		},
	},
	{
		name:    "late-week",
		matches: func(day int) bool { return day >= 4 && day <= 5 },
		candidates: func(g groups, _ weather.Classification, b ProteinBalance) []*recipe.Recipe {
			switch {
			case b.VegetarianRatio() < 0.3:
				return g.pescatarianOrVeg
			case b.FishRatio() < 0.2:
				return g.fish
			default:
				return g.all
			}
		},
	},
}

func candidatesFor(day int, g groups, w weather.Classification, b ProteinBalance) []*recipe.Recipe {
	for _, rule := range dayRules {
		if rule.matches(day) {
			return rule.candidates(g, w, b)
		}
	}
	return g.all
}

// BuildPlan assigns at most one dinner recipe to each day. Only dinner
// recipes are considered. Returned dinners point into recipes.
func (p *Planner) BuildPlan(recipes []recipe.Recipe, w weather.Classification) Plan {
	plan, _ := p.build(recipes, w)
	return plan
}

func (p *Planner) build(recipes []recipe.Recipe, w weather.Classification) (Plan, ProteinBalance) {
	p.mu.Lock()
	defer p.mu.Unlock()

	g := partition(recipes, w)
	resetAt := int(float64(len(g.all)) * varietyResetShare)
	used := make(map[string]bool)

	var balance ProteinBalance
	plan := make(Plan, len(Days))

	for day, name := range Days {
		plan[day].Day = name

		candidates := candidatesFor(day, g, w, balance)
		picked := p.selectWithVariety(candidates, g.all, used)
		if picked == nil {
			continue
		}

		plan[day].Dinner = picked
		used[picked.ID] = true
		balance.Record(picked)

		if len(used) >= resetAt {
			clear(used)
		}
	}

	return plan, balance
}

// selectWithVariety prefers unused candidates, then unused pool recipes,
// and finally repeats rather than leaving the day empty.
func (p *Planner) selectWithVariety(candidates, pool []*recipe.Recipe, used map[string]bool) *recipe.Recipe {
	steps := [][]*recipe.Recipe{
		unused(candidates, used),
		unused(pool, used),
		unused(concat(candidates, pool), used),
	}
	for _, available := range steps {
		if len(available) > 0 {
			return available[p.rng.IntN(len(available))]
		}
	}

	switch {
	case len(candidates) > 0:
		return candidates[p.rng.IntN(len(candidates))]
	case len(pool) > 0:
		return pool[p.rng.IntN(len(pool))]
	default:
		return nil
	}
}

func unused(recipes []*recipe.Recipe, used map[string]bool) []*recipe.Recipe {
	var out []*recipe.Recipe
	for _, r := range recipes {
		if !used[r.ID] {
			out = append(out, r)
		}
	}
	return out
}
