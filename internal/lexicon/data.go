package lexicon

// Intent labels.
const (
	IntentWatering      = "watering"
	IntentFertilizing   = "fertilizing"
	IntentPruning       = "pruning"
	IntentPests         = "pests"
	IntentRepotting     = "repotting"
	IntentLight         = "light"
	IntentSeasonal      = "seasonal"
	IntentIndoor        = "indoor"
	IntentOutdoor       = "outdoor"
	IntentBeginner      = "beginner"
	IntentClimate       = "climate"
	IntentCareAdvice    = "care_advice"
	IntentIdentify      = "plant_identification"
	IntentRecommend     = "recommendation"
	IntentProblem       = "problem_solving"
	IntentSearch        = "search"
	IntentGeneralInfo   = "general_info"
)

// Category tags.
const (
	CategoryFruit        = "fruit"
	CategoryFlower       = "flower"
	CategoryMedicinal    = "medicinal"
	CategoryHerb         = "herb"
	CategoryVegetable    = "vegetable"
	CategorySucculent    = "succulent"
	CategoryTree         = "tree"
	CategoryClimber      = "climber"
	CategoryAquatic      = "aquatic"
	CategoryAirPurifying = "air_purifying"
)

// Default returns the compiled-in knowledge base.
func Default() *Lexicon {
	return &Lexicon{
		Plants: []PlantAlias{
			{Name: "tulsi", Aliases: []string{"holy basil", "sacred basil", "ocimum tenuiflorum"}},
			{Name: "neem", Aliases: []string{"neem tree", "azadirachta indica", "margosa", "indian lilac"}},
			{Name: "aloe vera", Aliases: []string{"aloe", "burn plant", "medicine plant"}},
			{Name: "rose", Aliases: []string{"roses", "rosa"}},
			{Name: "basil", Aliases: []string{"sweet basil", "ocimum basilicum"}},
			{Name: "mint", Aliases: []string{"mentha", "peppermint", "spearmint"}},
			{Name: "sunflower", Aliases: []string{"helianthus", "sun flower"}},
			{Name: "marigold", Aliases: []string{"tagetes", "calendula"}},
			{Name: "jasmine", Aliases: []string{"jasminum", "mogra"}},
			{Name: "lavender", Aliases: []string{"lavandula"}},
			{Name: "snake plant", Aliases: []string{"sansevieria", "mother-in-law tongue"}},
			{Name: "peace lily", Aliases: []string{"spathiphyllum", "white lily"}},
			{Name: "spider plant", Aliases: []string{"chlorophytum comosum", "airplane plant"}},
			{Name: "pothos", Aliases: []string{"devil's ivy", "golden pothos", "epipremnum aureum"}},
		},

		Categories: []CategorySet{
			{Tag: CategoryFruit, Keywords: []string{"fruit", "fruiting", "berry", "berries", "citrus", "edible fruit"}},
			{Tag: CategoryFlower, Keywords: []string{"flower", "flowering", "bloom", "blossom", "ornamental", "decorative"}},
			{Tag: CategoryMedicinal, Keywords: []string{"medicinal", "medicine", "healing", "therapeutic", "remedy", "ayurvedic"}},
			{Tag: CategoryHerb, Keywords: []string{"herb", "herbs", "spice", "seasoning", "culinary", "kitchen"}},
			{Tag: CategoryVegetable, Keywords: []string{"vegetable", "vegetables", "veggie", "crop"}},
			{Tag: CategorySucculent, Keywords: []string{"succulent", "cactus", "cacti", "desert", "drought-resistant"}},
			{Tag: CategoryTree, Keywords: []string{"tree", "shrub", "woody", "timber"}},
			{Tag: CategoryClimber, Keywords: []string{"climber", "vine", "creeper", "climbing", "trailing"}},
			{Tag: CategoryAquatic, Keywords: []string{"aquatic", "pond", "floating", "submerged"}},
			{Tag: CategoryAirPurifying, Keywords: []string{"air purifying", "air-purifying", "air purifier", "clean air", "oxygen", "detoxifying"}},
		},

		Intents: []IntentSet{
			{Label: IntentWatering, Keywords: []string{"water", "watering", "hydrate", "irrigation", "moisture", "drink"}},
			{Label: IntentFertilizing, Keywords: []string{"fertilize", "feed", "nutrition", "nutrients", "compost", "manure"}},
			{Label: IntentPruning, Keywords: []string{"prune", "trim", "deadhead", "shape", "pinch"}},
			{Label: IntentPests, Keywords: []string{"pest", "insect", "bug", "fungus", "aphid", "spider mite"}},
			{Label: IntentRepotting, Keywords: []string{"repot", "transplant", "pot", "container", "root bound"}},
			{Label: IntentLight, Keywords: []string{"light", "sun", "shade", "bright", "dark", "sunlight", "exposure"}},
			{Label: IntentSeasonal, Keywords: []string{"season", "winter", "summer", "spring", "autumn", "monsoon"}},
			{Label: IntentIndoor, Keywords: []string{"indoor", "house", "inside", "apartment", "office"}},
			{Label: IntentOutdoor, Keywords: []string{"outdoor", "garden", "yard", "balcony", "terrace", "outside"}},
			{Label: IntentBeginner, Keywords: []string{"easy", "beginner", "simple", "low maintenance", "care-free"}},
			{Label: IntentClimate, Keywords: []string{"climate", "temperature", "humid", "dry", "tropical", "cold"}},
			{Label: IntentCareAdvice, Keywords: []string{"how", "care", "grow", "maintain"}},
			{Label: IntentIdentify, Keywords: []string{"what", "which", "identify", "name"}},
			{Label: IntentRecommend, Keywords: []string{"suggest", "recommend", "best", "good", "suitable"}},
			{Label: IntentProblem, Keywords: []string{"problem", "issue", "dying", "yellow", "disease", "sick"}},
		},

		Modifiers: []ModifierSet{
			{Type: "season", Values: []ModifierValue{
				{Value: "summer", Terms: []string{"summer", "hot", "sunny", "warm", "heat"}},
				{Value: "winter", Terms: []string{"winter", "cold", "cool", "frost", "chilly"}},
				{Value: "spring", Terms: []string{"spring", "bloom", "flowering", "growth"}},
				{Value: "monsoon", Terms: []string{"monsoon", "rainy", "rain", "wet", "humid"}},
				{Value: "all_seasons", Terms: []string{"year-round", "always", "continuous", "perennial"}},
			}},
			{Type: "difficulty", Values: []ModifierValue{
				{Value: "beginner", Terms: []string{"beginner", "easy", "simple", "low-maintenance", "basic", "starter", "first-time"}},
				{Value: "intermediate", Terms: []string{"intermediate", "moderate", "medium", "some-care"}},
				{Value: "advanced", Terms: []string{"advanced", "expert", "difficult", "challenging", "high-maintenance"}},
			}},
			{Type: "type", Values: []ModifierValue{
				{Value: "indoor", Terms: []string{"indoor", "houseplant", "inside", "home", "apartment"}},
				{Value: "outdoor", Terms: []string{"outdoor", "garden", "yard", "outside"}},
				{Value: "medicinal", Terms: []string{"medicinal", "healing", "herb", "remedy", "therapeutic"}},
				{Value: "flowering", Terms: []string{"flower", "bloom", "blossom", "colorful"}},
				{Value: "foliage", Terms: []string{"leaves", "green", "foliage"}},
			}},
		},

		CareAspects: []ModifierValue{
			{Value: "watering", Terms: []string{"water", "watering", "irrigation", "hydration", "moisture"}},
			{Value: "sunlight", Terms: []string{"sun", "light", "sunlight", "bright", "shade", "shadow"}},
			{Value: "soil", Terms: []string{"soil", "earth", "ground", "dirt", "compost", "fertilizer"}},
			{Value: "pruning", Terms: []string{"prune", "trim", "cut", "deadhead", "pinch"}},
			{Value: "pest_control", Terms: []string{"pest", "insect", "bug", "disease", "fungus"}},
		},

		UrgentWords:   []string{"urgent", "emergency", "dying", "help", "quickly", "asap"},
		SeasonalWords: []string{"summer", "winter", "spring", "monsoon", "season"},
		ProblemWords:  []string{"dying", "wilting", "yellow", "brown", "pest", "disease", "problem", "sick"},

		GenericTerms: []string{"plant", "plants", "care", "grow"},

		SuggestionBuckets: map[string][]string{
			"difficulty_beginner": {"snake plant", "pothos", "aloe vera", "spider plant", "mint"},
			"season_summer":       {"sunflower", "marigold", "tulsi", "jasmine"},
			"season_winter":       {"lavender", "snake plant", "peace lily"},
			"type_indoor":         {"snake plant", "pothos", "peace lily", "spider plant"},
			"type_medicinal":      {"tulsi", "neem", "aloe vera", "mint"},
		},
		GenericSuggestions: []string{"tulsi", "neem", "rose", "mint", "sunflower"},
		SearchTips: []string{
			"Try a plant name, e.g. 'tulsi' or 'snake plant'",
			"Describe what you need, e.g. 'easy indoor plants'",
			"Add a season or difficulty, e.g. 'summer flowers for beginners'",
		},
	}
}
