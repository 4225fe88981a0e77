package guidance

// Coordinate addresses a verse by surah and ayah number.
type Coordinate struct {
	Collection int
	Line       int
}

// Theme is a coarse topical category used to bucket goals and guidance
// content. The registry below is fixed; registration order is the tie-break
// order for classification and "guidance" is the default when nothing scores.
type Theme struct {
	Name                     string
	Description              string
	Synonyms                 []string
	PracticalGuidance        []string
	PrayerRecommendation     string
	RelatedHabits            []string
	SearchTerms              string
	GoalTerms                string
	Fallback                 []Coordinate
	ReflectionTemplates      []string
	LifeApplicationTemplates []string
}

// DefaultThemeName is the sentinel theme returned when classification finds
// no signal. Callers treat it as a trigger for broader search, not as a real
// topical match.
const DefaultThemeName = "guidance"

var themes = []*Theme{
	{
		Name:        "patience",
		Description: "Verses on sabr: holding firm through difficulty and delay.",
		Synonyms: []string{
			"patience", "patient", "sabr", "persevere", "perseverance",
			"endure", "endurance", "steadfast", "wait", "waiting", "tolerance",
			"consistent", "consistency", "persist", "persistence",
		},
		PracticalGuidance: []string{
			"When progress stalls, pause and remember that sabr is itself the work.",
			"Keep a short journal of moments you stayed patient and reread it weekly.",
			"Delay reacting to setbacks by one breath and one short dhikr.",
			"Pair every long-term effort with a realistic check-in date.",
		},
		PrayerRecommendation: "O Allah, pour patience upon me and make my feet firm.",
		RelatedHabits: []string{
			"Morning dhikr before checking your phone",
			"One difficult task before any easy one",
			"Weekly review of slow-moving goals",
		},
		SearchTerms: "patience perseverance steadfast",
		GoalTerms:   "patience persevere steadfast endure firm",
		Fallback: []Coordinate{
			{2, 153}, {2, 155}, {3, 200}, {39, 10}, {103, 3},
		},
		ReflectionTemplates: []string{
			"Patience is not passive waiting; it is steady effort while the outcome is out of your hands.",
			"Every delay carries a lesson that speed would have hidden.",
			"The patient heart keeps its footing when circumstances shift.",
		},
		LifeApplicationTemplates: []string{
			"Choose one slow-moving goal today and recommit to it without changing the deadline.",
			"Next time you feel rushed, finish the task at a deliberate pace instead.",
			"Write down one thing you are waiting for and one thing you can do meanwhile.",
		},
	},
	{
		Name:        "prayer",
		Description: "Verses on salah, dua and remembrance as anchors of the day.",
		Synonyms: []string{
			"prayer", "pray", "salah", "salat", "dua", "supplication",
			"worship", "dhikr", "remembrance", "quran", "recite", "recitation",
			"mosque", "masjid", "fajr", "tahajjud",
		},
		PracticalGuidance: []string{
			"Anchor one new commitment to a prayer you already keep.",
			"Keep your prayer space ready so starting costs nothing.",
			"Add one short dua in your own words after each salah.",
			"Set a gentle reminder ten minutes before the next prayer time.",
		},
		PrayerRecommendation: "O Allah, make me one who establishes prayer, and from my descendants too.",
		RelatedHabits: []string{
			"Praying at the earliest time",
			"Two extra rakahs before sleeping",
			"Reciting a page of Quran after Fajr",
		},
		SearchTerms: "prayer worship remembrance",
		GoalTerms:   "prayer remembrance worship devotion bow",
		Fallback: []Coordinate{
			{2, 45}, {29, 45}, {20, 14}, {17, 78}, {2, 238},
		},
		ReflectionTemplates: []string{
			"Prayer is the appointment the rest of the day arranges itself around.",
			"A heart that returns five times a day does not drift far.",
			"Remembrance turns ordinary minutes into anchored ones.",
		},
		LifeApplicationTemplates: []string{
			"Pray your next salah at its earliest time and notice how the day reorders.",
			"Attach one small intention to your next prayer before you begin it.",
			"Tonight, add two quiet minutes of dhikr before sleeping.",
		},
	},
	{
		Name:        "health",
		Description: "Verses on healing, moderation and care for the body as a trust.",
		Synonyms: []string{
			"health", "healthy", "healing", "heal", "cure", "sick", "illness",
			"diet", "food", "eat", "eating", "nutrition", "sleep", "rest",
			"weight", "fasting", "fast",
		},
		PracticalGuidance: []string{
			"Eat from what is wholesome and stop before you are full.",
			"Treat sleep as part of worship preparation, not leftover time.",
			"Fast with intention and break the fast with gratitude.",
			"Book the medical check-up you have been postponing.",
		},
		PrayerRecommendation: "O Allah, grant me wellness in my body, my hearing and my sight.",
		RelatedHabits: []string{
			"Drinking water before every meal",
			"A consistent sleeping hour",
			"Walking after the evening meal",
		},
		SearchTerms: "healing cure wholesome",
		GoalTerms:   "healing wholesome moderation cure body",
		Fallback: []Coordinate{
			{2, 168}, {7, 31}, {16, 69}, {26, 80}, {10, 57},
		},
		ReflectionTemplates: []string{
			"The body is a trust; its care is gratitude in physical form.",
			"Moderation is the quiet discipline behind lasting wellness.",
			"Healing comes from the One who made both the illness and the remedy.",
		},
		LifeApplicationTemplates: []string{
			"Replace one heavy meal this week with something simple and wholesome.",
			"Go to bed early enough tonight to wake for Fajr without strain.",
			"Thank Allah specifically for one part of your health you usually overlook.",
		},
	},
	{
		Name:        "fitness",
		Description: "Verses on strength, striving and disciplined physical effort.",
		Synonyms: []string{
			"fitness", "exercise", "gym", "workout", "train", "training",
			"run", "running", "lift", "lifting", "sport", "sports", "swim",
			"cardio", "muscle", "stamina", "jog",
		},
		PracticalGuidance: []string{
			"Build the exercise habit small: ten minutes daily beats an hour monthly.",
			"Train at the same hour each day so the decision disappears.",
			"Track effort, not appearance; strength compounds quietly.",
			"Rest days are part of the program, not a break from it.",
		},
		PrayerRecommendation: "O Allah, I ask You for beneficial strength and steadfast effort.",
		RelatedHabits: []string{
			"Stretching after Fajr",
			"Taking the stairs by default",
			"A short walk instead of a short scroll",
		},
		SearchTerms: "strength effort strive",
		GoalTerms:   "strive effort persevere strong strength",
		Fallback: []Coordinate{
			{8, 60}, {28, 26}, {2, 247}, {13, 11},
		},
		ReflectionTemplates: []string{
			"The strong believer is more beloved than the weak, and strength is built one repetition at a time.",
			"Physical discipline trains the same will that worship depends on.",
			"Effort made consistently becomes character, not just capability.",
		},
		LifeApplicationTemplates: []string{
			"Do ten minutes of movement today before you negotiate with yourself.",
			"Prepare tomorrow's training clothes tonight so the excuse dies early.",
			"Pick one physical habit small enough that you cannot fail it this week.",
		},
	},
	{
		Name:        "strength",
		Description: "Verses on inner firmness, courage and reliance under pressure.",
		Synonyms: []string{
			"strength", "strong", "power", "powerful", "courage", "brave",
			"firm", "resilience", "resilient", "overcome", "tough", "bold",
			"confidence", "confident",
		},
		PracticalGuidance: []string{
			"Name the fear precisely; vague fears borrow extra weight.",
			"Do the hard thing first while your resolve is freshest.",
			"Lean on counsel: firmness is not the same as going alone.",
			"After every difficulty, record what held you up.",
		},
		PrayerRecommendation: "O Allah, I seek refuge in You from weakness and from cowardice.",
		RelatedHabits: []string{
			"One courageous conversation a week",
			"Reviewing hard decisions in the morning, not at night",
			"Saying no once a day where it is honest",
		},
		SearchTerms: "strength power firm",
		GoalTerms:   "strong firm courage might power",
		Fallback: []Coordinate{
			{8, 60}, {3, 139}, {41, 30}, {2, 286}, {2, 247},
		},
		ReflectionTemplates: []string{
			"No soul is burdened beyond what it can carry; the load certifies the capacity.",
			"Firmness grows in the exact place you keep showing up.",
			"Courage is fear that has performed wudu and stepped forward anyway.",
		},
		LifeApplicationTemplates: []string{
			"Face the one task you have been avoiding, for fifteen minutes, today.",
			"Ask someone you trust to hold you to your hardest commitment.",
			"Stand straighter in the next difficult moment and speak one size shorter.",
		},
	},
	{
		Name:        "change",
		Description: "Verses on transformation beginning from within.",
		Synonyms: []string{
			"change", "improve", "improvement", "transform", "transformation",
			"better", "growth", "grow", "develop", "progress", "renew",
			"repent", "repentance", "tawbah", "quit", "restart",
		},
		PracticalGuidance: []string{
			"Change the inner condition first; circumstances follow it.",
			"Replace an old routine rather than merely deleting it.",
			"Tell one trustworthy person what you intend to become.",
			"Expect relapse, plan the return, and shorten the gap each time.",
		},
		PrayerRecommendation: "O Allah, Turner of hearts, make my heart firm upon Your religion.",
		RelatedHabits: []string{
			"An honest five-minute self-review each night",
			"One istighfar session after any slip",
			"Re-reading your intentions every Friday",
		},
		SearchTerms: "change hearts condition",
		GoalTerms:   "change renew transform return improve",
		Fallback: []Coordinate{
			{13, 11}, {8, 53}, {94, 5}, {94, 6}, {65, 2},
		},
		ReflectionTemplates: []string{
			"Allah does not change a people's condition until they change what is within themselves.",
			"Transformation is a series of small returns, not a single leap.",
			"The door of return stays open longer than the excuse lasts.",
		},
		LifeApplicationTemplates: []string{
			"Pick the smallest version of the change and do it before sunset.",
			"Write one sentence describing who you intend to be in a year.",
			"Forgive yourself for the last failure and restart the count at one.",
		},
	},
	{
		Name:        "family",
		Description: "Verses on parents, children and mercy within the household.",
		Synonyms: []string{
			"family", "parent", "parents", "mother", "father", "children",
			"child", "kids", "son", "daughter", "wife", "husband", "spouse",
			"marriage", "home", "household", "relatives",
		},
		PracticalGuidance: []string{
			"Give your family your first energy, not your leftover energy.",
			"Call your parents before they wonder whether you will.",
			"Eat one meal together with no screens at the table.",
			"Praise specifically; correct privately and gently.",
		},
		PrayerRecommendation: "Our Lord, grant us comfort in our spouses and our children.",
		RelatedHabits: []string{
			"A standing weekly call with parents",
			"Fifteen undistracted minutes with each child",
			"One household task done unasked",
		},
		SearchTerms: "family parents children",
		GoalTerms:   "parents children kindness mercy household",
		Fallback: []Coordinate{
			{25, 74}, {17, 23}, {17, 24}, {31, 14}, {66, 6},
		},
		ReflectionTemplates: []string{
			"Mercy at home is the first charity and the most repeated one.",
			"The people nearest to you have the first claim on your character.",
			"A gentle word inside the house outweighs a fine speech outside it.",
		},
		LifeApplicationTemplates: []string{
			"Send your parents a message of gratitude before the day ends.",
			"Plan one unhurried hour with your family this week and protect it.",
			"Lower your voice at home today, especially when you are right.",
		},
	},
	{
		Name:        "anxiety",
		Description: "Verses on ease after hardship and rest for the remembering heart.",
		Synonyms: []string{
			"anxiety", "anxious", "worry", "worried", "stress", "stressed",
			"fear", "afraid", "overwhelmed", "depressed", "depression", "sad",
			"sadness", "grief", "panic", "calm", "peace",
		},
		PracticalGuidance: []string{
			"Bring the worry into words; unspoken fears grow in the dark.",
			"Trade one doomscroll session for one dhikr session.",
			"Do the next small right action; mood follows motion.",
			"Keep a list of past hardships that resolved; reread it when the chest tightens.",
		},
		PrayerRecommendation: "O Allah, I seek refuge in You from worry and grief.",
		RelatedHabits: []string{
			"Morning and evening adhkar",
			"A walk outside at the anxious hour",
			"Writing three lines before sleep",
		},
		SearchTerms: "hearts rest ease",
		GoalTerms:   "ease comfort peace rest hearts",
		Fallback: []Coordinate{
			{13, 28}, {94, 5}, {94, 6}, {2, 286}, {65, 3},
		},
		ReflectionTemplates: []string{
			"Hearts find rest in remembrance, not in resolution of every unknown.",
			"With the hardship comes ease, alongside it and not only after it.",
			"What is decreed to reach you was never going to miss you.",
		},
		LifeApplicationTemplates: []string{
			"When the worry returns today, answer it with one specific dhikr.",
			"Write the worst case down, then write the first step you would take.",
			"Shrink today to its own trouble; tomorrow already has a caretaker.",
		},
	},
	{
		Name:        "success",
		Description: "Verses on felicity, honest work and purification of aim.",
		Synonyms: []string{
			"success", "succeed", "successful", "achieve", "achievement",
			"accomplish", "goal", "goals", "career", "business", "promotion",
			"wealth", "money", "prosper", "win", "ambition", "study", "exam",
			"learn", "learning",
		},
		PracticalGuidance: []string{
			"Tie the ambition to a purpose that outlives the milestone.",
			"Work in focused blocks and guard them like appointments.",
			"Measure the week, not the mood.",
			"Share the reward early: plan the charity before the profit.",
		},
		PrayerRecommendation: "O Allah, I ask You for beneficial knowledge, good provision and accepted work.",
		RelatedHabits: []string{
			"Planning tomorrow before closing today",
			"Deep work before correspondence",
			"A standing sadaqah from every gain",
		},
		SearchTerms: "success prosper felicity",
		GoalTerms:   "prosper attain triumph felicity achieve",
		Fallback: []Coordinate{
			{23, 1}, {62, 10}, {87, 14}, {91, 9}, {3, 200},
		},
		ReflectionTemplates: []string{
			"True felicity is measured at the end of the road, not at the applause points.",
			"Provision is apportioned; effort is commanded; outcomes are entrusted.",
			"The purified aim outperforms the ambitious one over any long distance.",
		},
		LifeApplicationTemplates: []string{
			"Define what 'enough' looks like for this goal before pursuing more of it.",
			"Do the most valuable task of the day before opening your inbox.",
			"Attach a small act of giving to your next achievement.",
		},
	},
	{
		Name:        "guidance",
		Description: "Verses asking for the straight path when the way is unclear.",
		Synonyms: []string{
			"guidance", "guide", "direction", "path", "way", "decision",
			"decide", "confused", "lost", "clarity", "wisdom", "istikhara",
			"purpose", "meaning",
		},
		PracticalGuidance: []string{
			"Ask for the path out loud; guidance is requested, not ambushed.",
			"Consult someone of knowledge before someone of enthusiasm.",
			"Take the step you can see; the next one appears afterward.",
			"Revisit your intention whenever the route gets noisy.",
		},
		PrayerRecommendation: "O Allah, guide me among those You have guided.",
		RelatedHabits: []string{
			"Istikhara before significant decisions",
			"A few verses with meaning every morning",
			"A monthly hour of quiet self-accounting",
		},
		SearchTerms: "guidance straight path",
		GoalTerms:   "guidance light path wisdom clarity",
		Fallback: []Coordinate{
			{1, 6}, {2, 2}, {20, 123}, {6, 125}, {42, 52},
		},
		ReflectionTemplates: []string{
			"The straight path is asked for seventeen times a day because drift is daily too.",
			"Guidance arrives at walking pace, one honest step at a time.",
			"Clarity is given to the one who acts on the clarity already given.",
		},
		LifeApplicationTemplates: []string{
			"Before your next decision, pray two rakahs and write the options down.",
			"Ask one person of sound judgment the question you keep circling.",
			"Act today on the one thing you already know is right.",
		},
	},
}

// genericGuidancePhrases is the pool the query builder samples from to add
// result diversity across repeated lookups of the same goal.
var genericGuidancePhrases = []string{
	"trust in Allah",
	"seek help through patience",
	"remembrance of Allah",
	"put your trust",
	"glad tidings to the believers",
	"guidance and mercy",
}

// themeBoostPhrases adds extra queries for a hardcoded subset of themes whose
// goals benefit from broader phrasing.
var themeBoostPhrases = map[string][]string{
	"fitness": {"prepare against them what you can of strength", "strong and trustworthy"},
	"health":  {"healing for what is in the hearts", "eat of what is lawful and wholesome"},
	"prayer":  {"establish prayer", "prostrate and draw near"},
	"family":  {"comfort of our eyes", "lower to them the wing of humility"},
	"success": {"successful indeed are the believers", "that you may succeed"},
}

// Themes returns the fixed theme registry in registration order.
func Themes() []*Theme {
	return themes
}

// ThemeByName finds a registered theme by name, or nil.
func ThemeByName(name string) *Theme {
	for _, theme := range themes {
		if theme.Name == name {
			return theme
		}
	}
	return nil
}

// DefaultTheme returns the sentinel fallback theme.
func DefaultTheme() *Theme {
	return ThemeByName(DefaultThemeName)
}
