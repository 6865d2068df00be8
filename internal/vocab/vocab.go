// Package vocab supplies the Korean/English word pairs the game quizzes on.
// Pairs come from a bundled list or from an optional CSV file with a
// "korean,english" header.
package vocab

// Pair is one vocabulary entry.
type Pair struct {
	Korean  string
	English string
}

// builtin is the bundled fallback vocabulary (romanized Korean).
var builtin = []Pair{
	{"mul", "water"},
	{"annyeong", "hello"},
	{"gamsahamnida", "thank you"},
	{"bap", "rice"},
	{"sarang", "love"},
	{"mianhae", "sorry"},
	{"nae", "yes"},
	{"ani", "no"},
	{"juseyo", "please"},
	{"eolmayo", "how much"},
	{"jip", "house"},
	{"sigan", "time"},
	{"saram", "person"},
	{"chingu", "friend"},
	{"gajok", "family"},
	{"hakgyo", "school"},
	{"hoesa", "office"},
	{"byeongwon", "hospital"},
	{"sijang", "market"},
	{"eumsik", "food"},
	{"oneul", "today"},
	{"naeil", "tomorrow"},
	{"eoje", "yesterday"},
	{"nalssi", "weather"},
	{"hana", "one"},
	{"dul", "two"},
	{"set", "three"},
	{"yeol", "ten"},
	{"baek", "hundred"},
	{"haengbok", "happiness"},
	{"seulpeum", "sadness"},
	{"hwa", "anger"},
	{"utda", "smile"},
	{"meokda", "to eat"},
	{"masida", "to drink"},
	{"gada", "to go"},
	{"oda", "to come"},
	{"jada", "to sleep"},
	{"gongwon", "park"},
	{"doseogwan", "library"},
	{"gyohoe", "church"},
	{"gage", "store"},
	{"eunhaeng", "bank"},
	{"ucheguk", "post office"},
	{"sikdang", "restaurant"},
	{"kape", "cafe"},
	{"gonghang", "airport"},
	{"bada", "sea"},
	{"chaek", "book"},
}

// Builtin returns a copy of the bundled vocabulary.
func Builtin() []Pair {
	out := make([]Pair, len(builtin))
	copy(out, builtin)
	return out
}

// Dedupe removes repeated pairs, keeping the first occurrence.
func Dedupe(pairs []Pair) []Pair {
	seen := make(map[Pair]bool, len(pairs))
	out := make([]Pair, 0, len(pairs))
	for _, p := range pairs {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
