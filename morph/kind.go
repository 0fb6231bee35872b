package morph

// Kind names one category of inflectional morphology. The declaration order is
// the canonical order in which feature bundles are rendered
type Kind int

const (
	Tense Kind = iota
	Definiteness
	Aspect
	Mood
	Number
	Gender
	Case
	Person
	Possession
	Voice
)

// kindLabels holds the short labels used when features are rendered into tags
var kindLabels = []string{`TENSE`, `DEF`, `ASP`, `MOOD`, `NUM`, `GEN`, `CASE`, `PER`, `POSS`, `VOICE`}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindLabels) {
		return kindLabels[k]
	}
	return `*UNKNOWN KIND*`
}

// Kinds returns all kinds in canonical order
func Kinds() []Kind {
	ks := make([]Kind, len(kindLabels))
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// ParseKind returns the kind with the given label
func ParseKind(label string) (Kind, bool) {
	for i, l := range kindLabels {
		if l == label {
			return Kind(i), true
		}
	}
	return 0, false
}
