package config

// PassName identifies one transform pass in a profile's pipeline order.
type PassName string

const (
	PassStructural  PassName = "structural"
	PassRepetition  PassName = "repetition"
	PassLengthVar   PassName = "lengthvar"
	PassPunctuation PassName = "punctuation"
	PassParagraph   PassName = "paragraph"
	PassLiveliness  PassName = "liveliness"
	PassBurstiness  PassName = "burstiness"
)

// Profile bundles pass enablement and pipeline parameters under a name.
// Pass order within a profile is significant and fixed.
type Profile struct {
	Name string
	// Passes lists enabled passes in execution order.
	Passes []PassName
	// TargetSentenceLen is the desired upper bound on sentence word count
	// used by the structural pass when hunting overlong sentences.
	TargetSentenceLen int
	// MaxConnectorSwaps caps connector replacements per structural call.
	MaxConnectorSwaps int
}

var profiles = map[string]Profile{
	"web": {
		Name: "web",
		Passes: []PassName{
			PassStructural, PassRepetition, PassLengthVar,
			PassPunctuation, PassParagraph, PassBurstiness,
		},
		TargetSentenceLen: 20,
		MaxConnectorSwaps: 3,
	},
	"chat": {
		Name: "chat",
		Passes: []PassName{
			PassStructural, PassRepetition, PassLengthVar,
			PassPunctuation, PassLiveliness, PassBurstiness,
		},
		TargetSentenceLen: 16,
		MaxConnectorSwaps: 4,
	},
	"formal": {
		Name: "formal",
		Passes: []PassName{
			PassRepetition, PassLengthVar, PassPunctuation, PassParagraph,
		},
		TargetSentenceLen: 24,
		MaxConnectorSwaps: 2,
	},
	"academic": {
		Name: "academic",
		Passes: []PassName{
			PassStructural, PassRepetition, PassParagraph,
		},
		TargetSentenceLen: 28,
		MaxConnectorSwaps: 2,
	},
}

var profileNormalizer = NewNormalizer(map[string]string{
	"web":      "web",
	"chat":     "chat",
	"formal":   "formal",
	"academic": "academic",
}, "web")

// ResolveProfile returns the named profile. Unknown names are a caller
// contract violation and surface an error rather than a silent default.
func ResolveProfile(name string) (Profile, error) {
	key, err := profileNormalizer.NormalizeWithError(name)
	if err != nil {
		return Profile{}, err
	}
	return profiles[key], nil
}

// ProfileNames returns the names of all known profiles.
func ProfileNames() []string {
	return profileNormalizer.ValidKeys()
}
