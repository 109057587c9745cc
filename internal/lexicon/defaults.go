package lexicon

// defaultTables mirrors config/lexicon.yaml so the binary and tests work
// without the data file. The file, when present, replaces these wholesale.
func defaultTables() tables {
	return tables{
		PolarityWords: map[string]float64{
			"happy": 0.6, "optimistic": 0.6, "good": 0.5, "great": 0.6,
			"wonderful": 0.7, "calm": 0.5, "relaxed": 0.5, "relax": 0.5,
			"peaceful": 0.5, "peace": 0.5, "joy": 0.6, "content": 0.4,
			"well": 0.4, "rested": 0.5, "balanced": 0.5, "enjoy": 0.5,
			"enjoyed": 0.5, "healthy": 0.5, "smoothly": 0.4, "better": 0.4,
			"hopeful": 0.5, "grateful": 0.5, "love": 0.6, "fine": 0.3,
			"okay": 0.3,

			"sad": -0.6, "depressed": -0.8, "depressing": -0.7,
			"stressed": -0.5, "stress": -0.5, "overwhelmed": -0.6,
			"overwhelming": -0.6, "anxious": -0.6, "anxiety": -0.6,
			"worried": -0.5, "worry": -0.5, "afraid": -0.5, "scared": -0.5,
			"fear": -0.5, "panic": -0.7, "hopeless": -0.8, "lonely": -0.6,
			"tired": -0.4, "exhausted": -0.5, "angry": -0.5, "upset": -0.5,
			"miserable": -0.7, "terrible": -0.6, "awful": -0.6,
			"trouble": -0.4, "pressure": -0.4, "hurt": -0.5, "hurting": -0.5,
			"pain": -0.5, "crying": -0.6, "worthless": -0.8, "numb": -0.5,
			"empty": -0.5,
		},
		PolarityPhrases: map[string]float64{
			"trouble sleeping": -0.5,
			"cant sleep":       -0.5,
			"burned out":       -0.6,
			"fed up":           -0.5,
			"on edge":          -0.5,
			"harming myself":   -0.9,
			"harm myself":      -0.9,
			"hurt myself":      -0.9,
			"kill myself":      -1.0,
			"end my life":      -1.0,
			"want to die":      -1.0,
		},
		Negators: []string{
			"not", "no", "never", "nothing", "dont", "doesnt", "didnt",
			"cant", "wont", "isnt", "arent", "hardly", "without",
		},
		Intensifiers: []string{
			"very", "really", "so", "extremely", "incredibly", "deeply", "too",
		},
		CrisisTriggers: map[string][]string{
			"self-harm": {
				"harm myself", "harming myself", "hurt myself", "hurting myself",
				"cut myself", "cutting myself", "self harm", "selfharm",
				"injure myself",
			},
			"suicidal-ideation": {
				"kill myself", "killing myself", "suicide", "suicidal",
				"end my life", "ending my life", "want to die", "wish i was dead",
				"better off dead", "no reason to live", "end it all",
				"take my own life",
			},
			"hopelessness": {
				"no way out", "cant go on", "nothing matters anymore",
				"give up on life", "no point in living", "life is not worth",
			},
		},
		Categories: map[string][]string{
			string(AxisStress): {
				"stress", "overwhelm", "pressure", "tense", "strain",
				"burnout", "burned out", "overloaded", "rushed",
			},
			string(AxisAnxiety): {
				"anxious", "anxiety", "worry", "worried", "nervous", "fear",
				"panic", "uneasy", "restless", "on edge",
			},
			string(AxisDepression): {
				"sad", "depressed", "depression", "hopeless", "tired",
				"exhausted", "empty", "worthless", "lonely", "miserable",
				"lost interest", "no energy", "crying",
			},
			string(AxisPositiveCoping): {
				"good", "happy", "calm", "relax", "peace", "joy", "content",
				"balanced", "rested", "enjoy", "exercise", "meditate",
				"hobbies", "friends", "smoothly", "healthy",
			},
		},
		Recommendations: map[string][]string{
			string(RecStress): {
				"Practice deep breathing exercises or meditation to reduce stress",
				"Build short breaks into your day to decompress",
			},
			string(RecAnxiety): {
				"Consider mindfulness techniques to manage anxiety",
				"Limit caffeine and try grounding exercises when worry spikes",
			},
			string(RecDepression): {
				"Reach out to a mental health professional for support",
				"Keep in touch with people you trust, even briefly",
			},
			string(RecWellbeing): {
				"Establish a regular sleep schedule and prioritize self-care",
			},
			string(RecGeneric): {
				"Engage in regular physical activity",
				"Connect with friends and family regularly",
				"Maintain a balanced diet and stay hydrated",
			},
		},
	}
}
