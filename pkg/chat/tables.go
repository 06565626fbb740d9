package chat

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tables holds every keyword, alias, and phrase list the classifier and
// extractors match against. The compiled-in defaults cover the known typo
// variants; a YAML file can replace any list without a code change.
type Tables struct {
	// Abuse detection: standalone words require a whole-word hit so that
	// innocent words containing them don't trip the filter; longer phrases
	// match as substrings.
	AbuseWords   []string `yaml:"abuse_words"`
	AbusePhrases []string `yaml:"abuse_phrases"`

	// "who/what are you" style questions.
	MetaPhrases []string `yaml:"meta_phrases"`

	GreetingWords []string `yaml:"greeting_words"`
	// Stray filler words stripped before greeting detection.
	FillerWords []string `yaml:"filler_words"`

	// Short thanks tokens need an exact whole-word match ("ty" is inside
	// plenty of words); the phrases match as substrings.
	ThanksShort   []string `yaml:"thanks_short"`
	ThanksPhrases []string `yaml:"thanks_phrases"`

	ByeShort   []string `yaml:"bye_short"`
	ByePhrases []string `yaml:"bye_phrases"`

	OkayWords []string `yaml:"okay_words"`

	// Canonical fest id -> known spelling variants.
	FestAliases map[string][]string `yaml:"fest_aliases"`

	// Keywords that force a fest question down the retrieval path instead of
	// the canned fest blurb.
	DeepQuestionWords []string `yaml:"deep_question_words"`

	// Relevance gate vocabulary.
	RelevanceWords []string `yaml:"relevance_words"`
	CoreVocabulary []string `yaml:"core_vocabulary"`

	ListWords           []string `yaml:"list_words"`
	EventIndicators     []string `yaml:"event_indicators"`
	RegistrationPhrases []string `yaml:"registration_phrases"`

	// Category name -> keyword set. Hits are independent, not exclusive.
	CategoryKeywords map[string][]string `yaml:"category_keywords"`

	// Aspect name -> keyword set, typos included.
	AspectKeywords map[string][]string `yaml:"aspect_keywords"`
}

// DefaultTables returns the compiled-in keyword tables.
func DefaultTables() *Tables {
	return &Tables{
		AbuseWords: []string{
			"idiot", "stupid", "dumb", "fool", "nonsense", "trash", "useless",
		},
		AbusePhrases: []string{
			"shut up", "screw you", "waste of time", "you suck", "piece of crap",
		},
		MetaPhrases: []string{
			"who are you", "what are you", "are you a bot", "are you human",
			"are you real", "who made you", "who created you", "what can you do",
		},
		GreetingWords: []string{
			"hi", "hello", "hey", "hai", "hii", "heyy", "hola", "greetings", "yo",
			"namaste", "vanakkam",
		},
		FillerWords: []string{
			"dear", "bro", "sir", "madam", "there", "dude", "team", "guys", "ji",
		},
		ThanksShort:   []string{"ty", "thx", "tysm", "tnx"},
		ThanksPhrases: []string{"thanks", "thank you", "thankyou", "appreciate"},
		ByeShort:      []string{"no", "bye", "later", "exit", "quit", "close"},
		ByePhrases:    []string{"goodbye", "good bye", "see you", "see ya", "cya", "good night"},
		OkayWords:     []string{"k", "kk", "ok"},
		FestAliases: map[string][]string{
			"brahma": {
				"brahma", "bramha", "brhama", "brahmma", "bhrama", "brahama",
			},
			"ashwamedha": {
				"ashwamedha", "aswamedha", "ashwameda", "ashwamedh", "asvamedha",
				"ashwamedhaa",
			},
		},
		DeepQuestionWords: []string{
			"history", "origin", "founded", "started", "legacy", "background",
			"who runs", "organizers", "sponsors", "theme",
		},
		RelevanceWords: []string{
			"event", "events", "fest", "festival", "workshop", "competition",
			"register", "registration", "venue", "time", "date", "schedule",
			"coordinator", "prize", "slots", "poster", "amount", "fee", "ticket",
			"proshow", "college", "asiet", "what is", "tell me", "how to",
		},
		CoreVocabulary: []string{
			"event", "festival", "brahma", "ashwamedha",
		},
		ListWords: []string{
			"list", "all", "show", "which events", "what events", "what all",
			"everything", "available",
		},
		EventIndicators: []string{
			"event", "events", "fest", "festival", "program", "programs",
			"competition", "competitions", "show", "shows",
		},
		RegistrationPhrases: []string{
			"how to register", "how do i register", "registration steps",
			"registration process", "register for", "how to apply", "sign up",
			"how to enroll", "how to participate",
		},
		CategoryKeywords: map[string][]string{
			"general":   {"general"},
			"cultural":  {"cultural", "culturals", "arts", "dance", "music"},
			"technical": {"technical", "tech", "coding", "robotics"},
		},
		AspectKeywords: map[string][]string{
			"venue": {
				"venue", "venu", "vennue", "where", "location", "place", "hall",
				"auditorium",
			},
			"time": {
				"time", "when", "clock", "oclock", "timing", "timings",
			},
			"date": {
				"date", "when", "day", "which day", "schedule",
			},
			"coordinator": {
				"coordinator", "cordinator", "co-ordinator", "coordinater",
				"contact", "phone", "fone", "phn", "number", "whom", "incharge",
				"organizer",
			},
			"what": {
				"what is", "about", "details", "describe", "explain", "info",
			},
			"fest": {
				"fest", "festival", "which fest", "part of",
			},
			"slots": {
				"slots", "slot", "seats", "seat", "vacancy", "vacancies", "spots",
				"capacity",
			},
			"poster": {
				"poster", "poster link", "image", "flyer", "brochure",
			},
			"amount": {
				"amount", "fee", "fees", "price", "cost", "charge", "payment",
				"money", "rupees",
			},
			"category": {
				"category", "categories", "type of event", "kind of event",
			},
		},
	}
}

// LoadTables reads keyword tables from a YAML file. Lists present in the file
// replace the defaults wholesale; absent lists keep their defaults.
func LoadTables(path string) (*Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables file: %w", err)
	}

	var override Tables
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	tables.merge(&override)
	return tables, nil
}

func (t *Tables) merge(o *Tables) {
	if len(o.AbuseWords) > 0 {
		t.AbuseWords = o.AbuseWords
	}
	if len(o.AbusePhrases) > 0 {
		t.AbusePhrases = o.AbusePhrases
	}
	if len(o.MetaPhrases) > 0 {
		t.MetaPhrases = o.MetaPhrases
	}
	if len(o.GreetingWords) > 0 {
		t.GreetingWords = o.GreetingWords
	}
	if len(o.FillerWords) > 0 {
		t.FillerWords = o.FillerWords
	}
	if len(o.ThanksShort) > 0 {
		t.ThanksShort = o.ThanksShort
	}
	if len(o.ThanksPhrases) > 0 {
		t.ThanksPhrases = o.ThanksPhrases
	}
	if len(o.ByeShort) > 0 {
		t.ByeShort = o.ByeShort
	}
	if len(o.ByePhrases) > 0 {
		t.ByePhrases = o.ByePhrases
	}
	if len(o.OkayWords) > 0 {
		t.OkayWords = o.OkayWords
	}
	if len(o.FestAliases) > 0 {
		t.FestAliases = o.FestAliases
	}
	if len(o.DeepQuestionWords) > 0 {
		t.DeepQuestionWords = o.DeepQuestionWords
	}
	if len(o.RelevanceWords) > 0 {
		t.RelevanceWords = o.RelevanceWords
	}
	if len(o.CoreVocabulary) > 0 {
		t.CoreVocabulary = o.CoreVocabulary
	}
	if len(o.ListWords) > 0 {
		t.ListWords = o.ListWords
	}
	if len(o.EventIndicators) > 0 {
		t.EventIndicators = o.EventIndicators
	}
	if len(o.RegistrationPhrases) > 0 {
		t.RegistrationPhrases = o.RegistrationPhrases
	}
	if len(o.CategoryKeywords) > 0 {
		t.CategoryKeywords = o.CategoryKeywords
	}
	if len(o.AspectKeywords) > 0 {
		t.AspectKeywords = o.AspectKeywords
	}
}
