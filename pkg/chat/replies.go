package chat

// Fixed replies and small phrasing clusters for the non-catalog branches.
// The picker chooses among cluster entries; single-string replies are
// always returned verbatim.

const (
	// ReplyEmptyInput is returned for blank input before any other rule runs.
	ReplyEmptyInput = "Please ask a question."

	// ReplyApology covers any unexpected internal failure.
	ReplyApology = "Sorry, something went wrong. Please try again."

	// ReplyNoInformation is returned when the fallback path finds nothing.
	ReplyNoInformation = "I don't have information about that. Try asking about Brahma '26 or Ashwamedha '26 events, registration, or schedules."

	// ReplyMetaQuestion reminds the user of the bot's scope.
	ReplyMetaQuestion = "I'm the ASIET fest assistant! I can help you with Brahma '26 and Ashwamedha '26 — events, venues, timings, fees, and registration."
)

var greetingReplies = []string{
	"Hello! 👋 I'm here to help you with Brahma '26 and Ashwamedha '26. Ask me about events, venues, timings, or registration!",
	"Hi there! 😊 I can help you find events, schedules, and registration details for our fests. What would you like to know?",
	"Hey! 🎉 Welcome! Ask me anything about Brahma '26 and Ashwamedha '26 events.",
	"Greetings! I'm here to help with ASIET fest info. Ask about any event, its venue, timing, or how to register!",
}

var thanksReplies = []string{
	"You're welcome! Feel free to ask if you need anything else about the fests! 😊",
	"Happy to help! Let me know if you have more questions! 🎉",
	"Glad I could help! Ask away if you need more information!",
	"Anytime! See you at the fest! 🎊",
}

var byeReplies = []string{
	"Goodbye! 👋 Come back if you have more questions about the fests.",
	"See you later! 😊 I'm here whenever you need event information.",
	"Bye! Have a great day! 🎉",
	"Take care! 🌟 Reach out anytime for fest information.",
}

var okayReplies = []string{
	"Great! Anything else you'd like to know?",
	"👍 Let me know if you need anything else.",
	"Cool! Ask me anything about the fests whenever you like.",
}

var abuseReplies = []string{
	"Let's keep it friendly! I'm happy to help with fest questions.",
	"I'd rather talk about the fests. Ask me about events or registration!",
}

var outOfContextReplies = []string{
	"I can only help with Brahma '26 and Ashwamedha '26 events at ASIET.",
	"That's not related to our fests. Ask me about events, venues, or registration!",
	"I specialize in ASIET fest info. Please ask about events, timings, or fees!",
}

// festBlurbs answer the simple "what is X" ask per fest.
var festBlurbs = map[string][]string{
	"brahma": {
		"Brahma '26 is ASIET's annual cultural festival — proshows, competitions, and performances across campus. Ask me about any of its events!",
		"Brahma '26 is our flagship cultural fest at ASIET, packed with shows and competitions. Want the event list?",
	},
	"ashwamedha": {
		"Ashwamedha '26 is ASIET's technical festival — workshops, hackathons, and tech competitions. Ask me about any of its events!",
		"Ashwamedha '26 is our technical fest at ASIET, full of workshops and contests. Want the event list?",
	},
}

var registrationReplies = []string{
	"To register for %s events: open the fest portal, pick your event, fill in your details, and pay the fee if the event has one. Your pass arrives by email.",
	"Registration for %s is through the fest portal — choose the event, submit the form, and complete payment where applicable.",
}

// ReplyRegistrationDisambiguation is used when no fest could be resolved
// from a registration question.
const ReplyRegistrationDisambiguation = "Which fest do you want to register for — Brahma '26 or Ashwamedha '26?"

// festDisplayNames maps canonical fest ids to the names used in replies.
var festDisplayNames = map[string]string{
	"brahma":     "Brahma '26",
	"ashwamedha": "Ashwamedha '26",
}

// FestDisplayName returns the presentation name for a canonical fest id.
func FestDisplayName(id string) string {
	if name, ok := festDisplayNames[id]; ok {
		return name
	}
	return id
}
