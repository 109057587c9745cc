package usecase

// CrisisReply is the fixed safe reply for crisis-flagged messages. It must
// always mention professional help and support resources; ordinary reply
// composition never runs for these messages.
const CrisisReply = "I'm really concerned about what you're going through, and I want you to know " +
	"you don't have to face this alone. Please reach out to a mental health professional " +
	"or a crisis support line right now - in the US you can call or text 988 at any time. " +
	"If you are in immediate danger, please call emergency services. Talking to someone " +
	"who can help is a strong first step, and there are people ready to support you."

// CounselorSystemPrompt frames the generative reply path.
const CounselorSystemPrompt = "You are an empathetic AI counselor helping a person express " +
	"their emotions. Focus on understanding and validating their feelings while helping them " +
	"articulate their thoughts clearly. Always maintain a supportive and non-judgmental tone."

// DraftSystemPrompt frames the message-drafting path.
const DraftSystemPrompt = "You are an AI communication assistant helping a person craft a " +
	"message to their support network. Help them express their needs and feelings clearly " +
	"while maintaining appropriate boundaries. Focus on constructive and honest communication."

// Deterministic reply templates, keyed by sentiment label. Used when no LLM
// provider is configured or the provider chain fails.
var (
	negativeReplies = []string{
		"That sounds really difficult. Thank you for sharing it with me - would you like to talk more about what has been weighing on you?",
		"I'm sorry you're going through this. It takes courage to put these feelings into words. What do you think has been hardest lately?",
		"It sounds like things have been heavy for you. I'm here to listen - sometimes naming what we feel is a good place to start.",
	}
	positiveReplies = []string{
		"I'm glad to hear things are going well for you! What do you think has been helping the most?",
		"That's wonderful to hear. It's worth noticing what's working so you can keep it up - want to tell me more?",
		"It sounds like you're in a good place right now. Celebrating these moments matters - what else has been bringing you joy?",
	}
	neutralReplies = []string{
		"Thank you for sharing that with me. How have you been feeling about it?",
		"I hear you. Would you like to tell me more about what's been on your mind?",
		"I'm here to listen. What would feel most helpful to talk about right now?",
	}
)

// DraftSuggestions is the fixed guidance attached to every drafted message.
var DraftSuggestions = []string{
	"Be specific about what kind of support you need",
	"Express your feelings using 'I' statements",
	"Thank them for their time and support",
}
