package usecase

const (
	welcomeSpeech   = "Welcome to Star Gazer. You can ask Star Gazer to tell you about a constellation by saying something like, tell me about ursa minor? ... Now, what can I help you with."
	welcomeReprompt = "For instructions on what you can say, please say help me."

	moreInfoPrompt = "Would you like to hear more?"

	mythFollowUp = "... I hope you enjoyed that myth. Is there anything else I can help you with?"
	mythReprompt = "Is there anything else can I help you with?"

	unknownConstellation = "I'm sorry, I currently do not have information about that constellation, or I did not understand what you said. Try to repeat yourself, or for help, say help."

	noPriorConstellation = "I'm sorry, I don't know which constellation you'd like to hear more about. Ask me about a constellation first, for example, tell me about ursa minor."

	stopSpeech = "Enjoy the stars."

	cancelSpeech = "Sorry about that. I canceled that last action for you. Is there something else I can help you with. For help, say help."

	helpSpeech = "You can ask Star Gazer to tell you about a constellation. You can say, Alexa, ask Star Gazer to tell me about Ursa Minor, or, you can say, exit, to close the skill... Now, what can I help you with?"

	fallbackSpeech = "I'm not sure how to help with that. You can ask Star Gazer to tell you about a constellation, or for help, say help."
)

const (
	infoCardSuffix = ": Information"
	mythCardSuffix = ": Myth"
)
