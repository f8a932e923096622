package usecase

import "strings"

// instantAnswers maps exact (lowercased, trimmed) questions to canned replies.
// This is a literal lookup, not retrieval: anything that misses the table falls
// through to the placeholder reply.
var instantAnswers = map[string]string{
	"hi":                    "Hello! I'm Fynorra's AI assistant. How can I help you today?",
	"hello":                 "Hi there! Ask me anything about Fynorra.",
	"hey":                   "Hey! Need help with Fynorra?",
	"how are you":           "I'm doing great! Ready to assist with anything related to Fynorra.",
	"what's up":             "All good here! Let me know what you'd like to explore in Fynorra.",
	"what is fynorra":       "Fynorra is an AI automation platform to build models, APIs, and automate workflows, no coding needed.",
	"what does fynorra do":  "Fynorra helps businesses automate tasks, train AI models, and deploy smart APIs quickly.",
	"how can i use fynorra": "You can upload your data, fine-tune models, generate APIs, and automate workflows in minutes.",
	"is fynorra free":       "Yes! Fynorra offers a free plan for basic features, plus pro and enterprise tiers.",
	"who built fynorra":     "Fynorra is built by AI experts aiming to simplify intelligent automation for everyone.",
	"fynorra features":      "Fynorra offers model training, API generation, custom chatbots, workflow automation, and more.",
	"fynorra contact":       "Reach out to us at info@fynorra.com or use the contact form on our site.",
	"goodbye":               "Goodbye! Feel free to come back anytime if you have more questions.",
	"bye":                   "Goodbye! Feel free to come back anytime if you have more questions.",
}

// lookupInstant returns the canned reply for an exact-match question, if any.
func lookupInstant(question string) (string, bool) {
	reply, ok := instantAnswers[strings.ToLower(strings.TrimSpace(question))]
	return reply, ok
}
