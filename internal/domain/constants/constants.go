// Package constants contains values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Vision providers.
const (
	VisionProviderGoogle      = "google"
	VisionProviderRekognition = "rekognition"
)

// Text generation providers.
const (
	TextGenProviderOpenAI = "openai"
	TextGenProviderGemini = "gemini"
)

// Mail providers.
const (
	MailProviderSES = "ses"
	MailProviderLog = "log"
)
