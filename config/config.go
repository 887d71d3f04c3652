package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
	defaultMaxImageBytes      = 8 << 20
	defaultVisionMaxResults   = 10
	defaultTextGenMaxTokens   = 150
	defaultTextGenTemperature = 0.3
	defaultIdentityFanOut     = 8
	defaultResetTokenTTL      = 30 * time.Minute
	defaultSlowQuery          = 200 * time.Millisecond
	defaultQRCodeSize         = 256
	defaultPasswordMinLength  = 6
	defaultNotifierPort       = 8081
	defaultNotifierPushPath   = "/push"
	defaultNotifierEventAge   = time.Hour
)

// Content store backends.
const (
	ContentStorePostgres  = "postgres"
	ContentStoreFirestore = "firestore"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
		Reset   string `json:"reset" yaml:"reset"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Store selects where recipes, reviews, comments, saved items and chats live.
	Store *StoreConfig `json:"store" yaml:"store"`

	Firestore *FirestoreConfig `json:"firestore" yaml:"firestore"`

	// Blob configures image storage.
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	Vision *VisionConfig `json:"vision" yaml:"vision"`

	TextGen *TextGenConfig `json:"textGen" yaml:"textGen"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	AWS *AWSConfig `json:"aws" yaml:"aws"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for business contact QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Notifier configures the push worker binary.
	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	AccessTTL         time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL        time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	ResetTTL          time.Duration `json:"resetTTL" yaml:"resetTTL"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig picks the content store backend: "postgres" (default) or "firestore".
type StoreConfig struct {
	Content string `json:"content" yaml:"content"`
	// AutoMigrate creates missing Postgres tables on start-up.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	// SlowQuery is the duration after which a SQL statement is logged as slow.
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// FirestoreConfig defines the Firestore client settings
type FirestoreConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	DatabaseID      string `json:"databaseId" yaml:"databaseId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// BlobConfig defines image storage.
type BlobConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. gs://makan-images, s3://bucket?region=ap-southeast-1,
	// file:///var/makan/images or mem://.
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is prefixed to object keys to build the returned image URL.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxImageBytes int64 `json:"maxImageBytes" yaml:"maxImageBytes"`
}

// VisionConfig defines the image labelling provider
type VisionConfig struct {
	// Provider: "google" (Cloud Vision) or "rekognition" (AWS)
	Provider      string  `json:"provider" yaml:"provider"`
	APIKey        string  `json:"apiKey" yaml:"apiKey"`
	MaxResults    int     `json:"maxResults" yaml:"maxResults"`
	MinConfidence float64 `json:"minConfidence" yaml:"minConfidence"`
}

// TextGenConfig defines the text-generation provider
type TextGenConfig struct {
	// Provider: "openai" or "gemini"
	Provider    string  `json:"provider" yaml:"provider"`
	APIKey      string  `json:"apiKey" yaml:"apiKey"`
	Model       string  `json:"model" yaml:"model"`
	MaxTokens   int     `json:"maxTokens" yaml:"maxTokens"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// MailConfig defines outgoing mail
type MailConfig struct {
	// Provider: "ses" or "log"
	Provider string `json:"provider" yaml:"provider"`
	Sender   string `json:"sender" yaml:"sender"`
	// ResetURL receives the reset token as the "token" query parameter.
	ResetURL string `json:"resetUrl" yaml:"resetUrl"`
}

// AWSConfig holds settings shared by AWS clients
type AWSConfig struct {
	Region string `json:"region" yaml:"region"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the audience of push OIDC tokens. Empty means the push URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
	// PushServiceAccount, when set, must match the email claim of push tokens.
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
}

// NotifierConfig defines where the push worker listens for Pub/Sub push deliveries
type NotifierConfig struct {
	Port     int    `json:"port" yaml:"port"`
	PushPath string `json:"pushPath" yaml:"pushPath"`
	// MaxEventAge drops redelivered chat events older than this instead of notifying.
	MaxEventAge time.Duration `json:"maxEventAge" yaml:"maxEventAge"`
}

// IdentityConfig tunes identity resolution
type IdentityConfig struct {
	// Parallelism bounds concurrent lookups when resolving many identities.
	Parallelism int `json:"parallelism" yaml:"parallelism"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// TEXTGEN_APIKEY -> textGen.apiKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.ResetTTL <= 0 {
		cfg.Auth.ResetTTL = defaultResetTokenTTL
	}

	if cfg.PasswordStrength == nil {
		cfg.PasswordStrength = &PasswordStrengthConfig{}
	}
	if cfg.PasswordStrength.MinLength <= 0 {
		cfg.PasswordStrength.MinLength = defaultPasswordMinLength
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Content == "" {
		cfg.Store.Content = ContentStorePostgres
	}
	if cfg.Store.SlowQuery <= 0 {
		cfg.Store.SlowQuery = defaultSlowQuery
	}

	if cfg.Blob == nil {
		cfg.Blob = &BlobConfig{BucketURL: "mem://"}
	}
	if cfg.Blob.MaxImageBytes <= 0 {
		cfg.Blob.MaxImageBytes = defaultMaxImageBytes
	}

	if cfg.Vision != nil && cfg.Vision.MaxResults <= 0 {
		cfg.Vision.MaxResults = defaultVisionMaxResults
	}

	if cfg.TextGen != nil {
		if cfg.TextGen.MaxTokens <= 0 {
			cfg.TextGen.MaxTokens = defaultTextGenMaxTokens
		}
		if cfg.TextGen.Temperature <= 0 {
			cfg.TextGen.Temperature = defaultTextGenTemperature
		}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: defaultQRCodeSize, ErrorCorrectionLevel: "M"}
	}

	if cfg.Identity == nil || cfg.Identity.Parallelism <= 0 {
		cfg.Identity = &IdentityConfig{Parallelism: defaultIdentityFanOut}
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{}
	}
	if cfg.Notifier.Port <= 0 {
		cfg.Notifier.Port = defaultNotifierPort
	}
	if !strings.HasPrefix(cfg.Notifier.PushPath, "/") {
		cfg.Notifier.PushPath = defaultNotifierPushPath
	}
	if cfg.Notifier.MaxEventAge <= 0 {
		cfg.Notifier.MaxEventAge = defaultNotifierEventAge
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
