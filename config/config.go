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
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Dispatch configuration for the notification dispatch engine
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Plans maps plan tiers to their sending limits
	Plans map[string]PlanLimits `json:"plans" yaml:"plans"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Geocoding configuration for address resolution
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for campaign share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DispatchConfig defines defaults for the dispatch engine
type DispatchConfig struct {
	// Default blast radius in miles when the request omits one
	DefaultRadiusMiles float64 `json:"defaultRadiusMiles" yaml:"defaultRadiusMiles"`

	// Page size for notification inbox and history listings
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
}

// PlanLimits defines the per-tier sending limits for business senders.
// A zero daily/weekly limit means unlimited; a non-positive monthly blast
// count disables area blasts for the tier.
type PlanLimits struct {
	MaxFollowerNotificationsPerDay  int     `json:"maxFollowerNotificationsPerDay" yaml:"maxFollowerNotificationsPerDay"`
	MaxFollowerNotificationsPerWeek int     `json:"maxFollowerNotificationsPerWeek" yaml:"maxFollowerNotificationsPerWeek"`
	MinMinutesBetweenNotifications  int     `json:"minMinutesBetweenNotifications" yaml:"minMinutesBetweenNotifications"`
	MaxAreaBlastsPerMonth           int     `json:"maxAreaBlastsPerMonth" yaml:"maxAreaBlastsPerMonth"`
	AreaBlastRequiresApproval       bool    `json:"areaBlastRequiresApproval" yaml:"areaBlastRequiresApproval"`
	MaxBlastRadiusMiles             float64 `json:"maxBlastRadiusMiles" yaml:"maxBlastRadiusMiles"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// GeocodingConfig defines the forward geocoding collaborator
type GeocodingConfig struct {
	// Base URL of a Nominatim-compatible search endpoint
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Contact identifier sent as the User-Agent, required by public instances
	UserAgent string `json:"userAgent" yaml:"userAgent"`

	Timeout time.Duration `json:"timeout" yaml:"timeout"`
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
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	if cfg.Dispatch.DefaultRadiusMiles <= 0 {
		cfg.Dispatch.DefaultRadiusMiles = 10
	}
	if cfg.Dispatch.DefaultPageSize <= 0 {
		cfg.Dispatch.DefaultPageSize = 20
	}

	if len(cfg.Plans) == 0 {
		cfg.Plans = DefaultPlans()
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// DefaultPlans returns the built-in plan catalog used when the config file
// does not override it. Tiers outside the catalog are rejected at lookup time.
func DefaultPlans() map[string]PlanLimits {
	return map[string]PlanLimits{
		"free": {
			MaxFollowerNotificationsPerDay:  1,
			MaxFollowerNotificationsPerWeek: 3,
			MinMinutesBetweenNotifications:  120,
			MaxAreaBlastsPerMonth:           0,
			AreaBlastRequiresApproval:       true,
			MaxBlastRadiusMiles:             0,
		},
		"basic": {
			MaxFollowerNotificationsPerDay:  3,
			MaxFollowerNotificationsPerWeek: 10,
			MinMinutesBetweenNotifications:  60,
			MaxAreaBlastsPerMonth:           2,
			AreaBlastRequiresApproval:       true,
			MaxBlastRadiusMiles:             10,
		},
		"pro": {
			MaxFollowerNotificationsPerDay:  10,
			MaxFollowerNotificationsPerWeek: 40,
			MinMinutesBetweenNotifications:  15,
			MaxAreaBlastsPerMonth:           8,
			AreaBlastRequiresApproval:       false,
			MaxBlastRadiusMiles:             25,
		},
		"enterprise": {
			MaxFollowerNotificationsPerDay:  0,
			MaxFollowerNotificationsPerWeek: 0,
			MinMinutesBetweenNotifications:  0,
			MaxAreaBlastsPerMonth:           30,
			AreaBlastRequiresApproval:       false,
			MaxBlastRadiusMiles:             100,
		},
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
