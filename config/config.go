package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	DefaultLocationBaseURL    = "https://www.colchester.gov.uk/_odata/LLPG"
	DefaultCalendarBaseURL    = "https://new-llpg-app.azurewebsites.net/api/calendar"
	DefaultUpstreamTimeout    = 5 * time.Second
	DefaultTimestampTolerance = 150 * time.Second

	// Variables read by the earlier Azure Function deployment.
	legacySkillIDEnv  = "RUBBISHDAY_SKILL_ID"
	legacyTestModeEnv = "ISTESTENV"
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

	// Skill configuration for the Alexa endpoint
	Skill *SkillConfig `json:"skill" yaml:"skill"`

	// Alexa configuration for the Device Address API client
	Alexa *AlexaConfig `json:"alexa" yaml:"alexa"`

	// Council configuration for the location and calendar data APIs
	Council *CouncilConfig `json:"council" yaml:"council"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SkillConfig defines how inbound skill requests are checked and logged
type SkillConfig struct {
	// Expected application id; required when VerifySignature is set, otherwise empty disables the check
	ApplicationID string `json:"applicationId" yaml:"applicationId"`

	// Logs device ids, full postcodes and outbound URLs. Debug only: this is customer address data.
	RequestLogging bool `json:"requestLogging" yaml:"requestLogging"`

	// Verify the Alexa request signature and certificate chain
	VerifySignature bool `json:"verifySignature" yaml:"verifySignature"`

	// Maximum age of a request timestamp
	TimestampTolerance time.Duration `json:"timestampTolerance" yaml:"timestampTolerance"`
}

// AlexaConfig defines the Device Address API client configuration
type AlexaConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// CouncilConfig defines the council open-data API endpoints
type CouncilConfig struct {
	LocationBaseURL string        `json:"locationBaseUrl" yaml:"locationBaseUrl"`
	CalendarBaseURL string        `json:"calendarBaseUrl" yaml:"calendarBaseUrl"`
	Timeout         time.Duration `json:"timeout" yaml:"timeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// SKILL_APPLICATIONID -> skill.applicationId
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

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyLegacyEnv(cfg)
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Skill.VerifySignature && strings.TrimSpace(cfg.Skill.ApplicationID) == "" {
		return errors.Errorf("skill.applicationId (or %s) is required when skill.verifySignature is enabled", legacySkillIDEnv)
	}

	return nil
}

func applyLegacyEnv(cfg *Config) {
	if cfg.Skill == nil {
		cfg.Skill = &SkillConfig{}
	}

	if cfg.Skill.ApplicationID == "" {
		cfg.Skill.ApplicationID = os.Getenv(legacySkillIDEnv)
	}

	if strings.EqualFold(os.Getenv(legacyTestModeEnv), "true") {
		cfg.Skill.RequestLogging = true
	}
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Skill == nil {
		cfg.Skill = &SkillConfig{}
	}
	if cfg.Skill.TimestampTolerance <= 0 {
		cfg.Skill.TimestampTolerance = DefaultTimestampTolerance
	}

	if cfg.Alexa == nil {
		cfg.Alexa = &AlexaConfig{}
	}
	if cfg.Alexa.Timeout <= 0 {
		cfg.Alexa.Timeout = DefaultUpstreamTimeout
	}

	if cfg.Council == nil {
		cfg.Council = &CouncilConfig{}
	}
	if cfg.Council.LocationBaseURL == "" {
		cfg.Council.LocationBaseURL = DefaultLocationBaseURL
	}
	if cfg.Council.CalendarBaseURL == "" {
		cfg.Council.CalendarBaseURL = DefaultCalendarBaseURL
	}
	if cfg.Council.Timeout <= 0 {
		cfg.Council.Timeout = DefaultUpstreamTimeout
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
