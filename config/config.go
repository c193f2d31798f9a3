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
	defaultPath = "."

	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"

	DefaultMinSecretLength = 6
	DefaultBcryptCost      = 12
	DefaultLookupTimeout   = 3 * time.Second
	DefaultAttemptWindow   = 15 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the verification attempt audit counters. Optional.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the attempt-audit backend
type RedisConfig struct {
	URL string `json:"url" yaml:"url"`

	// Window is how long per-identifier attempt counters live
	AttemptWindow time.Duration `json:"attemptWindow" yaml:"attemptWindow"`
}

// AuthConfig defines credential verification settings
type AuthConfig struct {
	// Algorithm used to hash new secrets: "bcrypt" or "argon2id".
	// Verification accepts either encoding regardless.
	Algorithm  string       `json:"algorithm" yaml:"algorithm"`
	BcryptCost int          `json:"bcryptCost" yaml:"bcryptCost"`
	Argon2     Argon2Config `json:"argon2" yaml:"argon2"`

	MinSecretLength int `json:"minSecretLength" yaml:"minSecretLength"`

	// DisableTimingEqualization skips the placeholder hash comparison on unknown identifiers
	DisableTimingEqualization bool `json:"disableTimingEqualization" yaml:"disableTimingEqualization"`

	// LookupTimeout bounds the account store round trip made on behalf of a caller
	LookupTimeout time.Duration `json:"lookupTimeout" yaml:"lookupTimeout"`
}

// Argon2Config captures tunable parameters for Argon2id
type Argon2Config struct {
	Memory      uint32 `json:"memory" yaml:"memory"` // KiB
	Iterations  uint32 `json:"iterations" yaml:"iterations"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength"`
	KeyLength   uint32 `json:"keyLength" yaml:"keyLength"`
}

// DefaultArgon2Config returns the Argon2id parameters used when none are configured.
func DefaultArgon2Config() Argon2Config {
	return Argon2Config{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
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

	// Environment overrides, e.g. AUTH_MINSECRETLENGTH -> auth.minSecretLength
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

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	auth := cfg.Auth
	auth.Algorithm = strings.ToLower(strings.TrimSpace(auth.Algorithm))
	switch auth.Algorithm {
	case "":
		auth.Algorithm = AlgorithmBcrypt
	case AlgorithmBcrypt, AlgorithmArgon2id:
	default:
		return errors.Errorf("unsupported auth.algorithm: %s", auth.Algorithm)
	}

	if auth.BcryptCost == 0 {
		auth.BcryptCost = DefaultBcryptCost
	}
	if auth.Argon2 == (Argon2Config{}) {
		auth.Argon2 = DefaultArgon2Config()
	}
	if auth.MinSecretLength <= 0 {
		auth.MinSecretLength = DefaultMinSecretLength
	}
	if auth.LookupTimeout <= 0 {
		auth.LookupTimeout = DefaultLookupTimeout
	}

	if cfg.Redis != nil && cfg.Redis.AttemptWindow <= 0 {
		cfg.Redis.AttemptWindow = DefaultAttemptWindow
	}

	return nil
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
