package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"credcheck/config"
	domainerrors "credcheck/internal/domain/errors"
	"credcheck/internal/domain/service"

	"github.com/pkg/errors"
)

const argon2idPrefix = "$argon2id$"

// argon2Hasher is a SecretHasher producing PHC strings:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
type argon2Hasher struct {
	params config.Argon2Config
}

// NewArgon2Hasher returns an Argon2id hasher. Zero parameters are replaced by defaults.
func NewArgon2Hasher(params config.Argon2Config) service.SecretHasher {
	if params == (config.Argon2Config{}) {
		params = config.DefaultArgon2Config()
	}

	return &argon2Hasher{params: params}
}

func (h *argon2Hasher) Hash(secret string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	key := argon2.IDKey([]byte(secret), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix,
		argon2.Version,
		h.params.Memory,
		h.params.Iterations,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check re-derives the key with the parameters stored in hash.
func (h *argon2Hasher) Check(secret, hash string) bool {
	decoded, err := decodeArgon2Hash(hash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(secret), decoded.salt, decoded.iterations, decoded.memory, decoded.parallelism, uint32(len(decoded.key)))

	return subtle.ConstantTimeCompare(decoded.key, candidate) == 1
}

type argon2Hash struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func decodeArgon2Hash(encoded string) (*argon2Hash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, errors.New("invalid argon2id hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, errors.Wrap(err, "invalid argon2id version")
	}
	if version != argon2.Version {
		return nil, errors.Errorf("unsupported argon2id version %d", version)
	}

	decoded := &argon2Hash{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &decoded.memory, &decoded.iterations, &decoded.parallelism); err != nil {
		return nil, errors.Wrap(err, "invalid argon2id parameters")
	}
	if decoded.iterations == 0 || decoded.parallelism == 0 {
		return nil, errors.New("invalid argon2id parameters")
	}

	var err error
	if decoded.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, errors.Wrap(err, "invalid argon2id salt")
	}
	if decoded.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, errors.Wrap(err, "invalid argon2id key")
	}
	if len(decoded.key) == 0 {
		return nil, errors.New("empty argon2id key")
	}

	return decoded, nil
}
