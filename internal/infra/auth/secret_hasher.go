package auth

import (
	"strings"

	"credcheck/config"
	"credcheck/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for the secret hasher, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// multiHasher hashes with the configured algorithm and verifies whichever
// encoding an account's stored hash uses, so the algorithm can change without
// invalidating existing accounts.
type multiHasher struct {
	primary service.SecretHasher
	bcrypt  service.SecretHasher
	argon2  service.SecretHasher
}

// NewSecretHasher builds the SecretHasher described by the auth config.
func NewSecretHasher(params Params) service.SecretHasher {
	authCfg := params.Config.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	h := &multiHasher{
		bcrypt: NewBcryptHasherWithCost(authCfg.BcryptCost),
		argon2: NewArgon2Hasher(authCfg.Argon2),
	}

	h.primary = h.bcrypt
	if authCfg.Algorithm == config.AlgorithmArgon2id {
		h.primary = h.argon2
	}

	return h
}

func (h *multiHasher) Hash(secret string) (string, error) {
	return h.primary.Hash(secret)
}

func (h *multiHasher) Check(secret, hash string) bool {
	if strings.HasPrefix(hash, argon2idPrefix) {
		return h.argon2.Check(secret, hash)
	}

	return h.bcrypt.Check(secret, hash)
}
