// Package cryptox derives and verifies the credential strings stored under
// the password_<email> keys.
//
// Two schemes exist. "legacy" is the reversible base64(password+"salt_key")
// form that older data files contain. "argon2id" is the default for new
// accounts and stores a salted Argon2id key. Verify recognises either form,
// so accounts created before a scheme change keep working.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"golang.org/x/crypto/argon2"
)

type Scheme string

const (
	SchemeLegacy   Scheme = "legacy"
	SchemeArgon2id Scheme = "argon2id"

	DefaultScheme = SchemeArgon2id
)

const (
	legacySuffix = "salt_key"

	argonPrefix  = "argon2id$"
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

var ErrUnknownScheme = errors.New("unknown credential scheme")

// ParseScheme maps a configuration value to a Scheme. Empty means default.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultScheme, nil
	case SchemeLegacy:
		return SchemeLegacy, nil
	case SchemeArgon2id:
		return SchemeArgon2id, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, s)
	}
}

func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// Derive produces the stored form of password under scheme.
func Derive(scheme Scheme, password []byte) (string, error) {
	switch scheme {
	case SchemeLegacy:
		buf := make([]byte, 0, len(password)+len(legacySuffix))
		buf = append(buf, password...)
		buf = append(buf, legacySuffix...)
		defer common.WipeByteArray(buf)
		return base64.StdEncoding.EncodeToString(buf), nil
	case SchemeArgon2id, "":
		salt := common.GenerateRandByteArray(argonSaltLen)
		key := DeriveKey(password, salt)
		defer common.WipeByteArray(key)
		return argonPrefix +
			base64.RawStdEncoding.EncodeToString(salt) + "$" +
			base64.RawStdEncoding.EncodeToString(key), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// Verify reports whether password matches the stored credential. Values
// without the argon2id prefix are treated as legacy.
func Verify(stored string, password []byte) bool {
	if stored == "" {
		return false
	}

	if rest, ok := strings.CutPrefix(stored, argonPrefix); ok {
		saltB64, keyB64, ok := strings.Cut(rest, "$")
		if !ok {
			return false
		}
		salt, err := base64.RawStdEncoding.DecodeString(saltB64)
		if err != nil {
			return false
		}
		want, err := base64.RawStdEncoding.DecodeString(keyB64)
		if err != nil || len(want) != argonKeyLen {
			return false
		}
		got := DeriveKey(password, salt)
		defer common.WipeByteArray(got)
		return subtle.ConstantTimeCompare(got, want) == 1
	}

	got, err := Derive(SchemeLegacy, password)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(stored)) == 1
}

// SchemeOf reports which scheme produced stored.
func SchemeOf(stored string) Scheme {
	if strings.HasPrefix(stored, argonPrefix) {
		return SchemeArgon2id
	}
	return SchemeLegacy
}
