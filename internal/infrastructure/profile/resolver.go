// Package profile resolves the browsing profile and owns its stores.
package profile

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/twilight/weaver/internal/domain/entity"
	"github.com/twilight/weaver/internal/infrastructure/config"
	"github.com/twilight/weaver/internal/logging"
)

const (
	settingsSection = "Settings"
	profileKey      = "profile_name"

	rootDirPerm    = 0o750
	configFilePerm = 0o600
)

// Resolver reads and creates the profile identifier recorded in config.ini.
type Resolver struct {
	root     string
	generate func() (string, error)
}

// NewResolver creates a resolver for the data root.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root, generate: GenerateID}
}

// Root returns the data root.
func (r *Resolver) Root() string {
	return r.root
}

// ConfigFile returns the path of config.ini.
func (r *Resolver) ConfigFile() string {
	return config.ProfileConfigFile(r.root)
}

// Resolve returns the profile recorded on disk, creating one when none exists.
// It reads the file on every call. When the file cannot be used it returns
// the placeholder profile together with a *entity.ConfigIOError.
func (r *Resolver) Resolve(ctx context.Context) (entity.Profile, error) {
	log := logging.FromContext(ctx)
	path := r.ConfigFile()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("path", path).Msg("profile config missing, creating")
		return r.create(ctx, ini.Empty())
	case err != nil:
		return entity.PlaceholderProfile(), &entity.ConfigIOError{Path: path, Op: "read", Err: err}
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return entity.PlaceholderProfile(), &entity.ConfigIOError{Path: path, Op: "parse", Err: err}
	}

	id := strings.TrimSpace(cfg.Section(settingsSection).Key(profileKey).String())
	if id == "" {
		log.Debug().Str("path", path).Msg("profile_name missing, generating")
		return r.create(ctx, cfg)
	}

	if !entity.IsUsableProfileID(id) {
		return entity.PlaceholderProfile(), &entity.ConfigIOError{
			Path: path,
			Op:   "validate",
			Err:  fmt.Errorf("profile_name %q is not a valid directory name", id),
		}
	}

	return entity.NewProfile(r.root, id), nil
}

// create generates an identifier and writes it into cfg, keeping its other sections.
func (r *Resolver) create(ctx context.Context, cfg *ini.File) (entity.Profile, error) {
	path := r.ConfigFile()

	id, err := r.generate()
	if err != nil {
		return entity.PlaceholderProfile(), &entity.ConfigIOError{Path: path, Op: "generate", Err: err}
	}

	cfg.Section(settingsSection).Key(profileKey).SetValue(id)

	if err := os.MkdirAll(r.root, rootDirPerm); err != nil {
		return entity.PlaceholderProfile(), &entity.ConfigIOError{Path: path, Op: "write", Err: err}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return entity.PlaceholderProfile(), &entity.ConfigIOError{Path: path, Op: "write", Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), configFilePerm); err != nil {
		return entity.PlaceholderProfile(), &entity.ConfigIOError{Path: path, Op: "write", Err: err}
	}

	logging.FromContext(ctx).Info().Str("profile", id).Str("path", path).Msg("created profile")
	return entity.NewProfile(r.root, id), nil
}

// GenerateID returns a random identifier of entity.ProfileIDLength characters
// drawn uniformly from entity.ProfileIDAlphabet.
func GenerateID() (string, error) {
	const alphabet = entity.ProfileIDAlphabet
	// Largest multiple of len(alphabet) that fits in a byte; higher values are rejected.
	limit := byte(256 - 256%len(alphabet))

	id := make([]byte, 0, entity.ProfileIDLength)
	buf := make([]byte, entity.ProfileIDLength*2)
	for len(id) < entity.ProfileIDLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			id = append(id, alphabet[int(b)%len(alphabet)])
			if len(id) == entity.ProfileIDLength {
				break
			}
		}
	}
	return string(id), nil
}
