package yaml

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/matching"
	"github.com/evananthony17/discord-ask-bot-sub000/internal/ports"
	"github.com/spf13/viper"
	yamlv3 "gopkg.in/yaml.v3"
)

const NicknamesPathKey = "nicknames.path"

type fileSchema struct {
	Aliases map[string]string `yaml:"aliases"`
}

// Store is a read-only alias table keyed by normalized nickname.
type Store struct {
	aliases map[string]string
}

var _ ports.NicknameProvider = (*Store)(nil)

// Open loads the file named by nicknames.path. An unset key or a missing file
// yields an empty table.
func Open(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		return New(nil), nil
	}

	path := cfg.GetString(NicknamesPathKey)
	if path == "" {
		return New(nil), nil
	}

	return Load(path)
}

func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("read nicknames file: %w", err)
	}

	var file fileSchema
	if err := yamlv3.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode nicknames file: %w", err)
	}

	return New(file.Aliases), nil
}

func New(aliases map[string]string) *Store {
	normalized := make(map[string]string, len(aliases))
	for alias, name := range aliases {
		key := matching.Plain(alias)
		name = strings.TrimSpace(name)
		if key == "" || name == "" {
			continue
		}
		normalized[key] = name
	}

	return &Store{aliases: normalized}
}

func (s *Store) Expand(phrase string) (string, bool) {
	name, ok := s.aliases[matching.Plain(phrase)]
	return name, ok
}

func (s *Store) Len() int {
	return len(s.aliases)
}
