package highscore

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// AppName is the application name used for the per-user data directory.
const AppName = "tui-runner"

// itemStore is the subset of *gdata.Manager the profile store uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// ProfileStore keeps one high score per variant in the user's app-data
// directory, managed by gdata.
type ProfileStore struct {
	items itemStore
	key   string
}

// OpenProfile opens the per-user data directory and returns the store for variant.
func OpenProfile(variant string) (*ProfileStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open profile storage: %w", err)
	}
	return newProfileStore(m, variant), nil
}

func newProfileStore(items itemStore, variant string) *ProfileStore {
	return &ProfileStore{items: items, key: "highscore_" + variant}
}

// Load reads the variant's high score; no saved item is zero.
func (s *ProfileStore) Load() (int, error) {
	data, err := s.items.LoadItem(s.key)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot load %s: %w", s.key, err)
	}
	score, err := decode(data)
	if err != nil {
		return 0, fmt.Errorf("highscore: malformed %s: %w", s.key, err)
	}
	return score, nil
}

// Save overwrites the variant's high score.
func (s *ProfileStore) Save(score int) error {
	data, err := encode(score)
	if err != nil {
		return fmt.Errorf("highscore: cannot encode: %w", err)
	}
	if err := s.items.SaveItem(s.key, data); err != nil {
		return fmt.Errorf("highscore: cannot save %s: %w", s.key, err)
	}
	return nil
}
