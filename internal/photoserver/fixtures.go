package photoserver

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/five82/gallery/internal/photos"
)

const defaultFixtureCount = 25

// Fixtures is the YAML fixture document.
//
//	photos:
//	  - id: 1
//	    title: accusamus beatae ad facilis cum similique qui sunt
//	    url: https://via.placeholder.com/600/92c952
//	    thumbnailUrl: https://via.placeholder.com/150/92c952
type Fixtures struct {
	Photos []photos.PhotoDTO `yaml:"photos"`
}

// LoadFixtures reads and validates a fixture file.
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, errors.Wrap(err, "read fixtures")
	}
	var fx Fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return Fixtures{}, errors.Wrap(err, "parse fixtures")
	}
	if err := fx.validate(); err != nil {
		return Fixtures{}, err
	}
	return fx, nil
}

// Fixtures returns the photos to serve: the file at FixturesPath, or the
// generated set when no path is configured.
func (c Config) Fixtures() (Fixtures, error) {
	if strings.TrimSpace(c.FixturesPath) == "" {
		return DefaultFixtures(), nil
	}
	return LoadFixtures(c.FixturesPath)
}

func (fx Fixtures) validate() error {
	seen := make(map[int]struct{}, len(fx.Photos))
	for i, p := range fx.Photos {
		if p.ID <= 0 {
			return errors.Errorf("fixture %d: id must be positive", i)
		}
		if _, dup := seen[p.ID]; dup {
			return errors.Errorf("fixture %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// DefaultFixtures generates a deterministic set of photos.
func DefaultFixtures() Fixtures {
	fx := Fixtures{Photos: make([]photos.PhotoDTO, 0, defaultFixtureCount)}
	for id := 1; id <= defaultFixtureCount; id++ {
		color := fmt.Sprintf("%06x", (id*0x9e3779)&0xffffff)
		fx.Photos = append(fx.Photos, photos.PhotoDTO{
			ID:           id,
			Title:        fmt.Sprintf("placeholder photo %d", id),
			URL:          "https://via.placeholder.com/600/" + color,
			ThumbnailURL: "https://via.placeholder.com/150/" + color,
		})
	}
	return fx
}
