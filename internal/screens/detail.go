package screens

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/five82/gallery/internal/photos"
	"github.com/five82/gallery/internal/viewstate"
)

// Detail is the single-photo screen for one id.
type Detail struct {
	*viewstate.Controller[photos.PhotoDetail]
	id int
}

// NewDetail builds the detail screen for id in Loading.
func NewDetail(detailer photos.Detailer, id int, logger zerolog.Logger) *Detail {
	fetch := func(ctx context.Context) (photos.PhotoDetail, error) {
		return detailer.FetchDetail(ctx, id)
	}
	return &Detail{
		Controller: viewstate.NewController("detail", fetch,
			viewstate.WithLogger(logger.With().Int("photo_id", id).Logger())),
		id: id,
	}
}

// PhotoID returns the id this screen shows.
func (d *Detail) PhotoID() int { return d.id }

// Title returns the navigation title.
func (d *Detail) Title() string { return "Photo #" + strconv.Itoa(d.id) }
