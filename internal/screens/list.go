package screens

import (
	"github.com/rs/zerolog"

	"github.com/five82/gallery/internal/photos"
	"github.com/five82/gallery/internal/viewstate"
)

// ListTitle is the navigation title of the root screen.
const ListTitle = "Photo Gallery"

// List is the photo collection screen.
type List struct {
	*viewstate.Controller[[]photos.Photo]
	nav Navigator
}

// NewList builds the list screen in Loading. Nothing is fetched until Load.
func NewList(lister photos.Lister, nav Navigator, logger zerolog.Logger) *List {
	return &List{
		Controller: viewstate.NewController("list", lister.FetchList, viewstate.WithLogger(logger)),
		nav:        nav,
	}
}

// Title returns the navigation title.
func (l *List) Title() string { return ListTitle }

// Select opens the detail screen for photo. View state is untouched.
func (l *List) Select(photo photos.Photo) {
	l.nav.NavigateTo(Destination{PhotoID: photo.ID})
}
