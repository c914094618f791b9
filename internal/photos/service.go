package photos

import (
	"context"
	"strconv"

	"github.com/five82/gallery/internal/rest"
)

const (
	listPath   = "photos"
	detailPath = "photos/"
)

// Lister fetches the photo collection.
type Lister interface {
	FetchList(ctx context.Context) ([]Photo, error)
}

// Detailer fetches one photo by id.
type Detailer interface {
	FetchDetail(ctx context.Context, id int) (PhotoDetail, error)
}

// Ensure Service implements both fetch contracts at compile time.
var (
	_ Lister   = (*Service)(nil)
	_ Detailer = (*Service)(nil)
)

// Service issues the list and detail requests against one base URL.
// Errors from the sender are returned as-is.
type Service struct {
	sender  rest.Sender
	baseURL string
}

// NewService binds a sender to the API base URL.
func NewService(sender rest.Sender, baseURL string) *Service {
	return &Service{sender: sender, baseURL: baseURL}
}

// FetchList returns every photo in server order. An empty collection is an
// empty, non-nil slice.
func (s *Service) FetchList(ctx context.Context) ([]Photo, error) {
	dtos, err := rest.Send(ctx, s.sender, rest.Get[[]PhotoDTO](s.endpoint(listPath)))
	if err != nil {
		return nil, err
	}
	out := make([]Photo, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dto.Mapped())
	}
	return out, nil
}

// FetchDetail returns the photo with id. A missing photo surfaces as the
// server's status, typically rest.StatusError(404).
func (s *Service) FetchDetail(ctx context.Context, id int) (PhotoDetail, error) {
	dto, err := rest.Send(ctx, s.sender, rest.Get[PhotoDetailDTO](s.endpoint(detailPath+strconv.Itoa(id))))
	if err != nil {
		return PhotoDetail{}, err
	}
	return dto.Mapped(), nil
}

func (s *Service) endpoint(path string) rest.Endpoint {
	return rest.Endpoint{BaseURL: s.baseURL, Path: path}
}
