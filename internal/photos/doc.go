// Package photos holds the photo wire records, their domain values and the
// service that fetches them.
//
// Service builds exactly one GET per call (photos or photos/{id}), sends it
// through a rest.Sender and copies the decoded DTOs into Photo or
// PhotoDetail. It never retries and never re-classifies: any error is the
// *rest.Error produced by the client.
//
//	svc := photos.NewService(client, cfg.BaseURL)
//	list, err := svc.FetchList(ctx)
//	detail, err := svc.FetchDetail(ctx, list[0].ID)
package photos
