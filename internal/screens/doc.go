// Package screens binds the photo service to view-state controllers and
// defines the navigation contract the UI implements.
//
// List and Detail embed *viewstate.Controller, so Load, Refresh, State and
// Subscribe come straight from the controller. List.Select is a pure
// notification to the Navigator and never changes view state.
package screens

//go:generate mockgen -destination=mocks/navigator.go -package=mocks github.com/five82/gallery/internal/screens Navigator
//go:generate mockgen -destination=mocks/photos.go -package=mocks github.com/five82/gallery/internal/photos Lister,Detailer
