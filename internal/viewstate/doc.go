// Package viewstate implements the three-state screen model shared by every
// screen: Loading, Ready(data) and Failed(presentable error with retry).
//
// # Overview
//
// A Controller wraps a Fetcher and owns a Store. Screens render from the
// Store's State and observe transitions through Subscribe:
//
//	ctrl := viewstate.NewController("list", svc.FetchList)
//	cancel := ctrl.Subscribe(func(s viewstate.Snapshot[[]photos.Photo]) {
//		program.Send(listChanged(s))
//	})
//	defer cancel()
//	go ctrl.Load(ctx)
//
// # State Machine
//
//	        Refresh                 fetch ok
//	 any ───────────→ Loading ────────────────→ Ready
//	                     │
//	                     │ fetch error
//	                     ↓
//	                  Failed ──(Retry = Refresh)──→ Loading
//
// There is no terminal state. Load may be called from any state and simply
// fetches once. Refresh applies Loading before its fetch begins, so an
// observer always sees the loading transition.
//
// # Error Presentation
//
// Present maps any error to display text:
//
//   - rest offline errors: "You are offline!" / "Please check your internet
//     connection and try again."
//   - anything else: "Oops!" / "Something wrong happened try again."
//
// The button is always "Retry". PresentableError.Equal compares text only,
// so two failures of the same presented kind are equal whatever the cause.
//
// # Concurrency Model
//
// Controllers are called from Bubble Tea command goroutines rather than a
// single UI thread, so Store guards its state with a mutex and serializes
// Set calls. Subscribers run on the goroutine that applied the transition
// and receive transitions in apply order. They must not call Set (or Load,
// or Refresh) synchronously; forwarding to tea.Program.Send is the intended
// use.
//
// Overlapping Refresh calls race and the last fetch to resolve wins.
package viewstate
