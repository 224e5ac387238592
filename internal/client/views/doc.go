// Package views holds the per-page state of the client: what each page
// shows, how it loads from the backend and how user actions change it.
//
// Every view is built from an explicit Context and follows one lifecycle:
//
//	v := views.NewSkills(vc)
//	_ = v.Mount(ctx)   // load remote data
//	_, err := v.Add(models.NewSkill{...})
//	v.Unmount()        // cancels in-flight requests
//
// Mount derives a lifetime context from its argument; Unmount cancels it.
// Results that arrive after Unmount are dropped and the call returns
// ErrUnmounted, so state never changes behind a page that is gone.
//
// Mutations are applied only after the backend confirms them: append on
// add, replace by id on update, remove by id on delete. A failed or empty
// answer leaves the collection untouched and raises one alert whose text
// tells a rejected request apart from an unreachable backend. Nothing is
// retried.
//
// Derived figures (progress, current focus, counts) are computed on every
// read and never stored.
package views
