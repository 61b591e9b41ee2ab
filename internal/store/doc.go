// Package store persists ghsearch preferences across process restarts.
//
// The package defines the [Store] interface, a named key-value preference
// store holding string values. Two embedded backends implement it:
//   - BoltDB (default): one bucket per preference store name
//   - SQLite: a single preferences table keyed by (store, key)
//
// # Opening a Store
//
// Use [Open] to obtain the backend selected by configuration:
//
//	prefs, err := store.Open(cfg, model.PreferenceStoreName)
//	if err != nil {
//	    return err
//	}
//	defer prefs.Close()
//
//	name, err := prefs.Get(model.KeyUserName)
//
// A key that was never set reads as the empty string without error.
package store
