// Package browser resolves and reads locally installed browser cookie
// stores. It exposes one Source per supported browser (Chrome, Firefox,
// Safari, Edge) behind a single capability interface, plus a resolver
// that selects a source explicitly, by fixed-priority auto-detection,
// or by the Firefox-biased legacy default.
//
// Cookie values are sensitive: they are never logged and never written
// back to any browser store. SQLite stores are copied to a temp dir
// before reading so the owning browser is never locked out.
package browser
