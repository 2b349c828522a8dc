// Package design is the primer-pair design core: candidate enumeration,
// GC/Tm filtering, Tm-tolerant pairing and top-N selection. It never imports
// app, writers, cli or config; keep it domain-only.
//
// Every stage takes immutable inputs and returns new slices. External
// outputs must not depend on the shapes here; use pkg/api for the wire types.
package design
