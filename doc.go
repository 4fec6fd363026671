// Package assetbook provides a client for a personal asset-tracking service.
// It keeps a local, read-only mirror of the server's asset collection and
// synchronizes it through a small REST API.
//
// The core functionalities include:
//   - Transport: a typed REST client for the /assets collection (list, get,
//     create, update, delete and summary).
//   - Cache: an ordered snapshot of the collection, only ever replaced as a
//     whole by the result of the last successful fetch.
//   - Session: the user-facing workflow. Every successful mutation is followed
//     by a full re-fetch and a full re-render, errors are reported as
//     short-lived banners.
//   - Edition: a two-state editor (closed, editing) holding the form of the
//     asset being edited.
//
// This package serves as the foundational logic for the `ab` command-line
// tool. Rendering lives in the renderer package.
package assetbook
