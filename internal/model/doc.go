package model

// Package model defines the small domain types shared by the download pipeline
// and the UI: album identifiers, download tasks and their status.
