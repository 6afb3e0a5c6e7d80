package platform

// Package platform contains OS integration helpers: the user's profile, Documents
// and Downloads directories, directory creation, and revealing a folder in the
// system file manager.
