// Package config owns the jmcomic option file: where it lives, how it is loaded,
// created with defaults, saved after a change, and watched for hand edits.
//
// Only two fields of the option schema are interpreted here (dir_rule.base_dir and
// download.download_dir). Every other key is carried through load/save untouched.
package config
