package mdf

import "errors"

var (
	ErrorFileNotFound     = errors.New("Input file does not exist")
	ErrorChecksumMismatch = errors.New("Could not update the checksum to match")
	ErrorBadProfile       = errors.New("Band profile is not usable")
	ErrorNoBackup         = errors.New("No backup file to restore")
)
