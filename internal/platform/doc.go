package platform

// Package platform contains filesystem glue for the staging area: directory
// creation, per-job subdirectories, filename sanitizing, and locating the
// transcoded audio file after postprocessing.
