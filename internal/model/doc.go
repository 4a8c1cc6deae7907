package model

// Package model defines domain data structures used across the bot: download
// jobs, fetch results, playlist entities, and status enums. Structures are
// designed for explicit state transitions and single-consumption jobs.
