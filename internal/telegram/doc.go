package telegram

// Package telegram is the chat transport surface: the long-polling request
// router that classifies inbound messages via URL pattern matching, and the
// audio sink that uploads staged files through the Telegram Bot API.
