package statsapi

// Package statsapi implements the client for the MLB stats API schedule
// endpoint. It fetches the hydrated schedule document, deserializes the
// editorial recap content per game, and reports failures as typed errors
// that identify which stage of the fetch broke.
