package media

// Package media owns remote photo handles and the bundled fallback logos.
// A Photo starts downloading the moment it is constructed and exposes a
// non-blocking accessor, so the render loop can paint whatever subset of
// photos has arrived without ever waiting on the network.
