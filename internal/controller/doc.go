package controller

// Package controller contains PlayerController, the only place where user
// input meets the media engine. It translates widget events into engine
// calls and reflects engine state back into the transport controls.
