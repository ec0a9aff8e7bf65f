package ui

import "time"

// noticeTTL is how long a notice stays visible absent a newer one. The window
// always restarts from the most recent showNotice call; it never accumulates.
const noticeTTL = 5 * time.Second
