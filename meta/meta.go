// meta/meta.go
package meta

// MAX_TURNS caps the moves of one game. Chopsticks can cycle forever.
const MAX_TURNS = 300

// MAX_ATTEMPTS is how many times a strategy is asked for a legal move in a
// single turn before the game is abandoned.
const MAX_ATTEMPTS = 3

// DEFAULT_START is the Subtract Square start number for unattended games.
const DEFAULT_START = 100
