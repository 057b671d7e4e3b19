package ui

import "github.com/GofMan5/Antigravity-Manager/internal/app/console"

// Key bindings
const (
	keyQuit   = "q"
	keyCopy   = "c"
	keyExport = "e"
	keyClear  = "x"
	keySearch = "/"
	keyJump   = "G"
	keyEnd    = "end"
)

// levelKeys maps the number row to severity toggles
var levelKeys = map[string]console.Level{
	"1": console.LevelError,
	"2": console.LevelWarn,
	"3": console.LevelInfo,
	"4": console.LevelDebug,
	"5": console.LevelTrace,
}

// helpLine is the footer hint
const helpLine = "1-5 levels · / search · c copy · e export · x clear · G latest · q quit"
