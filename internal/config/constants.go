package config

// app constants
const (
	AppName = "antigravity"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "1.15.8"
)

// console constants
const (
	DefaultCapacity   = 1000
	DefaultAutoScroll = true
)

// ingest constants
const (
	DefaultStreamBuffer = 256

	// TailLines is how many trailing lines a file source replays on attach.
	TailLines = 200
)

// export constants
const (
	DefaultExportDir = "."
)
