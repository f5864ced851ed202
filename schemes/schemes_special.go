package schemes

// Special maps each of the six schemes the state machine treats
// specially (spec §4.6/§4.7) to its default port. A scheme present in
// this map but mapped to -1 (file) has no default port at all: file
// URLs never carry a port and the state machine's file/file-slash/
// file-host states route around the port state entirely.
var Special = map[string]int{
	"ftp":   21,
	"file":  -1,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

// IsSpecial reports whether scheme is one of the six special schemes.
func IsSpecial(scheme string) bool {
	_, ok := Special[scheme]

	return ok
}

// DefaultPort returns the default port for scheme and true, or (0,
// false) if scheme is not special or is "file" (which has none).
func DefaultPort(scheme string) (port int, ok bool) {
	port, ok = Special[scheme]
	if !ok || port < 0 {
		return 0, false
	}

	return port, true
}
