package nuspec

import (
	"bytes"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sanitize corrects a known artifact left by some archive writers: the
// extracted manifest may start with a UTF-8 byte order mark and a
// dangling XML declaration that confuse downstream parsing. It removes
// a leading BOM and, when the document then opens with an XML
// declaration, drops the declaration and the whitespace after it.
//
// Sanitize is idempotent: applying it to already-sanitized bytes
// returns them unchanged.
func Sanitize(data []byte) []byte {
	data = bytes.TrimPrefix(data, utf8BOM)

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if !bytes.HasPrefix(trimmed, []byte("<?xml")) {
		return data
	}
	end := bytes.Index(trimmed, []byte("?>"))
	if end == -1 {
		// Unterminated declaration; leave it for the parser to reject.
		return data
	}
	rest := trimmed[end+2:]
	return bytes.TrimLeft(rest, " \t\r\n")
}
