package render

import (
	"bytes"
	"encoding/xml"
)

// xmlEscape is for text placed inside attributes; svgo only escapes element text.
func xmlEscape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
