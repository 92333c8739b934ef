// Package format holds the small wire-level enumerations shared by the
// decoder's transform and view layers.
package format

// Presence is the three-valued mask byte meaning attached to a row in a
// masked column.
type Presence uint8

const (
	// Present means the row has a real, decoded value.
	Present Presence = 0
	// NotSpecified renders as '.' and means the value was intentionally
	// omitted by the data producer.
	NotSpecified Presence = 1
	// Unknown renders as '?' and means the value is missing/unmeasured.
	Unknown Presence = 2
)

// PresenceFromByte maps a raw mask byte to a Presence. Byte values above
// 2 are undefined on the wire; they are treated as NotSpecified, the
// conservative reading called for in the wire format notes.
func PresenceFromByte(b byte) Presence {
	switch b {
	case 0:
		return Present
	case 1:
		return NotSpecified
	case 2:
		return Unknown
	default:
		return NotSpecified
	}
}

func (p Presence) String() string {
	switch p {
	case Present:
		return "Present"
	case NotSpecified:
		return "NotSpecified"
	case Unknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Symbol returns the rendered form used by the JSON/text projection: ""
// for Present (the caller uses the real value instead), "." for
// NotSpecified, "?" for Unknown.
func (p Presence) Symbol() string {
	switch p {
	case Present:
		return ""
	case NotSpecified:
		return "."
	default:
		return "?"
	}
}
