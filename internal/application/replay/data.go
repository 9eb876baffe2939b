package replay

// Version is the replay file format version
const Version = "2.0"

// FrameInput records input state and clock delta for a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	L  bool    `json:"l,omitempty"` // Left
	R  bool    `json:"r,omitempty"` // Right
	U  bool    `json:"u,omitempty"` // Up
	D  bool    `json:"d,omitempty"` // Down
	S  bool    `json:"s,omitempty"` // Shoot (just pressed)
	DT float64 `json:"dt"`          // Frame delta in milliseconds
}

// ReplayData contains all data needed to replay a stage run
type ReplayData struct {
	Version   string       `json:"version"`
	RunID     string       `json:"runId"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Duration returns the total recorded clock time in milliseconds
func (d ReplayData) Duration() float64 {
	total := 0.0
	for _, f := range d.Frames {
		total += f.DT
	}
	return total
}
