package pipeline

// RunStats tracks aggregate counters across one organizer run. Category
// counters increment when a file is routed; Processed only after a
// successful copy, so a failed copy shows up as the gap between the two.
type RunStats struct {
	Processed      int
	Duplicates     int
	WhatsAppImages int
	WhatsAppVideos int
	RegularImages  int
	RegularVideos  int
	Warnings       int
	BytesCopied    int64
}
