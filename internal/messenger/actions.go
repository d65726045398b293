package messenger

// Actions serviced by the page worker and background worker.
const (
	ActionExtractPage  = "extract-page"
	ActionFindLinks    = "find-links"
	ActionMarkLinks    = "mark-links"
	ActionContentReady = "content-ready"
)
