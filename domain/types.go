package domain

type RecordID string

// DateLayout is the calendar-date form used everywhere: prompts, files, listings.
const DateLayout = "2006-01-02"
