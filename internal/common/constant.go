package common

// AppName is used as the calendar product id and in the REPL banner.
const AppName = "eventdesk"

// DateLayout is the calendar-date format of filter bounds (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DateTimeInputLayout is the local date-time format accepted by the CLI.
const DateTimeInputLayout = "2006-01-02T15:04"
