package core

// # Error Codes Reference
//
// User-friendly error messages with codes, printed by the CLI when a run
// stops. Operators can quote the code when asking for help with a migration.
//
// # Configuration Errors (CFG001-CFG099)
//
//	CFG001 - Unknown profile: the profile has no API token
//	         Action: Add the profile to the profiles file or pick another one
//	         Patterns: "api token not found"
//
//	CFG002 - Unknown chapter: the mapping file has no column for the chapter
//	         Action: Add a column named after the chapter to the mapping file
//	         Patterns: "no column for chapter"
//
//	CFG003 - Invalid options: command-line options are inconsistent
//	         Action: Check --start, --end and --count
//	         Patterns: "invalid options"
//
// # CSV Errors (CSV001-CSV099)
//
//	CSV001 - Missing column: a required column is absent
//	         Patterns: "missing required column"
//
//	CSV002 - Empty file: the file has no header row
//	         Patterns: "empty file"
//
//	CSV003 - Invalid CSV: the file could not be parsed
//	         Patterns: "invalid csv"
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - File not found
//	          Patterns: "no such file"
//
//	FILE002 - Permission denied
//	          Patterns: "permission denied"
//
// # Action Network Errors (API001-API099)
//
//	API001 - Token rejected: the API answered 401/403
//	         Patterns: "returned 401", "returned 403"
//
//	API002 - Throttled: the API answered 429
//	         Patterns: "returned 429"
//
//	API003 - Remote failure: the API answered 5xx
//	         Patterns: "returned 5"
//
//	API004 - Unreachable: the API host refused the connection
//	         Patterns: "connection refused", "no such host"
//
//	API005 - Timeout: the API did not answer in time
//	         Patterns: "deadline exceeded", "timeout"
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - Interrupted: the run was cancelled
//	         Patterns: "context canceled"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches.
//
// Patterns are matched case-insensitively using strings.Contains and the
// first match wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgTokenRejected = UserMessage{
		Message: "Action Network rejected the API token",
		Action:  "Check the token for this profile in the profiles file",
		Code:    "API001",
	}
	msgUnreachable = UserMessage{
		Message: "Unable to reach Action Network",
		Action:  "Check AN_API_URL and your network connection",
		Code:    "API004",
	}
	msgTimeout = UserMessage{
		Message: "Action Network did not answer in time",
		Action:  "Re-run from the failed row with --start",
		Code:    "API005",
	}
)

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
var errorPatterns = []errorPattern{
	// Configuration (CFG)
	{
		pattern: "api token not found",
		msg: UserMessage{
			Message: "The selected profile has no API token",
			Action:  "Add the profile to the profiles file or pick another one",
			Code:    "CFG001",
		},
	},
	{
		pattern: "no column for chapter",
		msg: UserMessage{
			Message: "The mapping file has no column for this chapter",
			Action:  "Add a column named after the chapter to the mapping file",
			Code:    "CFG002",
		},
	},
	{
		pattern: "invalid options",
		msg: UserMessage{
			Message: "Command-line options are inconsistent",
			Action:  "Check --start, --end and --count",
			Code:    "CFG003",
		},
	},

	// CSV structure (CSV)
	{
		pattern: "missing required column",
		msg: UserMessage{
			Message: "A required column is missing from the CSV",
			Action:  "Check that the export includes all required columns",
			Code:    "CSV001",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The CSV file is empty",
			Action:  "Export the file again and make sure it has a header row",
			Code:    "CSV002",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "The file is not a valid CSV",
			Action:  "Ensure the file is comma-separated with balanced quotes",
			Code:    "CSV003",
		},
	},

	// Files (FILE)
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "File not found",
			Action:  "Check the path passed on the command line",
			Code:    "FILE001",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "Permission denied reading a file",
			Action:  "Check the file permissions",
			Code:    "FILE002",
		},
	},

	// Action Network (API)
	{pattern: "returned 401", msg: msgTokenRejected},
	{pattern: "returned 403", msg: msgTokenRejected},
	{
		pattern: "returned 429",
		msg: UserMessage{
			Message: "Action Network is throttling requests",
			Action:  "Wait a few minutes and re-run from the failed row with --start",
			Code:    "API002",
		},
	},
	{
		pattern: "returned 5",
		msg: UserMessage{
			Message: "Action Network reported a server error",
			Action:  "Re-run from the failed row with --start",
			Code:    "API003",
		},
	},
	{pattern: "connection refused", msg: msgUnreachable},
	{pattern: "no such host", msg: msgUnreachable},
	{pattern: "deadline exceeded", msg: msgTimeout},
	{pattern: "timeout", msg: msgTimeout},

	// Run (RUN)
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The import was interrupted",
			Action:  "Re-run from the next row with --start",
			Code:    "RUN001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Re-run with LOG_LEVEL=debug and check the log",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It returns the first matching pattern, or ERR000 when nothing matches.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether an error matches a known pattern rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
