// Package core provides the CSV plumbing and error vocabulary shared by the
// tag mapping loader and the people importer.
//
// # Reading CSV
//
// [NewReader] consumes the header row and yields data rows one at a time as
// [Row] values bound to a [HeaderIndex], so fields are read by column name:
//
//	r, err := core.NewReader(f)
//	if err != nil {
//	    return err
//	}
//	for {
//	    row, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    email := row.Get("email")
//	}
//
// Header names are matched case-insensitively after [CleanCell]. Cell values
// are returned raw; callers trim where their format says so.
//
// # Error Handling
//
// Run-level failures use typed errors: [ConfigurationError] (fatal, before
// any row), [RowSkippedError] (per row, recoverable) and [ExternalCallError]
// (a remote CRM call failed). [MapError] maps any of them to a coded
// [UserMessage] for the CLI:
//
//   - CFG001-CFG003: profile, chapter and option problems
//   - CSV001-CSV003: CSV structure
//   - FILE001-FILE002: file access
//   - API001-API005: Action Network responses and transport
//   - RUN001: interrupted run
package core
