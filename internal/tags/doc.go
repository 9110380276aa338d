// Package tags remaps NationBuilder tags onto the curated Action Network
// vocabulary.
//
// A mapping file is a CSV with an old_tag column, a new_tags column and one
// column per chapter:
//
//	old_tag,new_tags,SURJ Bay Area
//	#maestro_upload,IGNORE,Maestro
//	#trump-organize,"#Trump,?Organizing",
//	#phonebank,?Phone Bank,"!Training Phone Bank"
//
// Load reads the file once for one chapter; the chapter column's tags are
// appended to the shared new_tags. A Resolver then turns each person's
// tag_list into the tags to add, warning once per run about tags the file
// does not know.
//
// # IGNORE
//
// An entry whose replacement list starts with IGNORE contributes nothing,
// whatever follows it. IGNORE anywhere else is an ordinary tag name.
//
// # Concurrency
//
// A Table is read-only once loaded. A WarnedSet is not safe for concurrent
// use; it belongs to the single run that owns it.
package tags
