// Package types defines the domain records, enums, filter structs, sentinel
// errors, configuration, and the Gateway contract for the Rift Leaguepedia
// client. Records are transient projections of the remote Cargo tables:
// text fields are plain strings (empty means absent), numeric, boolean and
// timestamp fields are pointers (nil means absent or unparseable), and
// derived properties are read-only methods that propagate nil.
package types
