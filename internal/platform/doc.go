package platform

// Package platform contains OS integration glue: filesystem helpers and
// revealing styled output files in the system file manager.
