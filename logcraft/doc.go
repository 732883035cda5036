// Copyright (c) 2026 BVK Chaitanya

// Package logcraft implements a small file logger with named instances.
//
// Every Logger owns one text file created when the logger is constructed.
// File names carry the construction time, for example
// "Log_2026-10-19_14-03-59.txt", and every line in the file has the form
//
//	<YYYY-MM-DD_HH-MM-SS> [INFO|ERROR]: <message>
//
// Loggers are normally obtained from a Registry, which keeps at most one
// Logger per identifier. The first GetInstance call for an identifier
// creates the log file, later calls return the same Logger and ignore the
// base path argument.
//
// # BASE PATH
//
// The base path is used verbatim as a prefix of the file name; no path
// separator is inserted. Callers must pass a trailing separator, as in
// "./" or "/var/log/myapp/".
//
// # CONCURRENCY
//
// Registry and Logger are safe for concurrent use. Concurrent first calls
// for the same identifier create exactly one file. The severity level is
// ordinary mutable state of a Logger, so callers that mix levels through
// one Logger should use Print, Info or Error, which update the level and
// write the line under a single lock.
//
// # DURABILITY
//
// Lines are not buffered in memory; every line is handed to the operating
// system with a single write, so returning from main without Save or Close
// loses nothing. Save additionally syncs the file to the disk.
//
// # GLOBAL LOGGER
//
// Default returns a process-wide Registry and Global returns the logger
// named "Global" stored under "./". CloseDefault syncs and closes all
// files held by the process-wide Registry.
package logcraft
