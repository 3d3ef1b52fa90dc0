// Package logging wires [log/slog] for the skillcheck CLI.
//
// Diagnostics go to stderr through these loggers; the validation report is
// written separately to stdout and never passes through them, so piping the
// report stays clean at any verbosity.
//
// # Console Output
//
// [NewHandler] renders one line per record: a kitchen-clock timestamp, the
// level, the message, then key=value attributes. Lines are colored only when
// the destination is a terminal that wants color (see [SupportsColor]).
// [NewMultiHandler] fans records out to several handlers, which backs the
// --log-file flag: colored console plus JSON file from one logger.
//
// # Levels
//
// [LevelFromVerbosity] maps the -v flag count to a level; [LevelTrace] sits
// below debug for per-file scan events:
//
//	logger := logging.New(logging.Config{
//		Level: logging.LevelFromVerbosity(2),
//	})
//	logger.Debug("parsing document", "skill", "image-optimization")
//
// # Context
//
// The root command stores its configured logger with [NewContext];
// subcommands recover it with [FromContext], which falls back to
// [slog.Default] so library code never nil-checks.
//
// # Tests
//
// [ForTest] returns a debug-level logger that writes through testing.T, so
// output surfaces only for failing tests or -v runs. [NewDiscard] drops
// everything, for code paths where a logger is required but unwanted.
package logging
