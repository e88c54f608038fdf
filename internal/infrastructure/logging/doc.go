// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// Session persistence reports serialization failures through this side
// channel; callers of the session API only see boolean results.
//
// Example usage:
//
//	logger := logging.NewDefault()
//	logger.Info("settings restored", zap.String("tool", "TextEditExample"))
//	logger.Error("state blob rejected", zap.Error(err))
package logging
