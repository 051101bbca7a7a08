// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses the Viper-backed ConfigurationLoader, the zap LoggerFactory used for
// diagnostics on standard error, and the FlushingWriter that keeps console redraws
// visible without a trailing newline.
package utils
