// Package logger wraps zap with a global sugared logger and context helpers.
//
// Output goes to stderr so that stdout stays reserved for the resolved
// version string. Services take the logger from the context, which lets a
// command attach its name and key-value pairs once.
package logger
