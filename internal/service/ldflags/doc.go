// Package ldflags renders Go linker flags that embed a resolved version.
//
// The flags set the Version, Commit and BuildTime variables of a target
// package, matching the layout of gitver's own version package.
package ldflags
