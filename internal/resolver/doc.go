// Package resolver derives a package version string from git metadata.
//
// Resolution follows three tiers, first success wins:
//
//  1. nearest tag:    "{tag}.{commits}+{sha}", e.g. "1.2.5+gabc1234-dirty"
//  2. untagged repo:  "0.0.0+{sha}_{branch}", e.g. "0.0.0+deadbee_main"
//  3. no repository:  "0.0.0_UNKNOWN"
//
// A failed describe or short-hash query moves on to the next tier. A failed
// branch lookup is returned to the caller unless the resolver was built with
// WithTolerateBranchError.
package resolver
