// Package version holds the tuislider release version.
// The constant below is rewritten by `tuislider bump`.
package version

// Version is the current release of tuislider.
const Version = "0.1.0"
