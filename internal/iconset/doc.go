// Package iconset defines the iOS app icon size table and the asset catalog
// manifest derived from it.
//
// The table is fixed at compile time. Every generated PNG, and every record
// in Contents.json, comes from one Entry, so the file set and the manifest
// cannot drift apart.
package iconset
