// Package lookup holds the static reference tables used to describe the
// columns of the household dataset: project websites, regions, building
// types and feed descriptions.
//
// Project, region and building type lookups fail on an unknown key. Feed
// descriptions fall back to DefaultFeedDescription instead.
package lookup
