// Package binding resolves local projects to remote analysis-server keys.
//
// Bindings are declared in a YAML file:
//
//	bindings:
//	  - project: app-core
//	    projectKey: org:app
//	    moduleKey: org:app:core
//	  - project: app-web
//	    projectKey: org:app
//	    moduleKey: org:app:web
//
// moduleKey defaults to projectKey when omitted. Finder implements
// notification.ModuleInfoFinder over a loaded File, and CachingFinder puts an
// expiring LRU cache in front of any finder.
package binding
