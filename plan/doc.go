// Package plan reads bulk task plans from YAML or JSON documents.
//
// A plan is an ordered list of tasks, each naming its operation and the
// fields that operation needs:
//
//	tasks:
//	  - op: create
//	    path: app
//	    kind: directory
//	  - op: create
//	    path: app/README.md
//	    kind: file
//	    data: "# app"
//	    options:
//	      cover: false
//	  - op: copy
//	    src: app
//	    dest: backup
//	  - op: remove
//	    path: stale
//	    options:
//	      force: false
//
// Decoded plans are converted with Plan.Tasks and executed with
// steward.RunSequential.
package plan
